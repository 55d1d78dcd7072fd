package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Geun-Oh/predix/internal/element"
	"github.com/Geun-Oh/predix/internal/filter"
	"github.com/Geun-Oh/predix/internal/monitor"
)

var errBadClause = errors.New("expected property=value")

// clauses holds the repeatable filter flags in the order cobra parsed them
// per flag.
type clauses struct {
	eq       []string
	ne       []string
	in       []string
	contains []string
	match    []string
	gt       []string
	lt       []string
	exclude  []string
	alert    []string
}

// build turns the clauses into one filter combined with And, or with Or
// when anyOf is set. Without clauses every element passes.
func (c *clauses) build(anyOf, negate bool) (filter.Filter, error) {
	var leaves []filter.Filter

	add := func(flag string, raws []string, mk func(property, value string) (filter.Filter, error)) error {
		for _, raw := range raws {
			property, value, err := splitClause(flag, raw)
			if err != nil {
				return err
			}
			f, err := mk(property, value)
			if err != nil {
				return fmt.Errorf("--%s %s: %w", flag, raw, err)
			}
			leaves = append(leaves, f)
		}
		return nil
	}

	steps := []struct {
		flag string
		raws []string
		mk   func(property, value string) (filter.Filter, error)
	}{
		{"eq", c.eq, func(p, v string) (filter.Filter, error) {
			return filter.NewIsEqual(p, element.ParseValue(v)), nil
		}},
		{"ne", c.ne, func(p, v string) (filter.Filter, error) {
			return filter.NewIsEqual(p, element.ParseValue(v)).Negate(), nil
		}},
		{"in", c.in, func(p, v string) (filter.Filter, error) {
			parts := splitList(v)
			values := make([]any, len(parts))
			for i, part := range parts {
				values[i] = element.ParseValue(part)
			}
			return filter.NewIsIn(p, values...), nil
		}},
		{"contains", c.contains, func(p, v string) (filter.Filter, error) {
			return filter.NewContainsText(p, v), nil
		}},
		{"match", c.match, func(p, v string) (filter.Filter, error) {
			m, err := filter.NewMatches(p, v)
			if err != nil {
				return nil, err
			}
			return m, nil
		}},
		{"gt", c.gt, func(p, v string) (filter.Filter, error) {
			return filter.NewIsGreater(p, element.ParseValue(v)), nil
		}},
		{"lt", c.lt, func(p, v string) (filter.Filter, error) {
			return filter.NewIsLess(p, element.ParseValue(v)), nil
		}},
		{"exclude", c.exclude, func(p, v string) (filter.Filter, error) {
			return filter.Exclude(p, splitList(v)...), nil
		}},
	}
	for _, s := range steps {
		if err := add(s.flag, s.raws, s.mk); err != nil {
			return nil, err
		}
	}

	var f filter.Filter
	if anyOf && len(leaves) > 0 {
		f = filter.OrOf(leaves...)
	} else {
		f = filter.AndOf(leaves...)
	}
	if negate {
		f = f.Negate()
	}
	return f, nil
}

// alerts builds an alert engine from --alert property=regex clauses.
func (c *clauses) alerts() (*monitor.AlertEngine, error) {
	engine := monitor.NewAlertEngine()
	for _, raw := range c.alert {
		property, pattern, err := splitClause("alert", raw)
		if err != nil {
			return nil, err
		}
		f, err := filter.NewMatches(property, pattern)
		if err != nil {
			return nil, fmt.Errorf("--alert %s: %w", raw, err)
		}
		if err := engine.AddRule(raw, f); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

func splitClause(flag, raw string) (string, string, error) {
	property, value, ok := strings.Cut(raw, "=")
	property = strings.TrimSpace(property)
	if !ok || property == "" {
		return "", "", fmt.Errorf("--%s %q: %w", flag, raw, errBadClause)
	}
	return property, value, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
