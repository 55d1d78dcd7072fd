// Package parser turns unstructured text lines into record fields.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Geun-Oh/predix/internal/element"
)

// builtinPatterns provides commonly used Grok-style named patterns.
var builtinPatterns = map[string]string{
	"IP":         `(?:\d{1,3}\.){3}\d{1,3}`,
	"IPV6":       `[0-9A-Fa-f:]+`,
	"WORD":       `\w+`,
	"INT":        `[+-]?\d+`,
	"NUMBER":     `[+-]?(?:\d+\.?\d*|\.\d+)`,
	"NOTSPACE":   `\S+`,
	"DATA":       `.*?`,
	"GREEDYDATA": `.*`,
	"TIMESTAMP":  `\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`,
	"LOGLEVEL":   `(?:DEBUG|INFO|WARN(?:ING)?|ERROR|ERR|FATAL|PANIC|CRITICAL|TRACE)`,
	"PATH":       `(?:/[\w.]+)+`,
	"URI":        `\S+://\S+`,
	"UUID":       `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
	"MAC":        `(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}`,
	"HTTPMETHOD": `(?:GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS|CONNECT|TRACE)`,
	"STATUSCODE": `\d{3}`,
	"QS":         `"[^"]*"`,
}

// grokToken finds %{NAME} and %{NAME:field} tokens.
var grokToken = regexp.MustCompile(`%\{(\w+)(?::(\w+))?\}`)

// GrokParser parses unstructured lines using Grok-style patterns.
// Pattern format: %{PATTERN_NAME:capture_name}
// Example: "%{IP:client} %{WORD:method} %{NOTSPACE:path} %{STATUSCODE:status}"
type GrokParser struct {
	pattern    string
	regex      *regexp.Regexp
	fieldNames []string
}

// NewGrokParser compiles a Grok pattern string into a regex-based parser.
func NewGrokParser(pattern string) (*GrokParser, error) {
	regexStr, fieldNames, err := compileGrokPattern(pattern)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(regexStr)
	if err != nil {
		return nil, fmt.Errorf("compiled grok regex invalid: %w (regex: %s)", err, regexStr)
	}

	return &GrokParser{
		pattern:    pattern,
		regex:      re,
		fieldNames: fieldNames,
	}, nil
}

// Parse extracts named captures from line into a new record.
// Capture values are typed with element.ParseValue. Returns false if the
// pattern does not match.
func (g *GrokParser) Parse(line string) (*element.Record, bool) {
	matches := g.regex.FindStringSubmatch(line)
	if matches == nil {
		return nil, false
	}

	r := element.NewRecord(make(map[string]any, len(g.fieldNames)))
	for i, name := range g.fieldNames {
		if i+1 < len(matches) {
			r.Fields[name] = element.ParseValue(matches[i+1])
		}
	}
	return r, true
}

// Fields returns the capture names in pattern order.
func (g *GrokParser) Fields() []string {
	return append([]string(nil), g.fieldNames...)
}

// Pattern returns the original Grok pattern string.
func (g *GrokParser) Pattern() string {
	return g.pattern
}

// compileGrokPattern converts a Grok pattern to a Go regex.
// %{PATTERN_NAME:field_name} → (regex_for_PATTERN_NAME), one capture per field
// %{PATTERN_NAME} → (?:regex_for_PATTERN_NAME), not captured
// Text between tokens matches literally, so it never adds capture groups.
func compileGrokPattern(pattern string) (string, []string, error) {
	var (
		sb         strings.Builder
		fieldNames []string
		last       int
	)

	for _, m := range grokToken.FindAllStringSubmatchIndex(pattern, -1) {
		sb.WriteString(regexp.QuoteMeta(pattern[last:m[0]]))
		last = m[1]

		patternName := pattern[m[2]:m[3]]
		builtinRegex, ok := builtinPatterns[patternName]
		if !ok {
			return "", nil, fmt.Errorf("unknown grok pattern: %s", patternName)
		}

		if m[4] >= 0 {
			fieldNames = append(fieldNames, pattern[m[4]:m[5]])
			sb.WriteString("(" + builtinRegex + ")")
		} else {
			sb.WriteString("(?:" + builtinRegex + ")")
		}
	}
	sb.WriteString(regexp.QuoteMeta(pattern[last:]))

	return sb.String(), fieldNames, nil
}
