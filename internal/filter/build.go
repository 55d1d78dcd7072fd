package filter

import (
	"fmt"
)

// AndOf combines arbitrary filters into their conjunction.
// Nil filters are ignored, AndFilter arguments are flattened, a single
// usable filter is returned as is and no usable filter yields an empty
// AndFilter.
func AndOf(filters ...Filter) Filter {
	return (&AndFilter{}).And(filters...)
}

// OrOf combines arbitrary filters into their disjunction, with the same
// simplifications as AndOf. No usable filter yields an empty OrFilter.
func OrOf(filters ...Filter) Filter {
	return (&OrFilter{}).Or(filters...)
}

// Config carries untyped construction options for New.
type Config struct {
	// Operands is used by the "and" and "or" kinds. Defaults to empty.
	Operands []any
	// Operand is required by the "not" kind.
	Operand any
}

// New constructs an AND, OR or NOT filter from a Config.
// Values that are not filters yield ErrNotAFilter.
func New(kind Kind, cfg Config) (Filter, error) {
	switch kind {
	case KindAnd, KindOr:
		operands := make([]Filter, 0, len(cfg.Operands))
		for i, v := range cfg.Operands {
			f, err := asFilter(v)
			if err != nil {
				return nil, fmt.Errorf("%s operand %d: %w", kind, i, err)
			}
			operands = append(operands, f)
		}
		c := composite{operands: operands}
		if kind == KindAnd {
			return &AndFilter{composite: c}, nil
		}
		return &OrFilter{composite: c}, nil

	case KindNot:
		if cfg.Operand == nil {
			return nil, ErrMissingOperand
		}
		f, err := asFilter(cfg.Operand)
		if err != nil {
			return nil, fmt.Errorf("not operand: %w", err)
		}
		return &NotFilter{operand: f}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func asFilter(v any) (Filter, error) {
	if v == nil {
		return nil, ErrNilOperand
	}
	f, ok := v.(Filter)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotAFilter, v)
	}
	if absent(f) {
		return nil, ErrNilOperand
	}
	return f, nil
}
