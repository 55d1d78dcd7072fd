package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Geun-Oh/predix/internal/element"
)

// composite holds the ordered operand list shared by AndFilter and OrFilter,
// along with the evaluation and combination logic both variants use.
// The operand slice is never modified after construction.
type composite struct {
	operands []Filter
}

func newComposite(operands []Filter) (composite, error) {
	for i, op := range operands {
		if absent(op) {
			return composite{}, fmt.Errorf("operand %d: %w", i, ErrNilOperand)
		}
	}
	return composite{operands: slices.Clone(operands)}, nil
}

// Len returns the number of operands.
func (c composite) Len() int {
	return len(c.operands)
}

// At returns the operand at index i.
func (c composite) At(i int) Filter {
	return c.operands[i]
}

// Operands returns a copy of the operand list.
func (c composite) Operands() []Filter {
	return slices.Clone(c.operands)
}

func (c composite) operandList() []Filter {
	return c.operands
}

// operandLister is implemented by the package's composites. Flattening only
// unwraps candidates that implement it.
type operandLister interface {
	operandList() []Filter
}

// evaluate walks the operands in order. identity is both the result of an
// empty list and the operand result that lets the walk continue; the first
// operand that disagrees decides the outcome.
func (c composite) evaluate(e element.Element, identity bool) bool {
	for _, op := range c.operands {
		if op.Contains(e) != identity {
			return !identity
		}
	}
	return identity
}

// combine appends candidates to the receiver's operands. Absent candidates
// are dropped and candidates of the receiver's own kind are flattened one
// level. build constructs a composite of the receiver's kind.
func (c composite) combine(receiver Filter, candidates []Filter, build func(operands []Filter) Filter) Filter {
	kind := receiver.Kind()

	var added []Filter
	for _, cand := range candidates {
		if absent(cand) {
			continue
		}
		if cand.Kind() == kind {
			if l, ok := cand.(operandLister); ok {
				added = append(added, l.operandList()...)
				continue
			}
		}
		added = append(added, cand)
	}

	if len(added) == 0 {
		return receiver
	}
	if len(c.operands) == 0 && len(added) == 1 {
		return added[0]
	}

	operands := make([]Filter, 0, len(c.operands)+len(added))
	operands = append(operands, c.operands...)
	operands = append(operands, added...)
	return build(operands)
}

// negated wraps every operand in a NotFilter, preserving order.
func (c composite) negated() composite {
	operands := make([]Filter, len(c.operands))
	for i, op := range c.operands {
		operands[i] = &NotFilter{operand: op}
	}
	return composite{operands: operands}
}

func (c composite) format(kind Kind) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(string(kind))
	for _, op := range c.operands {
		sb.WriteByte(' ')
		sb.WriteString(describe(op))
	}
	sb.WriteByte(')')
	return sb.String()
}

// describe renders a filter for String methods and logs.
func describe(f Filter) string {
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	return string(f.Kind())
}
