// Package element defines the data elements that filters are evaluated against.
package element

import (
	"fmt"
	"sort"
	"strings"
)

// Element is a datum a filter can be evaluated against.
// Filters only ever read properties through this interface.
type Element interface {
	// Property returns the value of the named property and whether it is set.
	Property(name string) (any, bool)
}

// Record is the normalized element passed through the predix pipeline.
type Record struct {
	Seq    uint64         // monotonic sequence number assigned by the source
	Source string         // source identifier (filename, stdin)
	Fields map[string]any // decoded properties
	Raw    []byte         // original line bytes
}

// NewRecord creates a record holding the given fields.
func NewRecord(fields map[string]any) *Record {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &Record{Fields: fields}
}

// Property returns the named field.
func (r *Record) Property(name string) (any, bool) {
	if r == nil || r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[name]
	return v, ok
}

// Set assigns a field value.
func (r *Record) Set(name string, value any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	r.Fields[name] = value
}

// Keys returns the field names in sorted order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Format returns the record as space separated key=value pairs, sorted by key.
func (r *Record) Format() string {
	var sb strings.Builder
	for i, k := range r.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(FormatValue(r.Fields[k]))
	}
	return sb.String()
}

// FormatValue renders a scalar the way Format prints it.
// Strings containing spaces are quoted.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		if strings.ContainsAny(t, " \t\"") || t == "" {
			return fmt.Sprintf("%q", t)
		}
		return t
	default:
		return fmt.Sprint(t)
	}
}
