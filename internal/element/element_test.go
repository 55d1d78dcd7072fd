package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordProperty(t *testing.T) {
	r := NewRecord(map[string]any{"name": "A"})

	v, ok := r.Property("name")
	assert.True(t, ok)
	assert.Equal(t, "A", v)

	_, ok = r.Property("missing")
	assert.False(t, ok)

	var nilRecord *Record
	_, ok = nilRecord.Property("name")
	assert.False(t, ok)

	empty := &Record{}
	empty.Set("sales", 1.0)
	v, ok = empty.Property("sales")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestRecordFormat(t *testing.T) {
	r := NewRecord(map[string]any{
		"sales":   12000.0,
		"name":    "Alice Smith",
		"inStock": true,
		"note":    nil,
		"code":    "E1",
	})

	assert.Equal(t, []string{"code", "inStock", "name", "note", "sales"}, r.Keys())
	assert.Equal(t, `code=E1 inStock=true name="Alice Smith" note=null sales=12000`, r.Format())
	assert.Equal(t, "", NewRecord(nil).Format())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in       string
		expected any
	}{
		{"true", true},
		{"FALSE", false},
		{"null", nil},
		{"42", 42.0},
		{"-1.5", -1.5},
		{"abc", "abc"},
		{"", ""},
		{"NaN", "NaN"},
		{"nan", "nan"},
		{"Inf", "Inf"},
		{"-infinity", "-infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseValue(tt.in))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name       string
		a, b       any
		expected   int
		comparable bool
	}{
		{"numbers", 1.0, 2, -1, true},
		{"equal numbers of different types", int64(3), 3.0, 0, true},
		{"strings", "b", "a", 1, true},
		{"number against numeric string", 10, "9", 1, true},
		{"numeric string against number", "9", 10, -1, true},
		{"number against text", 1, "x", 0, false},
		{"bools", false, true, -1, true},
		{"equal bools", true, true, 0, true},
		{"bool against number", true, 1, 0, false},
		{"nil", nil, 1, 0, false},
		{"NaN against number", math.NaN(), 1.0, 0, false},
		{"number against NaN", 1.0, math.NaN(), 0, false},
		{"NaN against itself", math.NaN(), math.NaN(), 0, false},
		{"number against nan text", 5.0, "nan", 0, false},
		{"nan text against number", "NaN", 5.0, 0, false},
		{"infinity against inf text", math.Inf(1), "inf", 0, false},
		{"infinity against number", math.Inf(1), 1e300, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Compare(tt.a, tt.b)
			assert.Equal(t, tt.comparable, ok)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, "x"))
	assert.True(t, Equal("404", 404))
	assert.False(t, Equal(true, "true"))
	assert.False(t, Equal(math.NaN(), math.NaN()))
	assert.False(t, Equal(12000.0, ParseValue("NaN")))
	assert.False(t, Equal("nan", 5.0))
	assert.False(t, Equal(5.0, "nan"))
	assert.True(t, Equal("nan", "nan"))
}
