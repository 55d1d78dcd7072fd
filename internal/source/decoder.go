package source

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/Geun-Oh/predix/internal/element"
	"github.com/Geun-Oh/predix/internal/parser"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoMatch is returned by GrokDecoder for lines the pattern does not match.
var ErrNoMatch = errors.New("line does not match pattern")

// Decoder turns a single input line into a record.
type Decoder interface {
	Decode(line []byte) (*element.Record, error)
}

// JSONDecoder decodes one JSON object per line.
type JSONDecoder struct{}

// Decode parses the line as a JSON object. Numbers become float64.
func (JSONDecoder) Decode(line []byte) (*element.Record, error) {
	var fields map[string]any
	if err := json.Unmarshal(line, &fields); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if fields == nil {
		return nil, errors.New("decode json: not an object")
	}
	return element.NewRecord(fields), nil
}

// GrokDecoder extracts fields from text lines with a Grok pattern.
type GrokDecoder struct {
	parser *parser.GrokParser
}

// NewGrokDecoder creates a decoder for the given Grok pattern.
func NewGrokDecoder(pattern string) (*GrokDecoder, error) {
	p, err := parser.NewGrokParser(pattern)
	if err != nil {
		return nil, err
	}
	return &GrokDecoder{parser: p}, nil
}

// Decode returns an error wrapping ErrNoMatch if the pattern does not match the line.
func (d *GrokDecoder) Decode(line []byte) (*element.Record, error) {
	r, ok := d.parser.Parse(string(line))
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoMatch, d.parser.Pattern())
	}
	return r, nil
}
