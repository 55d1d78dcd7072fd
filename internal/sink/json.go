package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/Geun-Oh/predix/internal/element"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonRecord is the serialization format for JSON Lines output.
type jsonRecord struct {
	Seq    uint64         `json:"seq,omitempty"`
	Source string         `json:"source,omitempty"`
	Fields map[string]any `json:"fields"`
}

// JSONSink writes records as JSON Lines (one JSON object per line).
type JSONSink struct {
	w   *bufio.Writer
	enc *jsoniter.Encoder
}

// NewJSONSink creates a JSON Lines sink writing to the given writer.
func NewJSONSink(w io.Writer) *JSONSink {
	if w == nil {
		w = os.Stdout
	}
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:   bw,
		enc: json.NewEncoder(bw),
	}
}

// Write serializes a record as a single JSON line.
func (s *JSONSink) Write(r *element.Record) error {
	fields := r.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	return s.enc.Encode(jsonRecord{
		Seq:    r.Seq,
		Source: r.Source,
		Fields: fields,
	})
}

// Flush writes buffered output.
func (s *JSONSink) Flush() error { return s.w.Flush() }

// Close flushes; the underlying writer is not closed.
func (s *JSONSink) Close() error { return s.Flush() }

// Name returns the sink identifier.
func (s *JSONSink) Name() string { return "json" }

// FileSink writes records to a file.
type FileSink struct {
	inner Sink
	file  *os.File
}

// NewFileSink creates a sink that writes to the given file path.
// The format parameter selects the inner formatter: "json" or "text" (default).
func NewFileSink(path string, format string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open output file %s: %w", path, err)
	}

	var inner Sink
	switch format {
	case "json":
		inner = NewJSONSink(f)
	default:
		inner = NewTerminalSink(f, false)
	}

	return &FileSink{inner: inner, file: f}, nil
}

// Write delegates to the inner sink.
func (s *FileSink) Write(r *element.Record) error {
	return s.inner.Write(r)
}

// Flush writes buffered output and syncs the file to disk.
func (s *FileSink) Flush() error {
	if err := s.inner.Flush(); err != nil {
		return err
	}
	return s.file.Sync()
}

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	if err := s.Flush(); err != nil {
		_ = s.file.Close()
		return err
	}
	return s.file.Close()
}

// Name returns the sink identifier.
func (s *FileSink) Name() string {
	return "file:" + s.file.Name()
}
