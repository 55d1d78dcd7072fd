package source

import (
	"context"
	"io"

	"github.com/Geun-Oh/predix/internal/element"
)

// ReaderSource reads records from an io.Reader until EOF.
type ReaderSource struct {
	name string
	r    io.Reader
	opts Options
}

// NewReaderSource creates a source reading from r, typically stdin in pipe mode.
func NewReaderSource(name string, r io.Reader, opts Options) *ReaderSource {
	return &ReaderSource{name: name, r: r, opts: opts}
}

// Name returns the source identifier.
func (s *ReaderSource) Name() string {
	return s.name
}

// Start reads from the reader and returns a channel of records.
func (s *ReaderSource) Start(ctx context.Context) (<-chan element.Record, error) {
	ch := make(chan element.Record, 256)
	lr := newLineReader(s.name, s.opts)
	lr.reset(s.r)

	go func() {
		defer close(ch)
		lr.drain(ctx, ch)
	}()

	return ch, nil
}
