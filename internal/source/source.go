// Package source defines the Source interface and the inputs records are read from.
package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/Geun-Oh/predix/internal/element"
)

// Source reads records from an input and emits them on a channel.
// Implementations must close the returned channel when the source is exhausted
// or the context is cancelled.
type Source interface {
	// Start begins reading from the source. The returned channel will receive
	// records until the source is exhausted or ctx is cancelled.
	// The implementation must close the channel when done.
	Start(ctx context.Context) (<-chan element.Record, error)

	// Name returns a human-readable identifier for this source.
	Name() string
}

// ErrorHandler is called for every line the decoder rejects.
type ErrorHandler func(source string, line uint64, err error)

// Options configure how lines become records.
type Options struct {
	// Decoder defaults to JSONDecoder.
	Decoder Decoder
	// OnError is optional; rejected lines are skipped either way.
	OnError ErrorHandler
}

func (o Options) decoder() Decoder {
	if o.Decoder == nil {
		return JSONDecoder{}
	}
	return o.Decoder
}

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// ErrLineTooLong is reported for lines longer than 1MB; they are skipped.
var ErrLineTooLong = errors.New("line exceeds 1MB")

// lineReader reads lines, decodes them and forwards the records.
// When holdPartial is set, an unterminated fragment at EOF is kept until
// the rest of its line arrives instead of being decoded on its own.
type lineReader struct {
	name        string
	opts        Options
	holdPartial bool
	seq         atomic.Uint64
	lineNo      uint64
	br          *bufio.Reader
	pending     []byte
	tooLong     bool
}

func newLineReader(name string, opts Options) *lineReader {
	return &lineReader{name: name, opts: opts}
}

// reset points the reader at r, keeping counters and any pending fragment.
func (lr *lineReader) reset(r io.Reader) {
	lr.br = bufio.NewReaderSize(r, 64*1024)
}

func (lr *lineReader) report(line uint64, err error) {
	if lr.opts.OnError != nil {
		lr.opts.OnError(lr.name, line, err)
	}
}

// drain reads until EOF. Returns false if ctx was cancelled or the reader
// failed; read errors are reported through OnError.
func (lr *lineReader) drain(ctx context.Context, ch chan<- element.Record) bool {
	dec := lr.opts.decoder()

	for {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		chunk, err := lr.br.ReadSlice('\n')
		if len(lr.pending)+len(chunk) > maxLineSize {
			lr.tooLong = true
			lr.pending = lr.pending[:0]
		} else if !lr.tooLong {
			lr.pending = append(lr.pending, chunk...)
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if lr.holdPartial || (len(lr.pending) == 0 && !lr.tooLong) {
				return true
			}
		default:
			lr.report(lr.lineNo+1, fmt.Errorf("read: %w", err))
			return false
		}

		lr.lineNo++
		line := bytes.TrimSuffix(bytes.TrimSuffix(lr.pending, []byte("\n")), []byte("\r"))
		tooLong := lr.tooLong
		lr.pending = lr.pending[:0]
		lr.tooLong = false

		if tooLong {
			lr.report(lr.lineNo, ErrLineTooLong)
			continue
		}
		if len(line) == 0 {
			continue
		}

		r, derr := dec.Decode(line)
		if derr != nil {
			lr.report(lr.lineNo, derr)
			continue
		}

		r.Raw = append([]byte(nil), line...)
		r.Source = lr.name
		r.Seq = lr.seq.Add(1)

		select {
		case ch <- *r:
		case <-ctx.Done():
			return false
		}

		if err != nil {
			// Final unterminated line at EOF.
			return true
		}
	}
}
