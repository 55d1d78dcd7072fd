package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Geun-Oh/predix/internal/element"
)

// FileSource reads records from a file, optionally following new writes (tail -f).
type FileSource struct {
	path   string
	follow bool
	opts   Options
}

// NewFileSource creates a source that reads from a file.
// If follow is true, it continues reading as new lines are appended and only
// decodes lines once their newline has been written.
func NewFileSource(path string, follow bool, opts Options) *FileSource {
	return &FileSource{
		path:   path,
		follow: follow,
		opts:   opts,
	}
}

// Name returns the source identifier.
func (s *FileSource) Name() string {
	return fmt.Sprintf("file:%s", s.path)
}

// Start opens the file and returns a channel of records.
func (s *FileSource) Start(ctx context.Context) (<-chan element.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", s.path, err)
	}

	ch := make(chan element.Record, 256)
	lr := newLineReader(s.Name(), s.opts)
	// A followed file may end in the middle of a line that is still being written.
	lr.holdPartial = s.follow

	go func() {
		defer close(ch)
		defer f.Close()

		lr.reset(f)
		for {
			if !lr.drain(ctx, ch) || !s.follow {
				return
			}

			// Poll for new data when following.
			select {
			case <-ctx.Done():
				return
			case <-time.After(100 * time.Millisecond):
				lr.reset(f)
			}
		}
	}()

	return ch, nil
}
