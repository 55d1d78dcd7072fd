package sink

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Geun-Oh/predix/internal/element"
)

var (
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	stringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44AAFF"))

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	boolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	nullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// TerminalSink writes records as key=value lines with optional color.
type TerminalSink struct {
	w     *bufio.Writer
	color bool
}

// NewTerminalSink creates a sink that writes to the given writer.
// If color is true, keys and values are styled by value type.
func NewTerminalSink(w io.Writer, color bool) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{w: bufio.NewWriter(w), color: color}
}

// Write outputs a formatted record.
func (s *TerminalSink) Write(r *element.Record) error {
	line := r.Format()
	if s.color {
		line = colorize(r)
	}
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush writes buffered output.
func (s *TerminalSink) Flush() error { return s.w.Flush() }

// Close flushes; the underlying writer is not closed.
func (s *TerminalSink) Close() error { return s.Flush() }

// Name returns the sink identifier.
func (s *TerminalSink) Name() string { return "terminal" }

func colorize(r *element.Record) string {
	var sb strings.Builder
	for i, k := range r.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v := r.Fields[k]
		sb.WriteString(keyStyle.Render(k + "="))
		sb.WriteString(valueStyle(v).Render(element.FormatValue(v)))
	}
	return sb.String()
}

func valueStyle(v any) lipgloss.Style {
	switch v.(type) {
	case nil:
		return nullStyle
	case bool:
		return boolStyle
	case string:
		return stringStyle
	default:
		return numberStyle
	}
}
