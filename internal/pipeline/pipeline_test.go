package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geun-Oh/predix/internal/buffer"
	"github.com/Geun-Oh/predix/internal/element"
	"github.com/Geun-Oh/predix/internal/filter"
	"github.com/Geun-Oh/predix/internal/logger"
	"github.com/Geun-Oh/predix/internal/monitor"
	"github.com/Geun-Oh/predix/internal/sink"
	"github.com/Geun-Oh/predix/internal/source"
)

const products = `{"name":"A","sales":12000,"inStock":true}
{"name":"B","sales":500,"inStock":true}
not json
{"name":"C","sales":90000,"inStock":false}
{"name":"D","sales":40,"inStock":false}
`

type recordingSink struct {
	records []element.Record
	flushed bool
	closed  bool
	failOn  int
}

func (s *recordingSink) Write(r *element.Record) error {
	if s.failOn > 0 && len(s.records)+1 == s.failOn {
		return errors.New("disk full")
	}
	s.records = append(s.records, *r)
	return nil
}

func (s *recordingSink) Flush() error { s.flushed = true; return nil }
func (s *recordingSink) Close() error { s.closed = true; return nil }
func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) names() []string {
	out := make([]string, len(s.records))
	for i, r := range s.records {
		v, _ := r.Property("name")
		out[i], _ = v.(string)
	}
	return out
}

func newSource(stats *monitor.Stats, log logger.Logger) source.Source {
	return source.NewReaderSource("products", strings.NewReader(products), source.Options{
		OnError: DecodeErrorHandler(log.Logger, stats),
	})
}

func TestRun(t *testing.T) {
	stats := monitor.NewStats()
	var logs bytes.Buffer
	log := logger.NewBufferedTestLogger(&logs)
	out := &recordingSink{}

	var summary bytes.Buffer
	err := Run(context.Background(), &Config{
		Source: newSource(stats, log),
		Filter: filter.OrOf(
			filter.NewIsGreater("sales", 50000),
			filter.AndOf(filter.NewIsEqual("inStock", true), filter.NewIsLess("sales", 1000)),
		),
		Sinks:     []sink.Sink{out},
		Stats:     stats,
		Logger:    log.Logger,
		ShowStats: true,
		StatsOut:  &summary,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "C"}, out.names())
	assert.True(t, out.flushed)
	assert.True(t, out.closed)

	assert.Equal(t, uint64(4), stats.Total())
	assert.Equal(t, uint64(2), stats.Matched())
	assert.Equal(t, uint64(1), stats.Rejected())
	assert.Contains(t, summary.String(), "Matched:   2 (50.0%)")

	assert.Contains(t, logs.String(), "skipping undecodable line")
	assert.Contains(t, logs.String(), `"line":3`)
	assert.Contains(t, logs.String(), `(or sales > 50000 (and inStock = true sales < 1000))`)
}

func TestRunWithoutFilterPassesEverything(t *testing.T) {
	out := &recordingSink{}
	err := Run(context.Background(), &Config{
		Source: newSource(nil, logger.NewTestLogger()),
		Sinks:  []sink.Sink{out},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, out.names())
}

func TestRunNegatedFilter(t *testing.T) {
	out := &recordingSink{}
	err := Run(context.Background(), &Config{
		Source: newSource(nil, logger.NewTestLogger()),
		Filter: filter.OrOf(filter.NewIsEqual("name", "A"), filter.NewIsEqual("name", "D")).Negate(),
		Sinks:  []sink.Sink{out},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, out.names())
}

func TestRunContext(t *testing.T) {
	out := &recordingSink{}
	stats := monitor.NewStats()
	var summary bytes.Buffer
	err := Run(context.Background(), &Config{
		Source:    newSource(nil, logger.NewTestLogger()),
		Context:   filter.NewContextBuffer(filter.NewIsEqual("name", "C"), 1, 1),
		Sinks:     []sink.Sink{out},
		Stats:     stats,
		ShowStats: true,
		StatsOut:  &summary,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, out.names())

	// Context records are emitted but do not count as matches.
	assert.Equal(t, uint64(1), stats.Matched())
	assert.Equal(t, uint64(3), stats.Emitted())
	assert.Contains(t, summary.String(), "Matched:   1 (25.0%)")
	assert.Contains(t, summary.String(), "Emitted:   3")
}

func TestRunTail(t *testing.T) {
	out := &recordingSink{}
	stats := monitor.NewStats()
	err := Run(context.Background(), &Config{
		Source: newSource(nil, logger.NewTestLogger()),
		Filter: filter.NewIsGreater("sales", 100),
		Tail:   buffer.NewRing[element.Record](2),
		Sinks:  []sink.Sink{out},
		Stats:  stats,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, out.names())
	assert.Equal(t, uint64(3), stats.Matched())
	assert.Equal(t, uint64(2), stats.Emitted())
}

func TestRunAlertsAndSpikes(t *testing.T) {
	alerts := monitor.NewAlertEngine()
	require.NoError(t, alerts.AddRule("out of stock", filter.NewIsEqual("inStock", false)))

	var logs bytes.Buffer
	log := logger.NewBufferedTestLogger(&logs)
	err := Run(context.Background(), &Config{
		Source: newSource(nil, logger.NewTestLogger()),
		Sinks:  []sink.Sink{&recordingSink{}},
		Alerts: alerts,
		Spikes: monitor.NewRateDetector(10*time.Second, 3),
		Logger: log.Logger,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, alerts.TotalAlerts())
	assert.Contains(t, logs.String(), "out of stock")
}

func TestRunErrors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		assert.ErrorIs(t, Run(context.Background(), &Config{Sinks: []sink.Sink{&recordingSink{}}}), ErrNoSource)
	})

	t.Run("missing sink", func(t *testing.T) {
		err := Run(context.Background(), &Config{Source: newSource(nil, logger.NewTestLogger())})
		assert.ErrorIs(t, err, ErrNoSink)
	})

	t.Run("write failure closes sinks", func(t *testing.T) {
		out := &recordingSink{failOn: 2}
		err := Run(context.Background(), &Config{
			Source: newSource(nil, logger.NewTestLogger()),
			Sinks:  []sink.Sink{out},
		})
		assert.ErrorContains(t, err, "pipeline: write to recording: disk full")
		assert.True(t, out.closed)
	})
}
