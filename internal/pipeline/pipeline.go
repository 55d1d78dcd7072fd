// Package pipeline orchestrates Source → Filter → Sink processing.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/Geun-Oh/predix/internal/buffer"
	"github.com/Geun-Oh/predix/internal/element"
	"github.com/Geun-Oh/predix/internal/filter"
	"github.com/Geun-Oh/predix/internal/monitor"
	"github.com/Geun-Oh/predix/internal/sink"
	"github.com/Geun-Oh/predix/internal/source"
)

var (
	ErrNoSource = errors.New("pipeline: source is required")
	ErrNoSink   = errors.New("pipeline: at least one sink is required")
)

// Config holds pipeline configuration.
type Config struct {
	Source source.Source
	// Filter selects the records to emit. Nil passes every record.
	Filter  filter.Filter
	Sinks   []sink.Sink
	Context *filter.ContextBuffer // optional context records; takes precedence over Filter
	Stats   *monitor.Stats
	Alerts  *monitor.AlertEngine  // optional
	Spikes  *monitor.RateDetector // optional, fed with matches
	// Tail holds back output and writes only the last matches once the
	// source is exhausted.
	Tail      *buffer.Ring[element.Record]
	Logger    zerolog.Logger
	ShowStats bool
	StatsOut  io.Writer // defaults to stderr
}

// DecodeErrorHandler returns a source error handler that logs rejected
// lines and counts them in stats.
func DecodeErrorHandler(log zerolog.Logger, stats *monitor.Stats) source.ErrorHandler {
	return func(src string, line uint64, err error) {
		if stats != nil {
			stats.RecordRejected()
		}
		log.Warn().Err(err).Str("source", src).Uint64("line", line).Msg("skipping undecodable line")
	}
}

// Run executes the pipeline: reads from source, filters, and writes to sinks.
// Blocks until the source is exhausted or ctx is cancelled.
func Run(ctx context.Context, cfg *Config) (err error) {
	if cfg.Source == nil {
		return ErrNoSource
	}
	if len(cfg.Sinks) == 0 {
		return ErrNoSink
	}
	if cfg.Stats == nil {
		cfg.Stats = monitor.NewStats()
	}

	log := cfg.Logger.With().Str("source", cfg.Source.Name()).Logger()
	log.Info().Str("filter", describe(cfg)).Msg("pipeline started")

	// Stops the source when Run returns early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, err := cfg.Source.Start(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: start source: %w", err)
	}

	defer func() {
		for _, s := range cfg.Sinks {
			if cerr := s.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("pipeline: close %s: %w", s.Name(), cerr)
			}
		}
	}()

	spiking := false
	match := func() {
		cfg.Stats.RecordMatch()
		if cfg.Spikes != nil {
			now := cfg.Spikes.Record()
			if now && !spiking {
				log.Warn().Float64("rate", cfg.Spikes.CurrentRate()).Msg("match rate spike")
			}
			spiking = now
		}
	}
	output := func(r *element.Record) error {
		cfg.Stats.RecordEmit()
		return write(cfg.Sinks, r)
	}
	emit := func(r *element.Record) error {
		if cfg.Tail != nil {
			cfg.Tail.Push(*r)
			return nil
		}
		return output(r)
	}

	for r := range ch {
		cfg.Stats.RecordElement()

		if cfg.Alerts != nil {
			for _, name := range cfg.Alerts.Check(&r) {
				log.Info().Str("alert", name).Uint64("seq", r.Seq).Msg("alert triggered")
			}
		}

		if cfg.Context != nil {
			records := cfg.Context.Process(&r)
			if cfg.Context.Matched() {
				match()
			}
			for i := range records {
				if err := emit(&records[i]); err != nil {
					return err
				}
			}
			continue
		}

		if cfg.Filter != nil && !cfg.Filter.Contains(&r) {
			continue
		}
		match()
		if err := emit(&r); err != nil {
			return err
		}
	}

	if cfg.Tail != nil {
		records := cfg.Tail.Snapshot()
		for i := range records {
			if err := output(&records[i]); err != nil {
				return err
			}
		}
	}

	for _, s := range cfg.Sinks {
		if err := s.Flush(); err != nil {
			return fmt.Errorf("pipeline: flush %s: %w", s.Name(), err)
		}
	}

	log.Info().
		Uint64("evaluated", cfg.Stats.Total()).
		Uint64("matched", cfg.Stats.Matched()).
		Uint64("emitted", cfg.Stats.Emitted()).
		Uint64("rejected", cfg.Stats.Rejected()).
		Msg("pipeline finished")

	if cfg.ShowStats {
		out := cfg.StatsOut
		if out == nil {
			out = os.Stderr
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, cfg.Stats.Summary())
		if cfg.Alerts != nil && cfg.Alerts.Len() > 0 {
			fmt.Fprintln(out, cfg.Alerts.Summary())
		}
	}

	return ctx.Err()
}

func write(sinks []sink.Sink, r *element.Record) error {
	for _, s := range sinks {
		if err := s.Write(r); err != nil {
			return fmt.Errorf("pipeline: write to %s: %w", s.Name(), err)
		}
	}
	return nil
}

func describe(cfg *Config) string {
	f := cfg.Filter
	if cfg.Context != nil {
		f = cfg.Context.Filter()
	}
	if f == nil {
		return "(and)"
	}
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	return string(f.Kind())
}
