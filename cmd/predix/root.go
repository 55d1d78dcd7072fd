package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Geun-Oh/predix/internal/buffer"
	"github.com/Geun-Oh/predix/internal/config"
	"github.com/Geun-Oh/predix/internal/element"
	"github.com/Geun-Oh/predix/internal/filter"
	"github.com/Geun-Oh/predix/internal/logger"
	"github.com/Geun-Oh/predix/internal/monitor"
	"github.com/Geun-Oh/predix/internal/pipeline"
	"github.com/Geun-Oh/predix/internal/sink"
	"github.com/Geun-Oh/predix/internal/source"
)

const spikeWindow = 10 * time.Second

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	c := &clauses{}

	cmd := &cobra.Command{
		Use:   "predix [file]",
		Short: "predix filters structured records with composable boolean filters",
		Long: `predix reads one record per line (JSON objects, or text parsed with a Grok
pattern) from a file or stdin and prints the records accepted by a filter.

Filter clauses take property=value pairs and are combined with AND, or with
OR when --any is given. --negate inverts the whole filter.`,
		Example: `  predix --eq level=ERROR --gt latency=500 app.log
  predix --any --in level=ERROR,FATAL --match msg='timeout|refused' app.log
  predix --exclude path=/healthz,/metrics --negate --explain`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, c, args)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&c.eq, "eq", nil, "property=value: property equals value")
	flags.StringArrayVar(&c.ne, "ne", nil, "property=value: property does not equal value")
	flags.StringArrayVar(&c.in, "in", nil, "property=v1,v2: property equals one of the values")
	flags.StringArrayVar(&c.contains, "contains", nil, "property=text: property contains text")
	flags.StringArrayVar(&c.match, "match", nil, "property=regex: property matches the regular expression")
	flags.StringArrayVar(&c.gt, "gt", nil, "property=value: property is greater than value")
	flags.StringArrayVar(&c.lt, "lt", nil, "property=value: property is less than value")
	flags.StringArrayVar(&c.exclude, "exclude", nil, "property=t1,t2: property contains none of the texts")
	flags.StringArrayVar(&c.alert, "alert", nil, "property=regex: count and log elements matching the expression")

	flags.String(config.KeyConfig, "", "Path to a config file (YAML, TOML or JSON)")
	flags.Bool(config.KeyAny, false, "Combine clauses with OR instead of AND")
	flags.Bool(config.KeyNegate, false, "Negate the combined filter")
	flags.Bool(config.KeyExplain, false, "Print the filter tree and exit")
	flags.StringP(config.KeyInput, "i", config.FormatJSON, "Input format: json or grok")
	flags.String(config.KeyGrok, "", "Grok pattern for --input grok")
	flags.StringP(config.KeyOutput, "o", config.FormatText, "Output format: text or json")
	flags.String(config.KeyOutFile, "", "Also write matches to this file")
	flags.BoolP(config.KeyFollow, "f", false, "Keep reading the file as it grows")
	flags.IntP(config.KeyBefore, "B", 0, "Records of context before each match")
	flags.IntP(config.KeyAfter, "A", 0, "Records of context after each match")
	flags.Int(config.KeyTail, 0, "Only print the last N matches")
	flags.Bool(config.KeyColor, false, "Colorize text output")
	flags.Bool(config.KeyStats, false, "Print a summary when done")
	flags.Float64(config.KeySpike, 0, "Warn when the match rate exceeds this multiple of its average")
	flags.String(config.KeyLogLevel, "warn", "Log level: debug, info, warn, error or disabled")
	flags.String(config.KeyLogFormat, logger.ConsoleLoggingFormat, "Log format: console or json")

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Value.Type() == "stringArray" {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", f.Name, err))
		}
	})

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, c *clauses, args []string) error {
	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(settings.LogLevel, settings.LogFormat, cmd.ErrOrStderr())

	f, err := c.build(settings.Any, settings.Negate)
	if err != nil {
		return err
	}
	if settings.Explain {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), f)
		return err
	}

	alerts, err := c.alerts()
	if err != nil {
		return err
	}

	stats := monitor.NewStats()
	src, err := newSource(cmd, settings, args, source.Options{
		OnError: pipeline.DecodeErrorHandler(log.Logger, stats),
	})
	if err != nil {
		return err
	}

	sinks, err := newSinks(cmd, settings)
	if err != nil {
		return err
	}

	cfg := &pipeline.Config{
		Source:    src,
		Filter:    f,
		Sinks:     sinks,
		Stats:     stats,
		Alerts:    alerts,
		Logger:    log.Logger,
		ShowStats: settings.Stats,
		StatsOut:  cmd.ErrOrStderr(),
	}
	if settings.Before > 0 || settings.After > 0 {
		cfg.Context = filter.NewContextBuffer(f, settings.Before, settings.After)
	}
	if settings.Tail > 0 {
		cfg.Tail = buffer.NewRing[element.Record](settings.Tail)
	}
	if settings.Spike > 0 {
		cfg.Spikes = monitor.NewRateDetector(spikeWindow, settings.Spike)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := pipeline.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newSource(cmd *cobra.Command, s *config.Settings, args []string, opts source.Options) (source.Source, error) {
	if s.Input == config.FormatGrok {
		dec, err := source.NewGrokDecoder(s.Grok)
		if err != nil {
			return nil, err
		}
		opts.Decoder = dec
	}

	if len(args) == 1 && args[0] != "-" {
		return source.NewFileSource(args[0], s.Follow, opts), nil
	}
	return source.NewReaderSource("stdin", cmd.InOrStdin(), opts), nil
}

func newSinks(cmd *cobra.Command, s *config.Settings) ([]sink.Sink, error) {
	var sinks []sink.Sink
	switch s.Output {
	case config.FormatJSON:
		sinks = append(sinks, sink.NewJSONSink(cmd.OutOrStdout()))
	default:
		sinks = append(sinks, sink.NewTerminalSink(cmd.OutOrStdout(), s.Color))
	}

	if s.OutFile != "" {
		fs, err := sink.NewFileSink(s.OutFile, s.Output)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}
	return sinks, nil
}
