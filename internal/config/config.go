// Package config loads run settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. PREDIX_LOG_LEVEL.
const EnvPrefix = "PREDIX"

// Keys shared by flags, environment variables and config files.
const (
	KeyConfig    = "config"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyInput     = "input"
	KeyGrok      = "grok"
	KeyOutput    = "output"
	KeyOutFile   = "out-file"
	KeyFollow    = "follow"
	KeyBefore    = "before"
	KeyAfter     = "after"
	KeyTail      = "tail"
	KeyColor     = "color"
	KeyStats     = "stats"
	KeySpike     = "spike"
	KeyAny       = "any"
	KeyNegate    = "negate"
	KeyExplain   = "explain"
)

const (
	FormatJSON = "json"
	FormatText = "text"
	FormatGrok = "grok"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the scalar options of a run.
type Settings struct {
	LogLevel  string
	LogFormat string
	Input     string
	Grok      string
	Output    string
	OutFile   string
	Follow    bool
	Before    int
	After     int
	Tail      int
	Color     bool
	Stats     bool
	// Spike is the rate multiplier that logs a spike warning; 0 disables it.
	Spike   float64
	Any     bool
	Negate  bool
	Explain bool
}

// NewViper returns a viper instance reading PREDIX_* variables with defaults set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyInput, FormatJSON)
	v.SetDefault(KeyOutput, FormatText)
	return v
}

// Load reads the config file named by KeyConfig, if any, and returns the
// validated settings.
func Load(v *viper.Viper) (*Settings, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	s := &Settings{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Input:     strings.ToLower(v.GetString(KeyInput)),
		Grok:      v.GetString(KeyGrok),
		Output:    strings.ToLower(v.GetString(KeyOutput)),
		OutFile:   v.GetString(KeyOutFile),
		Follow:    v.GetBool(KeyFollow),
		Before:    v.GetInt(KeyBefore),
		After:     v.GetInt(KeyAfter),
		Tail:      v.GetInt(KeyTail),
		Color:     v.GetBool(KeyColor),
		Stats:     v.GetBool(KeyStats),
		Spike:     v.GetFloat64(KeySpike),
		Any:       v.GetBool(KeyAny),
		Negate:    v.GetBool(KeyNegate),
		Explain:   v.GetBool(KeyExplain),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports the first inconsistent setting.
func (s *Settings) Validate() error {
	switch s.Input {
	case FormatJSON:
	case FormatGrok:
		if s.Grok == "" {
			return fmt.Errorf("%w: --input grok needs a --grok pattern", ErrInvalidSettings)
		}
	default:
		return fmt.Errorf("%w: unknown input format %q", ErrInvalidSettings, s.Input)
	}

	if s.Output != FormatText && s.Output != FormatJSON {
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidSettings, s.Output)
	}
	if s.Before < 0 || s.After < 0 || s.Tail < 0 {
		return fmt.Errorf("%w: context and tail sizes must not be negative", ErrInvalidSettings)
	}
	if s.Tail > 0 && s.Follow {
		return fmt.Errorf("%w: --tail cannot be combined with --follow", ErrInvalidSettings)
	}
	if s.Spike < 0 {
		return fmt.Errorf("%w: spike threshold must not be negative", ErrInvalidSettings)
	}
	return nil
}
