package config

import (
	"fmt"
	"strings"

	"github.com/yndnr/acp-bench/internal/cli/output"
	"github.com/yndnr/acp-bench/internal/core/bench"
	"github.com/yndnr/acp-bench/internal/core/codec"
	"github.com/yndnr/acp-bench/internal/core/domain"
	"github.com/yndnr/acp-bench/internal/infra/confloader"
	"github.com/yndnr/acp-bench/internal/telemetry/logger"
)

// Configuration keys, as used in YAML files and flag overrides.
const (
	KeyMode          = "bench.mode"
	KeyCount         = "bench.count"
	KeyTokens        = "bench.tokens"
	KeyCodec         = "bench.codec"
	KeyWarmup        = "bench.warmup"
	KeyHistogram     = "bench.histogram"
	KeyOutputFormat  = "output.format"
	KeyOutputMetrics = "output.metrics"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyLogBackend    = "log.backend"
)

// BenchConfig is the complete acp-bench configuration.
type BenchConfig struct {
	Bench  BenchSection  `koanf:"bench" yaml:"bench"`
	Output OutputSection `koanf:"output" yaml:"output"`
	Log    LogSection    `koanf:"log" yaml:"log"`
}

// BenchSection selects the workload.
type BenchSection struct {
	Mode      string `koanf:"mode" yaml:"mode"`
	Count     int    `koanf:"count" yaml:"count"`
	Tokens    int    `koanf:"tokens" yaml:"tokens"`
	Codec     string `koanf:"codec" yaml:"codec"`
	Warmup    int    `koanf:"warmup" yaml:"warmup"`
	Histogram bool   `koanf:"histogram" yaml:"histogram"`
}

// OutputSection controls result rendering.
type OutputSection struct {
	Format string `koanf:"format" yaml:"format"`
	// Metrics is a Prometheus textfile path. Empty disables export.
	Metrics string `koanf:"metrics" yaml:"metrics"`
}

// LogSection configures diagnostics on stderr.
type LogSection struct {
	Level   string `koanf:"level" yaml:"level"`
	Format  string `koanf:"format" yaml:"format"`
	Backend string `koanf:"backend" yaml:"backend"`
}

// Default returns the default configuration.
func Default() *BenchConfig {
	return &BenchConfig{
		Bench: BenchSection{
			Mode:   string(domain.DefaultMode),
			Count:  bench.DefaultCount,
			Tokens: bench.DefaultTokens,
			Codec:  codec.DefaultName,
		},
		Output: OutputSection{
			Format: string(output.DefaultFormat),
		},
		Log: LogSection{
			Level:   "warn",
			Format:  "text",
			Backend: logger.BackendSlog,
		},
	}
}

// Load builds a configuration from defaults, the YAML file at path (if
// any), environment variables with envPrefix and overrides, in that
// order of increasing priority. An empty envPrefix selects the default.
func Load(path, envPrefix string, overrides map[string]any) (*BenchConfig, error) {
	opts := []confloader.Option{
		confloader.WithConfigFile(path),
		confloader.WithOverrides(overrides),
	}
	if envPrefix != "" {
		opts = append(opts, confloader.WithEnvPrefix(envPrefix))
	}

	cfg := Default()
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Verify checks every field and returns the first problem found.
func (c *BenchConfig) Verify() error {
	if _, err := domain.ParseMode(c.Bench.Mode); err != nil {
		return err
	}
	if _, err := codec.Lookup(c.Bench.Codec); err != nil {
		return err
	}
	if err := c.BenchParams().Validate(); err != nil {
		return err
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return err
	}

	if !logger.ValidLevel(c.Log.Level) {
		return domain.ErrInvalidLogConfig.WithDetails(fmt.Sprintf("level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return domain.ErrInvalidLogConfig.WithDetails(fmt.Sprintf("format %q", c.Log.Format))
	}
	switch strings.ToLower(c.Log.Backend) {
	case logger.BackendSlog, logger.BackendZap:
	default:
		return domain.ErrInvalidLogConfig.WithDetails(fmt.Sprintf("backend %q", c.Log.Backend))
	}

	return nil
}

// BenchParams returns the workload parameters for the runner.
func (c *BenchConfig) BenchParams() bench.Config {
	return bench.Config{
		Count:     c.Bench.Count,
		Tokens:    c.Bench.Tokens,
		Warmup:    c.Bench.Warmup,
		Histogram: c.Bench.Histogram,
	}
}

// LoggerConfig returns the logger configuration. Output is left to the
// logger default (stderr).
func (c *BenchConfig) LoggerConfig() logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = c.Log.Level
	lc.Format = c.Log.Format
	lc.Backend = c.Log.Backend
	return lc
}
