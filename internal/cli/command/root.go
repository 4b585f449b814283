package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/acp-bench/internal/cli/config"
	"github.com/yndnr/acp-bench/internal/core/codec"
	"github.com/yndnr/acp-bench/internal/core/domain"
	"github.com/yndnr/acp-bench/internal/infra/buildinfo"
	"github.com/yndnr/acp-bench/internal/telemetry/logger"
)

// Flag names.
const (
	FlagMode        = "mode"
	FlagCount       = "count"
	FlagTokens      = "tokens"
	FlagCodec       = "codec"
	FlagOutput      = "output"
	FlagWarmup      = "warmup"
	FlagHistogram   = "histogram"
	FlagMetricsFile = "metrics-file"
	FlagConfig      = "config"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagLogBackend  = "log-backend"
)

// flagKeys maps each flag that mirrors a config field to its key.
var flagKeys = map[string]string{
	FlagMode:        config.KeyMode,
	FlagCount:       config.KeyCount,
	FlagTokens:      config.KeyTokens,
	FlagCodec:       config.KeyCodec,
	FlagOutput:      config.KeyOutputFormat,
	FlagWarmup:      config.KeyWarmup,
	FlagHistogram:   config.KeyHistogram,
	FlagMetricsFile: config.KeyOutputMetrics,
	FlagLogLevel:    config.KeyLogLevel,
	FlagLogFormat:   config.KeyLogFormat,
	FlagLogBackend:  config.KeyLogBackend,
}

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:            "acp-bench",
		Usage:           "Benchmark JSON-RPC message handling of the Agent Client Protocol",
		UsageText:       "acp-bench [--mode " + domain.ModeNames() + "] [--count N] [--tokens N]",
		Version:         buildinfo.String(),
		Flags:           globalFlags(),
		HideHelpCommand: true,
		Action:          runAction,
		After: func(c *cli.Context) error {
			// stderr may not support fsync
			_ = logger.Sync()
			return nil
		},
	}

	return app
}

// globalFlags returns the CLI flags. Defaults shown in help come from
// config.Default; only flags set on the command line override the
// merged configuration.
func globalFlags() []cli.Flag {
	def := config.Default()

	return []cli.Flag{
		&cli.StringFlag{
			Name:  FlagMode,
			Usage: "Benchmark mode: " + domain.ModeNames(),
			Value: def.Bench.Mode,
		},
		&cli.IntFlag{
			Name:  FlagCount,
			Usage: "Iterations for throughput, codec and tokens",
			Value: def.Bench.Count,
		},
		&cli.IntFlag{
			Name:  FlagTokens,
			Usage: "Words per message in tokens mode",
			Value: def.Bench.Tokens,
		},
		&cli.StringFlag{
			Name:  FlagCodec,
			Usage: fmt.Sprintf("JSON codec: %v", codec.Names()),
			Value: def.Bench.Codec,
		},
		&cli.StringFlag{
			Name:    FlagOutput,
			Aliases: []string{"o"},
			Usage:   "Output format: json, yaml, table",
			Value:   def.Output.Format,
		},
		&cli.IntFlag{
			Name:  FlagWarmup,
			Usage: "Untimed decode passes before measuring",
			Value: def.Bench.Warmup,
		},
		&cli.BoolFlag{
			Name:  FlagHistogram,
			Usage: "Print per-message decode latency percentiles to stderr",
		},
		&cli.StringFlag{
			Name:  FlagMetricsFile,
			Usage: "Write the result as Prometheus text exposition to `FILE`",
		},
		&cli.StringFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   "Load configuration from YAML `FILE`",
		},
		&cli.StringFlag{
			Name:  FlagLogLevel,
			Usage: "Log level: debug, info, warn, error",
			Value: def.Log.Level,
		},
		&cli.StringFlag{
			Name:  FlagLogFormat,
			Usage: "Log format: text, json",
			Value: def.Log.Format,
		},
		&cli.StringFlag{
			Name:  FlagLogBackend,
			Usage: "Log backend: slog, zap",
			Value: def.Log.Backend,
		},
	}
}

// flagOverrides returns the config keys of every flag set on the
// command line, with their values.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		if !c.IsSet(name) {
			continue
		}
		switch name {
		case FlagCount, FlagTokens, FlagWarmup:
			overrides[key] = c.Int(name)
		case FlagHistogram:
			overrides[key] = c.Bool(name)
		default:
			overrides[key] = c.String(name)
		}
	}
	return overrides
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
