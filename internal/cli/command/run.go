package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/acp-bench/internal/cli/config"
	"github.com/yndnr/acp-bench/internal/cli/output"
	"github.com/yndnr/acp-bench/internal/core/bench"
	"github.com/yndnr/acp-bench/internal/core/codec"
	"github.com/yndnr/acp-bench/internal/core/domain"
	"github.com/yndnr/acp-bench/internal/telemetry/logger"
	"github.com/yndnr/acp-bench/internal/telemetry/metric"
)

// runAction merges the configuration, sets up logging and runs one
// benchmark.
func runAction(c *cli.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", c.Args().First())
	}

	cfg, err := config.Load(c.String(FlagConfig), "", flagOverrides(c))
	if err != nil {
		return err
	}
	if err := cfg.Verify(); err != nil {
		return err
	}

	lc := cfg.LoggerConfig()
	if c.App.ErrWriter != nil {
		lc.Output = c.App.ErrWriter
	}
	log, err := logger.New(lc)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	runID, err := domain.NewRunID()
	if err != nil {
		return err
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithRunID(logger.WithLogger(ctx, log), runID)

	return Execute(ctx, cfg, c.App.Writer, c.App.ErrWriter)
}

// Execute runs the benchmark described by cfg, writes the result to w
// and diagnostics to errW. cfg must have passed Verify.
func Execute(ctx context.Context, cfg *config.BenchConfig, w, errW io.Writer) error {
	log := logger.L(ctx)

	mode, err := domain.ParseMode(cfg.Bench.Mode)
	if err != nil {
		return err
	}
	cd, err := codec.Lookup(cfg.Bench.Codec)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	runner, err := bench.New(cd, cfg.BenchParams(), bench.WithLogger(log))
	if err != nil {
		return err
	}

	metrics := metric.NewRegistry()
	res, err := runner.Run(mode)
	if err != nil {
		log.Error("benchmark failed", "mode", mode.String(), "codec", cd.Name(), "error", err)
		metrics.ObserveFailure(mode, cd.Name(), err)
		if werr := writeMetrics(ctx, metrics, cfg.Output.Metrics); werr != nil {
			log.Warn("metrics export failed", "error", werr)
		}
		return err
	}

	metrics.ObserveResult(cd.Name(), res)
	log.Info("benchmark finished", "mode", mode.String(), "codec", cd.Name(), "elapsed_ms", res.Elapsed())

	if summary, ok := runner.Latency(); ok {
		metrics.ObserveLatency(mode, cd.Name(), summary)
		if errW != nil {
			fmt.Fprintf(errW, "decode latency p50/p95/p99/max (%d messages): %s\n", summary.Count, summary)
		}
	}

	if err := output.NewFormatter(format).Format(w, res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return writeMetrics(ctx, metrics, cfg.Output.Metrics)
}

// writeMetrics exports metrics to path. An empty path is a no-op.
func writeMetrics(ctx context.Context, metrics *metric.Registry, path string) error {
	if path == "" {
		return nil
	}
	if err := metrics.WriteTextfile(path); err != nil {
		return err
	}
	logger.L(ctx).Debug("metrics written", "path", path)
	return nil
}
