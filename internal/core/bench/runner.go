package bench

import (
	"fmt"
	"time"

	"github.com/yndnr/acp-bench/internal/core/codec"
	"github.com/yndnr/acp-bench/internal/core/domain"
	"github.com/yndnr/acp-bench/internal/telemetry/logger"
)

// Default workload parameters.
const (
	DefaultCount  = 100
	DefaultTokens = 100
)

// Config holds workload parameters.
type Config struct {
	// Count is the number of iterations for throughput, codec and tokens.
	Count int
	// Tokens is the number of words in the tokens-mode payload.
	Tokens int
	// Warmup is the number of untimed decodes before timing starts.
	Warmup int
	// Histogram records per-message decode latency (throughput, tokens).
	Histogram bool
}

// DefaultConfig returns the default workload parameters.
func DefaultConfig() Config {
	return Config{
		Count:  DefaultCount,
		Tokens: DefaultTokens,
	}
}

// Validate checks the workload parameters.
func (c Config) Validate() error {
	if c.Count < 0 {
		return domain.ErrInvalidCount.WithDetails(fmt.Sprintf("got %d", c.Count))
	}
	if c.Tokens < 0 {
		return domain.ErrInvalidTokens.WithDetails(fmt.Sprintf("got %d", c.Tokens))
	}
	if c.Warmup < 0 {
		return domain.ErrInvalidCount.WithDetails(fmt.Sprintf("warmup got %d", c.Warmup))
	}
	return nil
}

// Runner runs benchmark workloads against a codec.
type Runner struct {
	codec   codec.Codec
	cfg     Config
	now     func() time.Time
	log     logger.Logger
	samples [][]byte
	latency *latencyRecorder
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the time source used for every measurement.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// New creates a Runner. A nil codec selects codec.Default().
func New(c codec.Codec, cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if c == nil {
		c = codec.Default()
	}

	r := &Runner{
		codec:   c,
		cfg:     cfg,
		now:     time.Now,
		log:     logger.Default(),
		samples: domain.Samples(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if cfg.Histogram {
		r.latency = newLatencyRecorder()
	}

	return r, nil
}

// Codec returns the codec under measurement.
func (r *Runner) Codec() codec.Codec {
	return r.codec
}

// Run executes the workload selected by mode.
func (r *Runner) Run(mode domain.Mode) (domain.Result, error) {
	r.log.Debug("running benchmark",
		"mode", mode.String(),
		"codec", r.codec.Name(),
		"count", r.cfg.Count,
		"tokens", r.cfg.Tokens,
		"warmup", r.cfg.Warmup)

	switch mode {
	case domain.ModeColdStart:
		return asResult(r.ColdStart())
	case domain.ModeRoundtrip:
		return asResult(r.Roundtrip())
	case domain.ModeThroughput:
		return asResult(r.Throughput())
	case domain.ModeCodec:
		return asResult(r.CodecOps())
	case domain.ModeTokens:
		return asResult(r.Tokens())
	default:
		return nil, domain.ErrInvalidMode.WithDetails(string(mode))
	}
}

// asResult keeps a failed run from surfacing as a non-nil Result
// holding a nil pointer.
func asResult[T domain.Result](res T, err error) (domain.Result, error) {
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Latency returns the per-message latency summary of the last
// throughput or tokens run. ok is false when the histogram is disabled
// or nothing was recorded.
func (r *Runner) Latency() (LatencySummary, bool) {
	if r.latency == nil || r.latency.count() == 0 {
		return LatencySummary{}, false
	}
	return r.latency.summary(), true
}

func (r *Runner) decode(data []byte, what string) (any, error) {
	var v any
	if err := r.codec.Unmarshal(data, &v); err != nil {
		return nil, domain.ErrCodecFailure.WithDetails("decode " + what).WithCause(err)
	}
	return v, nil
}

func (r *Runner) encode(v any, what string) ([]byte, error) {
	data, err := r.codec.Marshal(v)
	if err != nil {
		return nil, domain.ErrCodecFailure.WithDetails("encode " + what).WithCause(err)
	}
	return data, nil
}

func (r *Runner) warmup(messages [][]byte) error {
	if r.cfg.Warmup == 0 {
		return nil
	}
	for i := 0; i < r.cfg.Warmup; i++ {
		if _, err := r.decode(messages[i%len(messages)], "warmup"); err != nil {
			return err
		}
	}
	r.log.Debug("warmup finished", "decodes", r.cfg.Warmup)
	return nil
}

// requestID returns the "id" member of a decoded request, or nil.
func requestID(v any) any {
	if m, ok := v.(map[string]any); ok {
		return m["id"]
	}
	return nil
}
