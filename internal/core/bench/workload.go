package bench

import (
	"github.com/yndnr/acp-bench/internal/core/domain"
)

// ColdStart decodes the initialize request and encodes a response
// echoing its id under result.protocolVersion.
func (r *Runner) ColdStart() (*domain.LatencyResult, error) {
	start := r.now()
	if _, err := r.respondInitialize(); err != nil {
		return nil, err
	}
	elapsed := r.now().Sub(start)

	return &domain.LatencyResult{
		Status:    domain.StatusOK,
		Mode:      domain.ModeColdStart,
		ElapsedMS: domain.ElapsedMillis(elapsed),
	}, nil
}

// Roundtrip decodes the session/new request and encodes a response
// carrying the benchmark session id.
func (r *Runner) Roundtrip() (*domain.LatencyResult, error) {
	start := r.now()
	if _, err := r.respondSessionNew(); err != nil {
		return nil, err
	}
	elapsed := r.now().Sub(start)

	return &domain.LatencyResult{
		Status:    domain.StatusOK,
		Mode:      domain.ModeRoundtrip,
		ElapsedMS: domain.ElapsedMillis(elapsed),
	}, nil
}

// Throughput decodes Count messages, cycling through the sample table.
func (r *Runner) Throughput() (*domain.ThroughputResult, error) {
	if err := r.warmup(r.samples); err != nil {
		return nil, err
	}

	var decoded uint64
	start := r.now()
	for i := 0; i < r.cfg.Count; i++ {
		if _, err := r.decode(r.samples[i%len(r.samples)], "sample"); err != nil {
			return nil, err
		}
		decoded++
	}
	elapsed := r.now().Sub(start)

	if err := r.recordLatency(r.samples, "sample"); err != nil {
		return nil, err
	}

	return &domain.ThroughputResult{
		Status:     domain.StatusOK,
		Mode:       domain.ModeThroughput,
		Count:      decoded,
		ElapsedMS:  domain.ElapsedMillis(elapsed),
		MsgsPerSec: domain.Rate(decoded, elapsed),
	}, nil
}

// CodecOps decodes a sample and encodes a response keyed by the loop
// index on every iteration. Each decode and each encode counts as one op.
func (r *Runner) CodecOps() (*domain.CodecResult, error) {
	if err := r.warmup(r.samples); err != nil {
		return nil, err
	}

	var ops uint64
	start := r.now()
	for i := 0; i < r.cfg.Count; i++ {
		if _, err := r.decode(r.samples[i%len(r.samples)], "sample"); err != nil {
			return nil, err
		}
		ops++

		resp := domain.NewResponse(i, domain.SessionResult{SessionID: domain.CodecSessionID})
		if _, err := r.encode(resp, "codec response"); err != nil {
			return nil, err
		}
		ops++
	}
	elapsed := r.now().Sub(start)

	return &domain.CodecResult{
		Status:    domain.StatusOK,
		Mode:      domain.ModeCodec,
		Ops:       ops,
		ElapsedMS: domain.ElapsedMillis(elapsed),
		OpsPerSec: domain.Rate(ops, elapsed),
	}, nil
}

// Tokens decodes one session/update carrying Tokens words Count times.
func (r *Runner) Tokens() (*domain.TokensResult, error) {
	message, err := r.encode(domain.TokenUpdate(r.cfg.Tokens), "token update")
	if err != nil {
		return nil, err
	}
	if err := r.warmup([][]byte{message}); err != nil {
		return nil, err
	}

	tokensPerMsg := uint64(r.cfg.Tokens)
	var decoded, totalTokens uint64
	start := r.now()
	for i := 0; i < r.cfg.Count; i++ {
		if _, err := r.decode(message, "token update"); err != nil {
			return nil, err
		}
		decoded++
		totalTokens += tokensPerMsg
	}
	elapsed := r.now().Sub(start)

	if err := r.recordLatency([][]byte{message}, "token update"); err != nil {
		return nil, err
	}

	return &domain.TokensResult{
		Status:       domain.StatusOK,
		Mode:         domain.ModeTokens,
		Messages:     decoded,
		TokensPerMsg: tokensPerMsg,
		TotalTokens:  totalTokens,
		ElapsedMS:    domain.ElapsedMillis(elapsed),
		TokensPerSec: domain.Rate(totalTokens, elapsed),
		MsgsPerSec:   domain.Rate(decoded, elapsed),
	}, nil
}

func (r *Runner) respondInitialize() ([]byte, error) {
	parsed, err := r.decode([]byte(domain.InitializeRequest), "initialize")
	if err != nil {
		return nil, err
	}
	resp := domain.NewResponse(requestID(parsed), domain.InitializeResult{ProtocolVersion: domain.ProtocolVersion})
	return r.encode(resp, "initialize response")
}

func (r *Runner) respondSessionNew() ([]byte, error) {
	parsed, err := r.decode([]byte(domain.SessionNewRequest), "session/new")
	if err != nil {
		return nil, err
	}
	resp := domain.NewResponse(requestID(parsed), domain.SessionResult{SessionID: domain.BenchmarkSessionID})
	return r.encode(resp, "session/new response")
}

// recordLatency repeats the Count decodes of a workload after its
// measured window, timing each one into the histogram. No-op when the
// histogram is disabled.
func (r *Runner) recordLatency(messages [][]byte, what string) error {
	if r.latency == nil {
		return nil
	}

	r.latency.reset()
	for i := 0; i < r.cfg.Count; i++ {
		begin := r.now()
		_, err := r.decode(messages[i%len(messages)], what)
		r.latency.record(r.now().Sub(begin))
		if err != nil {
			return err
		}
	}
	return nil
}
