package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/acp-bench/internal/core/bench"
	"github.com/yndnr/acp-bench/internal/core/domain"
)

const namespace = "acpbench"

// Registry holds all benchmark metrics.
type Registry struct {
	registry *prometheus.Registry

	RunsTotal     *prometheus.CounterVec
	ElapsedMillis *prometheus.GaugeVec
	Units         *prometheus.GaugeVec
	Rate          *prometheus.GaugeVec
	DecodeLatency *prometheus.GaugeVec
	TokensPerMsg  *prometheus.GaugeVec
}

// NewRegistry creates a metrics registry with every benchmark metric
// and the build information collector registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Benchmark runs by outcome: ok or the error code.",
		}, []string{"mode", "codec", "status"}),
		ElapsedMillis: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "elapsed_milliseconds",
			Help:      "Wall-clock time of the timed section, truncated to milliseconds.",
		}, []string{"mode", "codec"}),
		Units: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "units",
			Help:      "Units processed in the timed section (messages, ops or tokens).",
		}, []string{"mode", "codec", "unit"}),
		Rate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "units_per_second",
			Help:      "Units processed per second. Zero elapsed time reports units*1000.",
		}, []string{"mode", "codec", "unit"}),
		DecodeLatency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "decode_latency_seconds",
			Help:      "Per-message decode latency quantiles.",
		}, []string{"mode", "codec", "quantile"}),
		TokensPerMsg: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tokens_per_message",
			Help:      "Words carried by each tokens-mode message.",
		}, []string{"codec"}),
	}

	r.registry.MustRegister(
		r.RunsTotal,
		r.ElapsedMillis,
		r.Units,
		r.Rate,
		r.DecodeLatency,
		r.TokensPerMsg,
		NewCollector(),
	)

	return r
}

// ObserveResult records a successful run.
func (r *Registry) ObserveResult(codec string, res domain.Result) {
	mode := res.RunMode().String()

	r.RunsTotal.WithLabelValues(mode, codec, domain.StatusOK).Inc()
	r.ElapsedMillis.WithLabelValues(mode, codec).Set(float64(res.Elapsed()))

	switch v := res.(type) {
	case *domain.ThroughputResult:
		r.observeUnits(mode, codec, "messages", v.Count, v.MsgsPerSec)
	case *domain.CodecResult:
		r.observeUnits(mode, codec, "ops", v.Ops, v.OpsPerSec)
	case *domain.TokensResult:
		r.observeUnits(mode, codec, "messages", v.Messages, v.MsgsPerSec)
		r.observeUnits(mode, codec, "tokens", v.TotalTokens, v.TokensPerSec)
		r.TokensPerMsg.WithLabelValues(codec).Set(float64(v.TokensPerMsg))
	}
}

// ObserveFailure records a run that ended in err. The status label is
// the error code, or "error" for errors without one.
func (r *Registry) ObserveFailure(mode domain.Mode, codec string, err error) {
	status := domain.GetErrorCode(err)
	if status == "" {
		status = "error"
	}
	r.RunsTotal.WithLabelValues(mode.String(), codec, status).Inc()
}

// ObserveLatency records a decode latency summary.
func (r *Registry) ObserveLatency(mode domain.Mode, codec string, s bench.LatencySummary) {
	for q, d := range map[string]float64{
		"0.5":  s.P50.Seconds(),
		"0.95": s.P95.Seconds(),
		"0.99": s.P99.Seconds(),
		"1":    s.Max.Seconds(),
	} {
		r.DecodeLatency.WithLabelValues(mode.String(), codec, q).Set(d)
	}
}

// WriteTextfile writes all metrics in the Prometheus text format,
// atomically replacing path.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func (r *Registry) observeUnits(mode, codec, unit string, units, rate uint64) {
	r.Units.WithLabelValues(mode, codec, unit).Set(float64(units))
	r.Rate.WithLabelValues(mode, codec, unit).Set(float64(rate))
}
