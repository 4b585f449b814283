// Package metric exports benchmark results as Prometheus metrics.
//
// A Registry records one gauge set per finished run, labelled by mode
// and codec, and can be written to a node_exporter textfile:
//
//   - prometheus.go: result gauges, run counter, textfile export
//   - collector.go: build information collector
//
// Nothing is served over HTTP.
package metric
