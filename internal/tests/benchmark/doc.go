// Package benchmark provides go test benchmarks for the acp-bench codecs
// and workloads.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Compare codecs on one sample:
//
//	go test -bench='BenchmarkDecode/.*/session_update' -benchmem ./internal/tests/benchmark/...
//
// Generate performance report:
//
//	go test -bench=. -benchmem -count=5 ./internal/tests/benchmark/... | tee benchmark.txt
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
