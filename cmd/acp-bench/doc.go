// Package main provides the entry point for acp-bench.
//
// acp-bench measures how fast Agent Client Protocol JSON-RPC messages
// are decoded and encoded, and prints one line of JSON per run:
//
//	acp-bench --mode throughput --count 1000
//	acp-bench --mode tokens --tokens 200 --codec sonic
//	acp-bench --config bench.yaml --output table
package main
