// Package buildinfo provides build information for acp-bench.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/acp-bench/internal/infra/buildinfo.Version=v1.0.0"
//
// GoVersion defaults to the running toolchain's version.
package buildinfo
