package metric

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yndnr/acp-bench/internal/infra/buildinfo"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	if c == nil {
		t.Fatal("NewCollector returned nil")
	}

	if n := testutil.CollectAndCount(c); n != 1 {
		t.Errorf("CollectAndCount() = %d, want 1", n)
	}

	info := buildinfo.Get()
	expected := `
# HELP acpbench_build_info Build information of the benchmark binary.
# TYPE acpbench_build_info gauge
acpbench_build_info{commit="` + info.Commit + `",go_version="` + info.GoVersion + `",version="` + info.Version + `"} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("CollectAndCompare() error = %v", err)
	}
}
