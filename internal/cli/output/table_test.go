package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/yndnr/acp-bench/internal/core/domain"
)

func TestTableFormatter_Format_Table(t *testing.T) {
	table := &Table{
		Headers: []string{"NAME", "VALUE"},
		Rows: [][]string{
			{"key1", "value1"},
			{"key2", "value2"},
		},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME") {
		t.Error("Format() missing header NAME")
	}
	if !strings.Contains(output, "key1") {
		t.Error("Format() missing row data key1")
	}
}

func TestTableFormatter_Format_TableValue(t *testing.T) {
	table := Table{
		Headers: []string{"COL"},
		Rows:    [][]string{{"data"}},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "data") {
		t.Error("Format() missing data from Table value")
	}
}

func TestTableFormatter_Format_Result(t *testing.T) {
	res := &domain.CodecResult{
		Status:    domain.StatusOK,
		Mode:      domain.ModeCodec,
		Ops:       200,
		ElapsedMS: 1,
		OpsPerSec: 150000,
	}

	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(&buf, res); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("Format() lines = %d, want 6:\n%s", len(lines), buf.String())
	}
	wantFields := []string{"FIELD", "status", "mode", "ops", "elapsed_ms", "ops_per_sec"}
	for i, want := range wantFields {
		if got := strings.Fields(lines[i])[0]; got != want {
			t.Errorf("line %d field = %q, want %q", i, got, want)
		}
	}
	if got := strings.Fields(lines[5])[1]; got != "150000" {
		t.Errorf("ops_per_sec = %q, want %q", got, "150000")
	}
}

func TestTableFormatter_Format_NoHeaders(t *testing.T) {
	res := &domain.LatencyResult{Status: domain.StatusOK, Mode: domain.ModeRoundtrip}

	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}
	if err := f.Format(&buf, res); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if strings.Contains(buf.String(), "FIELD") {
		t.Error("Format() should omit headers")
	}
	if !strings.Contains(buf.String(), "roundtrip") {
		t.Error("Format() missing mode value")
	}
}

func TestTableFormatter_Format_Nil(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, nil); err != nil {
		t.Errorf("Format(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format(nil) wrote %q, want nothing", buf.String())
	}
}

func TestTableFormatter_Format_FallbackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, []int{1, 2}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[") {
		t.Errorf("Format() = %q, want JSON fallback", buf.String())
	}
}

func TestTableFormatter_Format_SkipFields(t *testing.T) {
	type row struct {
		Shown  string `json:"shown"`
		Hidden string `json:"-"`
		plain  string
		NoTag  int
	}

	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(&buf, row{Shown: "yes", Hidden: "no", plain: "x", NoTag: 3}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "Hidden") || strings.Contains(output, "plain") {
		t.Errorf("Format() leaked skipped fields:\n%s", output)
	}
	if !strings.Contains(output, "no_tag") {
		t.Errorf("Format() missing snake_case name for untagged field:\n%s", output)
	}
}

func TestTable_AddRowAndHeaders(t *testing.T) {
	table := &Table{}
	table.SetHeaders("A", "B")
	table.AddRow("1", "2")

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "A  B\n1  2\n"
	if buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}
}

func TestFormatValue(t *testing.T) {
	var nilPtr *int
	n := 7

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"empty string", "", "-"},
		{"int", int64(-3), "-3"},
		{"uint", uint64(42), "42"},
		{"float", 1.5, "1.50"},
		{"bool", true, "true"},
		{"nil pointer", nilPtr, "-"},
		{"pointer", &n, "7"},
		{"mode", domain.ModeTokens, "tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(reflect.ValueOf(tt.in)); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"ElapsedMS", "elapsed_m_s"},
		{"MsgsPerSec", "msgs_per_sec"},
		{"a", "a"},
	}

	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
