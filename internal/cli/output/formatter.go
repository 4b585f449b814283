package output

import (
	"io"
	"strings"

	"github.com/yndnr/acp-bench/internal/core/domain"
)

// Format represents the output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = FormatJSON

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTable}
}

// ParseFormat converts a format name to a Format. Matching is
// case-insensitive; an empty name selects DefaultFormat.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return DefaultFormat, nil
	}
	f := Format(strings.ToLower(s))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", domain.ErrInvalidOutput.WithDetails("want json, yaml or table, got \"" + s + "\"")
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &JSONFormatter{}
	}
}
