package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats data as compact JSON on a single line.
type JSONFormatter struct{}

// Format writes data as one line of JSON followed by a newline.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	return json.NewEncoder(w).Encode(data)
}
