package output

import (
	"encoding/json"
	"io"

	"sweep/scan"
)

// JSON writes the full report as indented JSON, for piping into other
// tooling.
type JSON struct {
	writer io.Writer
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{writer: w}
}

func (j *JSON) Update(report scan.Report) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
