package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/porutham-dev/porutham/internal/domain/match"
)

// YAMLFormatter renders the report as YAML. Like the JSON formatter it
// carries no run metadata.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the report as YAML.
func (f *YAMLFormatter) Format(report *match.MatchReport) error {
	enc := yaml.NewEncoder(f.writer, yaml.Indent(2))
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
