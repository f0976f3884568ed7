// Package output renders match reports in the supported formats.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/porutham-dev/porutham/internal/domain/match"
)

// Formatter renders one match report to its writer.
type Formatter interface {
	Format(report *match.MatchReport) error
}

// Options carries run-scoped presentation state. Machine formats (json,
// yaml) ignore the run metadata so their output stays a pure function of
// the input charts.
type Options struct {
	// RunID identifies this invocation in human-readable output.
	RunID string
	// GeneratedAt is shown in table and html headers.
	GeneratedAt time.Time
	// Color enables ANSI colors in table output.
	Color bool
	// Indent pretty-prints JSON output.
	Indent bool
}

// NewFormatter returns the formatter for the given format name.
func NewFormatter(format string, w io.Writer, opts Options) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(w, opts), nil
	case "json":
		return NewJSONFormatter(w, opts.Indent), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	case "junit":
		return NewJUnitFormatter(w), nil
	case "html":
		return NewHTMLFormatter(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: %v)", format, SupportedFormats())
	}
}

// SupportedFormats lists the valid --format values.
func SupportedFormats() []string {
	return []string{"table", "json", "yaml", "junit", "html"}
}
