package output

import (
	_ "embed"
	"html/template"
	"io"
	"time"

	"github.com/porutham-dev/porutham/internal/domain/match"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

var htmlTemplate = template.Must(template.New("report").Parse(reportTemplate))

// HTMLFormatter renders a self-contained single-page report.
type HTMLFormatter struct {
	writer io.Writer
	opts   Options
}

// NewHTMLFormatter creates an HTML formatter.
func NewHTMLFormatter(w io.Writer, opts Options) *HTMLFormatter {
	return &HTMLFormatter{writer: w, opts: opts}
}

type htmlPage struct {
	Report      *match.MatchReport
	Analyses    []match.IndividualAnalysis
	RunID       string
	GeneratedAt time.Time
}

// Format writes the report as HTML.
func (f *HTMLFormatter) Format(report *match.MatchReport) error {
	return htmlTemplate.Execute(f.writer, htmlPage{
		Report:      report,
		Analyses:    []match.IndividualAnalysis{report.GirlAnalysis, report.BoyAnalysis},
		RunID:       f.opts.RunID,
		GeneratedAt: f.opts.GeneratedAt,
	})
}
