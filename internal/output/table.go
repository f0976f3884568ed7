package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/porutham-dev/porutham/internal/domain/match"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// ANSI escape sequences for the table formatter.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiRedBg  = "\033[41m"
)

// TableFormatter renders the report as a human-readable terminal table.
type TableFormatter struct {
	writer io.Writer
	opts   Options
}

// NewTableFormatter creates a table formatter.
func NewTableFormatter(w io.Writer, opts Options) *TableFormatter {
	return &TableFormatter{writer: w, opts: opts}
}

func (f *TableFormatter) color(code, s string) string {
	if !f.opts.Color {
		return s
	}
	return code + s + ansiReset
}

func (f *TableFormatter) statusCell(s values.Status) string {
	switch s {
	case values.StatusExcellent:
		return f.color(ansiGreen, "✓ excellent")
	case values.StatusGood:
		return f.color(ansiCyan, "✓ good")
	case values.StatusAverage:
		return f.color(ansiYellow, "~ average")
	case values.StatusBad:
		return f.color(ansiRed, "✗ bad")
	default:
		return f.color(ansiRedBg, "‼ critical")
	}
}

// Format writes the full report.
func (f *TableFormatter) Format(report *match.MatchReport) error {
	w := f.writer

	fmt.Fprintf(w, "%s\n", f.color(ansiBold, fmt.Sprintf("Match: %s & %s", report.Girl.Name, report.Boy.Name)))
	fmt.Fprintf(w, "Girl: %s nakshatra, %s rasi, %s lagna, %s dasha\n",
		report.Girl.Nakshatra, report.Girl.Rasi, report.Girl.Lagna, report.Girl.Dasha)
	fmt.Fprintf(w, "Boy:  %s nakshatra, %s rasi, %s lagna, %s dasha\n",
		report.Boy.Nakshatra, report.Boy.Rasi, report.Boy.Lagna, report.Boy.Dasha)
	if f.opts.RunID != "" {
		fmt.Fprintf(w, "Run: %s at %s\n", f.opts.RunID, f.opts.GeneratedAt.Format(time.RFC3339))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Poruthams:")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	for _, p := range report.Poruthams {
		fmt.Fprintf(w, "%2d. %-15s %-22s %4.1f pts\n", p.Index, p.Name, f.statusCell(p.Status), p.Points)
		fmt.Fprintf(w, "    %s\n", p.Explanation)
	}
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "Favorable: %d of %d (excellent %d, good %d, average %d, bad %d, critical %d)\n\n",
		report.Summary.Favorable(), len(report.Poruthams),
		report.Summary.Excellent, report.Summary.Good, report.Summary.Average,
		report.Summary.Bad, report.Summary.Critical)

	fmt.Fprintln(w, "Doshas:")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "Papasamya: girl %d, boy %d (difference %+d)\n    %s\n",
		report.Papasamya.GirlPoints, report.Papasamya.BoyPoints, report.Papasamya.Difference,
		report.Papasamya.Verdict)
	fmt.Fprintf(w, "Manglik (from %s): girl %s, boy %s\n    %s\n\n",
		report.Manglik.Reference, yesNo(report.Manglik.Girl), yesNo(report.Manglik.Boy),
		report.Manglik.Verdict)

	f.formatAnalysis(report.GirlAnalysis)
	f.formatAnalysis(report.BoyAnalysis)

	fmt.Fprintln(w, strings.Repeat("─", 80))
	if len(report.CriticalDoshas) > 0 {
		fmt.Fprintf(w, "%s %s\n", f.color(ansiRed, "Critical doshas:"), strings.Join(report.CriticalDoshas, "; "))
	}
	fmt.Fprintf(w, "%s %.1f / 100\n", f.color(ansiBold, "Overall:"), report.Overall)
	fmt.Fprintln(w, report.Verdict)
	return nil
}

func (f *TableFormatter) formatAnalysis(a match.IndividualAnalysis) {
	w := f.writer
	fmt.Fprintf(w, "%s\n", f.color(ansiBold, a.Name))
	for _, row := range []struct {
		name string
		b    match.ScoreBreakdown
	}{
		{"Career", a.Career},
		{"Wealth", a.Wealth},
		{"Life", a.Life},
	} {
		fmt.Fprintf(w, "  %-7s %4.1f/10  %s\n", row.name, row.b.Score, row.b.Label)
		for _, c := range row.b.Contributions {
			fmt.Fprintf(w, "          %+.1f  %s\n", c.Delta, c.Rule)
		}
	}
	fmt.Fprintln(w)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
