package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/porutham-dev/porutham/internal/config"
	"github.com/porutham-dev/porutham/internal/engine"
	"github.com/porutham-dev/porutham/internal/output"
)

var (
	format     string
	outFile    string
	filterExpr string
	openReport bool
)

var matchCmd = &cobra.Command{
	Use:   "match <input.(json|yaml)>",
	Short: "Evaluate the compatibility of a pair of charts",
	Long: `Load a match-input file with both charts and run the full analysis:
the ten poruthams, Papasamya, Manglik, the individual prospect scores, and
the aggregated 0-100 compatibility score.

Filtering:
  --filter limits the porutham rows shown in the report, e.g.
  --filter 'status == "bad"'
  --filter 'points < 3 || name == "Rajju"'`,
	Example: `  porutham match couple.json
  porutham match couple.yaml --format json --output report.json
  porutham match couple.json --format html --open
  porutham match couple.json --filter 'status in ["bad", "critical"]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&format, "format", "", "Output format: table, json, yaml, junit, html")
	matchCmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&filterExpr, "filter", "", "Porutham row filter expression (e.g. 'status == \"bad\"')")
	matchCmd.Flags().BoolVar(&openReport, "open", false, "Open the report in a browser (html format only)")
}

func runMatch(cmd *cobra.Command, inputPath string) error {
	settings, err := config.SettingsFromViper(viper.GetViper())
	if err != nil {
		return err
	}
	if format == "" {
		format = settings.DefaultFormat
	}
	if openReport && format != "html" {
		return fmt.Errorf("--open requires --format html")
	}
	if openReport && outFile == "" {
		return fmt.Errorf("--open requires --output with a file path")
	}

	slog.Debug("loading match input", "path", inputPath)
	in, err := config.Load(inputPath)
	if err != nil {
		return err
	}
	girl, boy, err := in.Charts()
	if err != nil {
		return err
	}

	cfg := engine.DefaultConfig()
	cfg.ManglikReference = settings.ManglikReference
	report, err := engine.New(cfg).Evaluate(cmd.Context(), girl, boy)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		prog, err := engine.CompileFilter(filterExpr)
		if err != nil {
			return err
		}
		rows, err := engine.FilterPoruthams(report.Poruthams, prog)
		if err != nil {
			return err
		}
		slog.Debug("filter applied", "expression", filterExpr, "rows", len(rows))
		report.Poruthams = rows
	}

	writer, closeWriter, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeWriter()

	formatter, err := output.NewFormatter(format, writer, output.Options{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Color:       settings.Color && outFile == "",
		Indent:      true,
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if openReport {
		if err := browser.OpenFile(outFile); err != nil {
			return fmt.Errorf("opening report in browser: %w", err)
		}
	}
	return nil
}

// openOutput returns the report writer and a close function. Stdout is used
// when no path is given.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
