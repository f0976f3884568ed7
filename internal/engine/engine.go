// Package engine evaluates a pair of birth charts: the ten poruthams, the
// two dosha analyses, the per-person prospect scores, and the aggregated
// overall score.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/match"
)

// checkFunc computes one porutham for a (girl, boy) pair.
type checkFunc func(girl, boy *chart.BirthChart) (match.PoruthamResult, error)

type poruthamCheck struct {
	name string
	run  checkFunc
}

// poruthamChecks is the canonical ordering. Evaluation may run in parallel
// but the report always lists results in this order.
var poruthamChecks = []poruthamCheck{
	{"Dina", checkDina},
	{"Gana", checkGana},
	{"Yoni", checkYoni},
	{"Rasi", checkRasi},
	{"Rasi Adhipathi", checkRasiAdhipathi},
	{"Stree Dheergha", checkStreeDheergha},
	{"Vasya", checkVasya},
	{"Mahendra", checkMahendra},
	{"Rajju", checkRajju},
	{"Vedha", checkVedha},
}

// Config controls evaluation behavior.
type Config struct {
	// ManglikReference selects the chart Mars is judged from: lagna
	// (default), moon, or venus.
	ManglikReference string
	// Parallel runs the porutham checks concurrently. Results are
	// identical either way; the checks are pure.
	Parallel bool
}

// DefaultConfig returns the standard evaluation settings.
func DefaultConfig() Config {
	return Config{ManglikReference: "lagna", Parallel: true}
}

// Engine evaluates chart pairs. It is stateless and safe for concurrent use.
type Engine struct {
	config Config
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{config: cfg}
}

// Evaluate runs the full analysis for one pair. The result is a pure
// function of the two charts and the configuration: evaluating the same
// inputs twice yields identical reports.
func (e *Engine) Evaluate(ctx context.Context, girl, boy *chart.BirthChart) (*match.MatchReport, error) {
	slog.Debug("evaluating match",
		"girl", girl.Name, "boy", boy.Name,
		"girl_nakshatra", girl.Nakshatra, "boy_nakshatra", boy.Nakshatra)

	report := &match.MatchReport{
		Girl:      girl,
		Boy:       boy,
		Poruthams: make([]match.PoruthamResult, len(poruthamChecks)),
	}

	g, ctx := errgroup.WithContext(ctx)
	if !e.config.Parallel {
		g.SetLimit(1)
	}

	for i, check := range poruthamChecks {
		g.Go(func() error {
			result, err := check.run(girl, boy)
			if err != nil {
				return fmt.Errorf("%s porutham: %w", check.name, err)
			}
			result.Index = i + 1
			report.Poruthams[i] = result
			return nil
		})
	}

	g.Go(func() error {
		papasamya, err := analyzePapasamya(girl, boy)
		if err != nil {
			return err
		}
		report.Papasamya = papasamya
		return nil
	})
	g.Go(func() error {
		manglik, err := analyzeManglik(girl, boy, e.config.ManglikReference)
		if err != nil {
			return err
		}
		report.Manglik = manglik
		return nil
	})
	g.Go(func() error {
		report.GirlAnalysis = analyzeIndividual(girl)
		report.BoyAnalysis = analyzeIndividual(boy)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aggregate(report)

	slog.Debug("match evaluated",
		"overall", report.Overall, "favorable", report.Summary.Favorable())
	return report, nil
}
