// Package match holds the result model produced by a compatibility run.
// The types here are pure data: given the same pair of charts the engine
// produces a byte-identical report, so nothing in this package carries
// timestamps, identifiers, or other run-scoped state.
package match

import (
	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// PoruthamResult is the outcome of one of the ten porutham checks.
type PoruthamResult struct {
	// Index is the canonical 1-based position of the check in the
	// traditional ordering.
	Index       int           `json:"index" yaml:"index"`
	Name        string        `json:"name" yaml:"name"`
	Status      values.Status `json:"status" yaml:"status"`
	Points      float64       `json:"points" yaml:"points"`
	Explanation string        `json:"explanation" yaml:"explanation"`
}

// PapasamyaResult compares the malefic affliction load of the two charts.
type PapasamyaResult struct {
	GirlPoints    int     `json:"girl_points" yaml:"girl_points"`
	BoyPoints     int     `json:"boy_points" yaml:"boy_points"`
	Difference    int     `json:"difference" yaml:"difference"`
	LessFavorable bool    `json:"less_favorable" yaml:"less_favorable"`
	Points        float64 `json:"points" yaml:"points"`
	Verdict       string  `json:"verdict" yaml:"verdict"`
}

// ManglikResult reports the Mars affliction status of both charts.
type ManglikResult struct {
	Girl      bool    `json:"girl" yaml:"girl"`
	Boy       bool    `json:"boy" yaml:"boy"`
	Reference string  `json:"reference" yaml:"reference"`
	Points    float64 `json:"points" yaml:"points"`
	Verdict   string  `json:"verdict" yaml:"verdict"`
}

// Matched reports whether the two charts agree on Manglik status.
func (m ManglikResult) Matched() bool { return m.Girl == m.Boy }

// Contribution is one rule's signed effect on an individual score.
type Contribution struct {
	Rule  string  `json:"rule" yaml:"rule"`
	Delta float64 `json:"delta" yaml:"delta"`
}

// ScoreBreakdown is one 0..10 individual score with its audit trail.
type ScoreBreakdown struct {
	Score         float64        `json:"score" yaml:"score"`
	Label         string         `json:"label" yaml:"label"`
	Contributions []Contribution `json:"contributions,omitempty" yaml:"contributions,omitempty"`
}

// IndividualAnalysis holds the three per-person prospect scores.
type IndividualAnalysis struct {
	Name   string         `json:"name" yaml:"name"`
	Career ScoreBreakdown `json:"career" yaml:"career"`
	Wealth ScoreBreakdown `json:"wealth" yaml:"wealth"`
	Life   ScoreBreakdown `json:"life" yaml:"life"`
}

// Total returns the sum of the three scores, 0..30.
func (a IndividualAnalysis) Total() float64 {
	return a.Career.Score + a.Wealth.Score + a.Life.Score
}

// Summary counts porutham outcomes by status.
type Summary struct {
	Excellent int `json:"excellent" yaml:"excellent"`
	Good      int `json:"good" yaml:"good"`
	Average   int `json:"average" yaml:"average"`
	Bad       int `json:"bad" yaml:"bad"`
	Critical  int `json:"critical" yaml:"critical"`
}

// Add records one porutham status in the summary.
func (s *Summary) Add(st values.Status) {
	switch st {
	case values.StatusExcellent:
		s.Excellent++
	case values.StatusGood:
		s.Good++
	case values.StatusAverage:
		s.Average++
	case values.StatusBad:
		s.Bad++
	case values.StatusCritical:
		s.Critical++
	}
}

// Favorable returns the number of excellent or good outcomes.
func (s Summary) Favorable() int { return s.Excellent + s.Good }

// MatchReport is the complete outcome of a compatibility run for one pair
// of charts.
type MatchReport struct {
	Girl *chart.BirthChart `json:"girl" yaml:"girl"`
	Boy  *chart.BirthChart `json:"boy" yaml:"boy"`

	Poruthams []PoruthamResult `json:"poruthams" yaml:"poruthams"`
	Summary   Summary          `json:"summary" yaml:"summary"`

	Papasamya PapasamyaResult `json:"papasamya" yaml:"papasamya"`
	Manglik   ManglikResult   `json:"manglik" yaml:"manglik"`

	GirlAnalysis IndividualAnalysis `json:"girl_analysis" yaml:"girl_analysis"`
	BoyAnalysis  IndividualAnalysis `json:"boy_analysis" yaml:"boy_analysis"`

	// CriticalDoshas lists the doshas that cap the overall score, worst
	// first.
	CriticalDoshas []string `json:"critical_doshas,omitempty" yaml:"critical_doshas,omitempty"`

	// Overall is the aggregated score on a 0..100 scale, rounded to one
	// decimal place.
	Overall float64 `json:"overall" yaml:"overall"`
	Verdict string  `json:"verdict" yaml:"verdict"`
}

// Porutham returns the result with the given canonical name, or nil.
func (r *MatchReport) Porutham(name string) *PoruthamResult {
	for i := range r.Poruthams {
		if r.Poruthams[i].Name == name {
			return &r.Poruthams[i]
		}
	}
	return nil
}
