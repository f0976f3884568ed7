package engine

import (
	"fmt"
	"math"

	"github.com/porutham-dev/porutham/internal/domain/match"
)

// aggregate folds the component results into the overall 0..100 score,
// applies the critical-dosha caps, and writes the verdict. It mutates the
// report in place.
func aggregate(r *match.MatchReport) {
	var poruthamPoints float64
	for i := range r.Poruthams {
		p := &r.Poruthams[i]
		p.Points = statusPoints(p.Status)
		poruthamPoints += p.Points
		r.Summary.Add(p.Status)
	}

	individual := (r.GirlAnalysis.Total() + r.BoyAnalysis.Total()) / 6 * IndividualScale

	total := poruthamPoints + r.Papasamya.Points + r.Manglik.Points + individual

	// Caps run in severity order so CriticalDoshas reads worst first.
	applyCap := func(limit float64, reason string) {
		r.CriticalDoshas = append(r.CriticalDoshas, reason)
		if total > limit {
			total = limit
		}
	}
	if p := r.Porutham("Rajju"); p != nil && p.Status.IsCritical() {
		applyCap(CapRajjuDosha, "Rajju dosha")
	}
	if p := r.Porutham("Vedha"); p != nil && p.Status.IsCritical() {
		applyCap(CapVedhaDosha, "Vedha dosha")
	}
	if r.Papasamya.LessFavorable {
		applyCap(CapPapasamyaExcess, "Papasamya excess on the girl's side")
	}
	if !r.Manglik.Matched() {
		applyCap(CapManglikMismatch, "Manglik mismatch")
	}

	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	r.Overall = math.Round(total*10) / 10
	r.Verdict = verdict(r)
}

func verdict(r *match.MatchReport) string {
	if p := r.Porutham("Rajju"); p != nil && p.Status.IsCritical() {
		return "Not recommended: Rajju dosha is present, the classical rejection factor."
	}

	var note string
	if p := r.Porutham("Vedha"); p != nil && p.Status.IsCritical() {
		note = " Proceed with caution: the stars form a Vedha pair."
	} else if r.Papasamya.LessFavorable {
		note = " Proceed with caution: the girl's papa load clearly exceeds the boy's."
	}

	var band string
	switch {
	case r.Overall >= VerdictExcellentMin:
		band = "Excellent match"
	case r.Overall >= VerdictGoodMin:
		band = "Good match"
	case r.Overall >= VerdictWorkableMin:
		band = "Workable match with reservations"
	default:
		band = "Weak match"
	}
	return fmt.Sprintf("%s: %d of %d poruthams favorable, %.1f/100 overall.%s",
		band, r.Summary.Favorable(), len(r.Poruthams), r.Overall, note)
}
