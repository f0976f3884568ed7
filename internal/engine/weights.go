package engine

import "github.com/porutham-dev/porutham/internal/domain/values"

// Aggregation constants. The overall score is the sum of four components on
// a 0..100 scale, then capped by the critical doshas below. Changing any of
// these shifts the documented regression score, so they are all named here.
const (
	// Porutham component, at most PoruthamMaxPoints per factor.
	PoruthamMaxPoints = 6.0

	PointsExcellent = 6.0
	PointsGood      = 5.0
	PointsAverage   = 3.0
	PointsBad       = 1.0
	PointsCritical  = 0.0

	// Papasamya component.
	PapasamyaEqualPoints = 10.0
	PapasamyaClosePoints = 8.0
	PapasamyaFarPoints   = 3.0
	PapasamyaCloseMargin = 3
	PapasamyaGirlExcess  = 3

	// Manglik component.
	ManglikMatchPoints    = 10.0
	ManglikMismatchPoints = 6.0

	// Individual component: mean of the six 0..10 scores scaled onto 20.
	IndividualScale = 2.0

	// Hard caps applied after the components are summed.
	CapRajjuDosha      = 45.0
	CapVedhaDosha      = 55.0
	CapPapasamyaExcess = 50.0
	CapManglikMismatch = 60.0
)

// Verdict bands for the overall score.
const (
	VerdictExcellentMin = 85.0
	VerdictGoodMin      = 70.0
	VerdictWorkableMin  = 55.0
)

// statusPoints maps a porutham status onto its share of the 60-point
// porutham component.
func statusPoints(s values.Status) float64 {
	switch s {
	case values.StatusExcellent:
		return PointsExcellent
	case values.StatusGood:
		return PointsGood
	case values.StatusAverage:
		return PointsAverage
	case values.StatusBad:
		return PointsBad
	default:
		return PointsCritical
	}
}
