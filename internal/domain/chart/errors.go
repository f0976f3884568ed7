package chart

import (
	"fmt"
	"strings"

	"github.com/porutham-dev/porutham/internal/domain/values"
)

// UnknownEntityError indicates a name that does not resolve to a canonical
// rasi, nakshatra, or planet. The Valid list lets the caller correct the
// input without consulting source code.
type UnknownEntityError struct {
	Field string
	Value string
	Valid []string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf(
		"unrecognized %s %q (valid values: %s)",
		e.Field, e.Value, strings.Join(e.Valid, ", "),
	)
}

// MissingPlanetError indicates a placement map that lacks one of the nine
// required grahas.
type MissingPlanetError struct {
	Chart  string
	Varga  string
	Planet values.Planet
}

func (e *MissingPlanetError) Error() string {
	return fmt.Sprintf(
		"%s chart: %s placements missing %s (all nine grahas are required: Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu)",
		e.Chart, e.Varga, e.Planet,
	)
}

// OutOfRangeError indicates a numeric field outside its allowed domain.
type OutOfRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s is %d, must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}
