// Package chart defines the canonical birth chart model. Charts are
// constructed once from already-canonicalized enum values, validated
// eagerly, and never mutated afterwards.
package chart

import (
	"fmt"

	"github.com/porutham-dev/porutham/internal/domain/values"
)

// PlacementMap maps each of the nine grahas to a house 1..12 counted from
// the chart's ascendant.
type PlacementMap map[values.Planet]int

// Dasha describes the currently running planetary period.
type Dasha struct {
	Lord    values.Planet `json:"lord" yaml:"lord"`
	EndYear int           `json:"end_year,omitempty" yaml:"end_year,omitempty"`
}

// String renders the dasha in the conventional "Lord (till YYYY)" form.
func (d Dasha) String() string {
	if d.EndYear == 0 {
		return d.Lord.String()
	}
	return fmt.Sprintf("%s (till %d)", d.Lord, d.EndYear)
}

// BirthChart is one person's canonicalized chart. All fields hold canonical
// enum values; New rejects anything else.
type BirthChart struct {
	Name      string           `json:"name" yaml:"name"`
	Rasi      values.Rasi      `json:"rasi" yaml:"rasi"`
	Nakshatra values.Nakshatra `json:"nakshatra" yaml:"nakshatra"`
	Pada      int              `json:"pada" yaml:"pada"`
	Lagna     values.Rasi      `json:"lagna" yaml:"lagna"`
	Dasha     Dasha            `json:"dasha" yaml:"dasha"`
	// Placements holds rasi-chart houses counted from the Lagna.
	Placements PlacementMap `json:"placements" yaml:"placements"`
	// Navamsa holds D9 houses counted from the navamsa Lagna.
	Navamsa PlacementMap `json:"navamsa" yaml:"navamsa"`
}

// New validates and returns a birth chart. Validation is eager and total:
// enums must be canonical, pada must be 1..4, and both placement maps must
// cover exactly the nine grahas with houses in 1..12.
func New(name string, rasi values.Rasi, nakshatra values.Nakshatra, pada int,
	lagna values.Rasi, dasha Dasha, placements, navamsa PlacementMap) (*BirthChart, error) {

	c := &BirthChart{
		Name:       name,
		Rasi:       rasi,
		Nakshatra:  nakshatra,
		Pada:       pada,
		Lagna:      lagna,
		Dasha:      dasha,
		Placements: placements,
		Navamsa:    navamsa,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every invariant of the chart.
func (c *BirthChart) Validate() error {
	if err := c.Rasi.Validate(); err != nil {
		return unknownRasi("rasi", c.Rasi)
	}
	if err := c.Lagna.Validate(); err != nil {
		return unknownRasi("lagna", c.Lagna)
	}
	if err := c.Nakshatra.Validate(); err != nil {
		return &UnknownEntityError{
			Field: "nakshatra", Value: c.Nakshatra.String(), Valid: nakshatraNames(),
		}
	}
	if c.Pada < 1 || c.Pada > 4 {
		return &OutOfRangeError{Field: "nakshatra pada", Value: c.Pada, Min: 1, Max: 4}
	}
	if err := c.Dasha.Lord.Validate(); err != nil {
		return &UnknownEntityError{
			Field: "dasha lord", Value: c.Dasha.Lord.String(), Valid: planetNames(),
		}
	}
	if err := c.validatePlacements("rasi", c.Placements); err != nil {
		return err
	}
	return c.validatePlacements("navamsa", c.Navamsa)
}

func (c *BirthChart) validatePlacements(varga string, m PlacementMap) error {
	for _, p := range values.AllPlanets {
		house, ok := m[p]
		if !ok {
			return &MissingPlanetError{Chart: c.Name, Varga: varga, Planet: p}
		}
		if house < 1 || house > 12 {
			return &OutOfRangeError{
				Field: fmt.Sprintf("%s %s house for %s", c.Name, varga, p),
				Value: house, Min: 1, Max: 12,
			}
		}
	}
	for p := range m {
		if err := p.Validate(); err != nil {
			return &UnknownEntityError{Field: varga + " placement planet", Value: p.String(), Valid: planetNames()}
		}
	}
	return nil
}

// HousesFrom re-counts the rasi-chart placements from the house occupied by
// the reference planet, so Moon- and Venus-relative papa checks reuse the
// Lagna placements.
func (c *BirthChart) HousesFrom(ref values.Planet) (PlacementMap, error) {
	refHouse, ok := c.Placements[ref]
	if !ok {
		return nil, &MissingPlanetError{Chart: c.Name, Varga: "rasi", Planet: ref}
	}
	out := make(PlacementMap, len(c.Placements))
	for p, h := range c.Placements {
		d := (h - refHouse) % 12
		if d < 0 {
			d += 12
		}
		out[p] = d + 1
	}
	return out, nil
}

// PlanetsInHouses returns the planets occupying any of the given rasi-chart
// houses, in canonical planet order.
func (c *BirthChart) PlanetsInHouses(houses ...int) []values.Planet {
	want := make(map[int]bool, len(houses))
	for _, h := range houses {
		want[h] = true
	}
	var out []values.Planet
	for _, p := range values.AllPlanets {
		if want[c.Placements[p]] {
			out = append(out, p)
		}
	}
	return out
}

func unknownRasi(field string, r values.Rasi) error {
	return &UnknownEntityError{Field: field, Value: r.String(), Valid: rasiNames()}
}

func rasiNames() []string {
	out := make([]string, len(values.AllRasis))
	for i, r := range values.AllRasis {
		out[i] = r.String()
	}
	return out
}

func nakshatraNames() []string {
	out := make([]string, len(values.AllNakshatras))
	for i, n := range values.AllNakshatras {
		out[i] = n.String()
	}
	return out
}

func planetNames() []string {
	out := make([]string, len(values.AllPlanets))
	for i, p := range values.AllPlanets {
		out[i] = p.String()
	}
	return out
}
