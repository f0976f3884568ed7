package values

import "fmt"

// Planet represents one of the nine grahas used in chart placements.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mars    Planet = "Mars"
	Mercury Planet = "Mercury"
	Jupiter Planet = "Jupiter"
	Venus   Planet = "Venus"
	Saturn  Planet = "Saturn"
	Rahu    Planet = "Rahu"
	Ketu    Planet = "Ketu"
)

// AllPlanets lists the nine grahas in canonical order. Every placement map
// must contain exactly these keys.
var AllPlanets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// Benefics are the natural benefic grahas used by the individual analyzers.
var Benefics = map[Planet]bool{
	Jupiter: true,
	Venus:   true,
	Moon:    true,
	Mercury: true,
}

// Malefics are the natural malefic grahas used by the individual analyzers.
var Malefics = map[Planet]bool{
	Sun:    true,
	Mars:   true,
	Saturn: true,
	Rahu:   true,
	Ketu:   true,
}

// Validate returns an error if the planet is not one of the nine grahas.
func (p Planet) Validate() error {
	switch p {
	case Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu:
		return nil
	default:
		return fmt.Errorf("invalid planet: %s", p)
	}
}

// String returns the canonical planet name.
func (p Planet) String() string {
	return string(p)
}

// IsBenefic reports whether the planet is a natural benefic.
func (p Planet) IsBenefic() bool {
	return Benefics[p]
}

// IsMalefic reports whether the planet is a natural malefic.
func (p Planet) IsMalefic() bool {
	return Malefics[p]
}
