package tables

import "github.com/porutham-dev/porutham/internal/domain/values"

// Element is the classical element of a sign.
type Element string

const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

// rasiLords assigns each sign its ruling planet. Vrischika and Kumbha use
// their primary lords; the Ketu and Rahu co-lordships are ignored.
var rasiLords = map[values.Rasi]values.Planet{
	values.Mesha:     values.Mars,
	values.Vrishabha: values.Venus,
	values.Mithuna:   values.Mercury,
	values.Karka:     values.Moon,
	values.Simha:     values.Sun,
	values.Kanya:     values.Mercury,
	values.Tula:      values.Venus,
	values.Vrischika: values.Mars,
	values.Dhanu:     values.Jupiter,
	values.Makara:    values.Saturn,
	values.Kumbha:    values.Saturn,
	values.Meena:     values.Jupiter,
}

var rasiElements = map[values.Rasi]Element{
	values.Mesha:     ElementFire,
	values.Vrishabha: ElementEarth,
	values.Mithuna:   ElementAir,
	values.Karka:     ElementWater,
	values.Simha:     ElementFire,
	values.Kanya:     ElementEarth,
	values.Tula:      ElementAir,
	values.Vrischika: ElementWater,
	values.Dhanu:     ElementFire,
	values.Makara:    ElementEarth,
	values.Kumbha:    ElementAir,
	values.Meena:     ElementWater,
}

// Lord returns the ruling planet of the sign.
func Lord(r values.Rasi) (values.Planet, error) {
	p, ok := rasiLords[r]
	if !ok {
		return "", &CoverageError{Table: "rasi lords", Key: r.String()}
	}
	return p, nil
}

// ElementOf returns the classical element of the sign.
func ElementOf(r values.Rasi) (Element, error) {
	e, ok := rasiElements[r]
	if !ok {
		return "", &CoverageError{Table: "rasi elements", Key: r.String()}
	}
	return e, nil
}
