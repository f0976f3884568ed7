package values

import "fmt"

// Rasi represents one of the twelve zodiac signs.
type Rasi string

const (
	Mesha     Rasi = "Mesha"
	Vrishabha Rasi = "Vrishabha"
	Mithuna   Rasi = "Mithuna"
	Karka     Rasi = "Karka"
	Simha     Rasi = "Simha"
	Kanya     Rasi = "Kanya"
	Tula      Rasi = "Tula"
	Vrischika Rasi = "Vrischika"
	Dhanu     Rasi = "Dhanu"
	Makara    Rasi = "Makara"
	Kumbha    Rasi = "Kumbha"
	Meena     Rasi = "Meena"
)

// AllRasis lists the twelve signs in zodiacal order, Mesha first.
var AllRasis = []Rasi{
	Mesha, Vrishabha, Mithuna, Karka, Simha, Kanya,
	Tula, Vrischika, Dhanu, Makara, Kumbha, Meena,
}

var rasiIndex = func() map[Rasi]int {
	m := make(map[Rasi]int, len(AllRasis))
	for i, r := range AllRasis {
		m[r] = i + 1
	}
	return m
}()

// Index returns the 1-based zodiacal ordinal (Mesha = 1 .. Meena = 12),
// or 0 for an invalid sign.
func (r Rasi) Index() int {
	return rasiIndex[r]
}

// Validate returns an error if the sign is not one of the twelve rasis.
func (r Rasi) Validate() error {
	if _, ok := rasiIndex[r]; !ok {
		return fmt.Errorf("invalid rasi: %s", r)
	}
	return nil
}

// String returns the canonical sign name.
func (r Rasi) String() string {
	return string(r)
}

// RasiCountFrom returns the inclusive forward count from one sign to another
// on the zodiac wheel, with the starting sign counted as position 1. The
// result is always in [1,12].
func RasiCountFrom(from, to Rasi) int {
	d := (to.Index() - from.Index()) % 12
	if d < 0 {
		d += 12
	}
	return d + 1
}
