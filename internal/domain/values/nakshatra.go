package values

import "fmt"

// Nakshatra represents one of the 27 lunar mansions.
type Nakshatra string

const (
	Ashwini         Nakshatra = "Ashwini"
	Bharani         Nakshatra = "Bharani"
	Krittika        Nakshatra = "Krittika"
	Rohini          Nakshatra = "Rohini"
	Mrigasira       Nakshatra = "Mrigasira"
	Ardra           Nakshatra = "Ardra"
	Punarvasu       Nakshatra = "Punarvasu"
	Pushya          Nakshatra = "Pushya"
	Ashlesha        Nakshatra = "Ashlesha"
	Magha           Nakshatra = "Magha"
	PurvaPhalguni   Nakshatra = "Purva Phalguni"
	UttaraPhalguni  Nakshatra = "Uttara Phalguni"
	Hasta           Nakshatra = "Hasta"
	Chitra          Nakshatra = "Chitra"
	Swati           Nakshatra = "Swati"
	Vishakha        Nakshatra = "Vishakha"
	Anuradha        Nakshatra = "Anuradha"
	Jyeshta         Nakshatra = "Jyeshta"
	Moola           Nakshatra = "Moola"
	Purvashadha     Nakshatra = "Purvashadha"
	Uttarashadha    Nakshatra = "Uttarashadha"
	Shravana        Nakshatra = "Shravana"
	Dhanishta       Nakshatra = "Dhanishta"
	Satabhisha      Nakshatra = "Satabhisha"
	Purvabhadrapada Nakshatra = "Purvabhadrapada"
	Uttarabhadra    Nakshatra = "Uttarabhadrapada"
	Revati          Nakshatra = "Revati"
)

// AllNakshatras lists the 27 lunar mansions in zodiacal order, Ashwini first.
var AllNakshatras = []Nakshatra{
	Ashwini, Bharani, Krittika, Rohini, Mrigasira, Ardra,
	Punarvasu, Pushya, Ashlesha, Magha, PurvaPhalguni, UttaraPhalguni,
	Hasta, Chitra, Swati, Vishakha, Anuradha, Jyeshta,
	Moola, Purvashadha, Uttarashadha, Shravana, Dhanishta, Satabhisha,
	Purvabhadrapada, Uttarabhadra, Revati,
}

var nakshatraIndex = func() map[Nakshatra]int {
	m := make(map[Nakshatra]int, len(AllNakshatras))
	for i, n := range AllNakshatras {
		m[n] = i + 1
	}
	return m
}()

// Index returns the 1-based zodiacal ordinal (Ashwini = 1 .. Revati = 27),
// or 0 for an invalid nakshatra.
func (n Nakshatra) Index() int {
	return nakshatraIndex[n]
}

// Validate returns an error if the value is not one of the 27 nakshatras.
func (n Nakshatra) Validate() error {
	if _, ok := nakshatraIndex[n]; !ok {
		return fmt.Errorf("invalid nakshatra: %s", n)
	}
	return nil
}

// String returns the canonical nakshatra name.
func (n Nakshatra) String() string {
	return string(n)
}

// NakshatraCountFrom returns the inclusive forward count from one star to
// another around the 27-star wheel, with the starting star counted as
// position 1. The result is always in [1,27]; counting a star from itself
// yields 1.
func NakshatraCountFrom(from, to Nakshatra) int {
	d := (to.Index() - from.Index()) % 27
	if d < 0 {
		d += 27
	}
	return d + 1
}
