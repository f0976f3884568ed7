// Package tables holds the immutable classical reference data: per-nakshatra
// traits, sign lordships, and the compatibility matrices. Every table is
// exhaustively keyed by canonical enum values and checked for full coverage
// and internal consistency at package initialization; a lookup that misses
// despite those checks surfaces as a CoverageError.
package tables

import "github.com/porutham-dev/porutham/internal/domain/values"

// nakshatraTraits bundles the fixed classical attributes of one star.
type nakshatraTraits struct {
	Gana  values.Gana
	Yoni  values.Yoni
	Rajju values.RajjuGroup
	Vedha values.Nakshatra
}

var nakshatraTable = map[values.Nakshatra]nakshatraTraits{
	values.Ashwini:         {values.GanaDeva, values.YoniAshwa, values.RajjuPada, values.Jyeshta},
	values.Bharani:         {values.GanaManushya, values.YoniGaja, values.RajjuKati, values.Anuradha},
	values.Krittika:        {values.GanaRakshasa, values.YoniMesha, values.RajjuNabhi, values.Vishakha},
	values.Rohini:          {values.GanaManushya, values.YoniSarpa, values.RajjuKantha, values.Swati},
	values.Mrigasira:       {values.GanaDeva, values.YoniSarpa, values.RajjuSiro, values.Chitra},
	values.Ardra:           {values.GanaManushya, values.YoniShwan, values.RajjuKantha, values.Hasta},
	values.Punarvasu:       {values.GanaDeva, values.YoniMarjara, values.RajjuNabhi, values.UttaraPhalguni},
	values.Pushya:          {values.GanaDeva, values.YoniMesha, values.RajjuKati, values.PurvaPhalguni},
	values.Ashlesha:        {values.GanaRakshasa, values.YoniMarjara, values.RajjuPada, values.Magha},
	values.Magha:           {values.GanaRakshasa, values.YoniMushaka, values.RajjuPada, values.Ashlesha},
	values.PurvaPhalguni:   {values.GanaManushya, values.YoniMushaka, values.RajjuKati, values.Pushya},
	values.UttaraPhalguni:  {values.GanaManushya, values.YoniGo, values.RajjuNabhi, values.Punarvasu},
	values.Hasta:           {values.GanaDeva, values.YoniMahisha, values.RajjuKantha, values.Ardra},
	values.Chitra:          {values.GanaRakshasa, values.YoniVyaghra, values.RajjuSiro, values.Mrigasira},
	values.Swati:           {values.GanaDeva, values.YoniMahisha, values.RajjuKantha, values.Rohini},
	values.Vishakha:        {values.GanaRakshasa, values.YoniVyaghra, values.RajjuNabhi, values.Krittika},
	values.Anuradha:        {values.GanaDeva, values.YoniMriga, values.RajjuKati, values.Bharani},
	values.Jyeshta:         {values.GanaRakshasa, values.YoniMriga, values.RajjuPada, values.Ashwini},
	values.Moola:           {values.GanaRakshasa, values.YoniShwan, values.RajjuPada, values.Revati},
	values.Purvashadha:     {values.GanaManushya, values.YoniVanara, values.RajjuKati, values.Uttarabhadra},
	values.Uttarashadha:    {values.GanaManushya, values.YoniNakula, values.RajjuNabhi, values.Purvabhadrapada},
	values.Shravana:        {values.GanaDeva, values.YoniVanara, values.RajjuKantha, values.Satabhisha},
	values.Dhanishta:       {values.GanaRakshasa, values.YoniSimha, values.RajjuSiro, values.Revati},
	values.Satabhisha:      {values.GanaRakshasa, values.YoniAshwa, values.RajjuKantha, values.Shravana},
	values.Purvabhadrapada: {values.GanaManushya, values.YoniSimha, values.RajjuNabhi, values.Uttarashadha},
	values.Uttarabhadra:    {values.GanaManushya, values.YoniGo, values.RajjuKati, values.Purvashadha},
	values.Revati:          {values.GanaDeva, values.YoniGaja, values.RajjuPada, values.Moola},
}

// Gana returns the temperament category of the star.
func Gana(n values.Nakshatra) (values.Gana, error) {
	t, ok := nakshatraTable[n]
	if !ok {
		return "", &CoverageError{Table: "nakshatra", Key: n.String()}
	}
	return t.Gana, nil
}

// YoniOf returns the yoni animal of the star.
func YoniOf(n values.Nakshatra) (values.Yoni, error) {
	t, ok := nakshatraTable[n]
	if !ok {
		return "", &CoverageError{Table: "nakshatra", Key: n.String()}
	}
	return t.Yoni, nil
}

// Rajju returns the rope group of the star.
func Rajju(n values.Nakshatra) (values.RajjuGroup, error) {
	t, ok := nakshatraTable[n]
	if !ok {
		return "", &CoverageError{Table: "nakshatra", Key: n.String()}
	}
	return t.Rajju, nil
}

// VedhaPartner returns the star's single designated obstruction partner.
func VedhaPartner(n values.Nakshatra) (values.Nakshatra, error) {
	t, ok := nakshatraTable[n]
	if !ok {
		return "", &CoverageError{Table: "nakshatra", Key: n.String()}
	}
	return t.Vedha, nil
}

// HasVedha reports whether the two stars form an obstructing pair. The
// relation is checked in both directions: the classical pair list is an
// involution for 26 of the 27 stars, with Dhanishta pointing at Revati
// while Revati's own partner is Moola.
func HasVedha(a, b values.Nakshatra) (bool, error) {
	pa, err := VedhaPartner(a)
	if err != nil {
		return false, err
	}
	pb, err := VedhaPartner(b)
	if err != nil {
		return false, err
	}
	return pa == b || pb == a, nil
}

// NakshatrasInRajju returns the stars of one rope group in zodiacal order.
func NakshatrasInRajju(g values.RajjuGroup) []values.Nakshatra {
	var out []values.Nakshatra
	for _, n := range values.AllNakshatras {
		if nakshatraTable[n].Rajju == g {
			out = append(out, n)
		}
	}
	return out
}

// NakshatrasWithYoni returns the stars sharing one yoni in zodiacal order.
func NakshatrasWithYoni(y values.Yoni) []values.Nakshatra {
	var out []values.Nakshatra
	for _, n := range values.AllNakshatras {
		if nakshatraTable[n].Yoni == y {
			out = append(out, n)
		}
	}
	return out
}
