package config

import (
	"strings"

	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// normalizeKey lowercases a name and strips everything but letters, so
// "Uttara Phalguni", "uttara-phalguni" and "UttaraPhalguni" all collide.
func normalizeKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rasiAliases maps normalized alternate spellings, including the Western
// sign names, onto the canonical rasi.
var rasiAliases = func() map[string]values.Rasi {
	m := make(map[string]values.Rasi)
	for _, r := range values.AllRasis {
		m[normalizeKey(r.String())] = r
	}
	for alias, r := range map[string]values.Rasi{
		"aries": values.Mesha, "mesh": values.Mesha,
		"taurus": values.Vrishabha, "rishaba": values.Vrishabha, "vrishabh": values.Vrishabha,
		"gemini": values.Mithuna, "mithun": values.Mithuna,
		"cancer": values.Karka, "kataka": values.Karka, "karkataka": values.Karka,
		"leo":   values.Simha,
		"virgo": values.Kanya,
		"libra": values.Tula, "thula": values.Tula, "thulam": values.Tula,
		"scorpio": values.Vrischika, "vrishchika": values.Vrischika, "vrischikam": values.Vrischika,
		"sagittarius": values.Dhanu, "dhanus": values.Dhanu,
		"capricorn": values.Makara, "makaram": values.Makara,
		"aquarius": values.Kumbha, "kumbham": values.Kumbha,
		"pisces": values.Meena, "meenam": values.Meena,
	} {
		m[alias] = r
	}
	return m
}()

// nakshatraAliases covers the common alternate star spellings.
var nakshatraAliases = func() map[string]values.Nakshatra {
	m := make(map[string]values.Nakshatra)
	for _, n := range values.AllNakshatras {
		m[normalizeKey(n.String())] = n
	}
	for alias, n := range map[string]values.Nakshatra{
		"aswini": values.Ashwini, "ashvini": values.Ashwini,
		"karthika": values.Krittika, "kartika": values.Krittika, "krithika": values.Krittika,
		"mrigashira": values.Mrigasira, "mrigashirsha": values.Mrigasira, "makayiram": values.Mrigasira,
		"arudra": values.Ardra, "thiruvathira": values.Ardra,
		"pooyam": values.Pushya, "poosam": values.Pushya,
		"ayilyam": values.Ashlesha, "aslesha": values.Ashlesha,
		"makam": values.Magha,
		"pooram": values.PurvaPhalguni, "poorvaphalguni": values.PurvaPhalguni,
		"uthram": values.UttaraPhalguni, "uthraphalguni": values.UttaraPhalguni,
		"atham": values.Hasta, "hastha": values.Hasta,
		"chithira": values.Chitra, "chitta": values.Chitra,
		"chothi": values.Swati, "swathi": values.Swati,
		"visakha": values.Vishakha, "vishakam": values.Vishakha,
		"anizham": values.Anuradha, "anusham": values.Anuradha,
		"jyeshtha": values.Jyeshta, "kettai": values.Jyeshta, "thrikketta": values.Jyeshta,
		"mula": values.Moola, "moolam": values.Moola,
		"pooradam": values.Purvashadha, "poorvashadha": values.Purvashadha, "purvaashadha": values.Purvashadha,
		"uthradam": values.Uttarashadha, "uttaraashadha": values.Uttarashadha,
		"sravana": values.Shravana, "thiruvonam": values.Shravana, "shravan": values.Shravana,
		"avittam": values.Dhanishta, "dhanishtha": values.Dhanishta,
		"shatabhisha": values.Satabhisha, "chathayam": values.Satabhisha, "sadayam": values.Satabhisha,
		"purvabhadra": values.Purvabhadrapada, "poorattathi": values.Purvabhadrapada,
		"uttarabhadra": values.Uttarabhadra, "uthrattathi": values.Uttarabhadra,
		"revathi": values.Revati,
	} {
		m[alias] = n
	}
	return m
}()

var planetAliases = func() map[string]values.Planet {
	m := make(map[string]values.Planet)
	for _, p := range values.AllPlanets {
		m[normalizeKey(p.String())] = p
	}
	for alias, p := range map[string]values.Planet{
		"surya": values.Sun, "ravi": values.Sun,
		"chandra": values.Moon,
		"kuja": values.Mars, "mangal": values.Mars, "chevvai": values.Mars,
		"budha": values.Mercury,
		"guru": values.Jupiter, "brihaspati": values.Jupiter,
		"shukra": values.Venus, "sukra": values.Venus,
		"shani": values.Saturn, "sani": values.Saturn,
	} {
		m[alias] = p
	}
	return m
}()

// CanonicalRasi resolves a sign name, accepting alternate spellings.
func CanonicalRasi(name string) (values.Rasi, error) {
	if r, ok := rasiAliases[normalizeKey(name)]; ok {
		return r, nil
	}
	return "", &chart.UnknownEntityError{
		Field: "rasi", Value: name, Valid: rasiNames(),
	}
}

// CanonicalNakshatra resolves a star name, accepting alternate spellings.
func CanonicalNakshatra(name string) (values.Nakshatra, error) {
	if n, ok := nakshatraAliases[normalizeKey(name)]; ok {
		return n, nil
	}
	return "", &chart.UnknownEntityError{
		Field: "nakshatra", Value: name, Valid: nakshatraNames(),
	}
}

// CanonicalPlanet resolves a graha name, accepting Sanskrit alternates.
func CanonicalPlanet(name string) (values.Planet, error) {
	if p, ok := planetAliases[normalizeKey(name)]; ok {
		return p, nil
	}
	return "", &chart.UnknownEntityError{
		Field: "planet", Value: name, Valid: planetNames(),
	}
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
