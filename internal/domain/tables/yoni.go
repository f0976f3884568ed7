package tables

import "github.com/porutham-dev/porutham/internal/domain/values"

// yoniEnemies pairs each yoni with its single inimical yoni. The relation
// is symmetric: Rat against Cat is hostile whichever side is which.
var yoniEnemies = map[values.Yoni]values.Yoni{
	values.YoniAshwa:   values.YoniMahisha,
	values.YoniMahisha: values.YoniAshwa,
	values.YoniGaja:    values.YoniSimha,
	values.YoniSimha:   values.YoniGaja,
	values.YoniMesha:   values.YoniVanara,
	values.YoniVanara:  values.YoniMesha,
	values.YoniSarpa:   values.YoniNakula,
	values.YoniNakula:  values.YoniSarpa,
	values.YoniShwan:   values.YoniMriga,
	values.YoniMriga:   values.YoniShwan,
	values.YoniMarjara: values.YoniMushaka,
	values.YoniMushaka: values.YoniMarjara,
	values.YoniGo:      values.YoniVyaghra,
	values.YoniVyaghra: values.YoniGo,
}

// YoniEnemy returns the inimical yoni of the given animal.
func YoniEnemy(y values.Yoni) (values.Yoni, error) {
	e, ok := yoniEnemies[y]
	if !ok {
		return "", &CoverageError{Table: "yoni enmity", Key: y.String()}
	}
	return e, nil
}

// YoniHostile reports whether the two yonis form an inimical pair.
func YoniHostile(a, b values.Yoni) (bool, error) {
	e, err := YoniEnemy(a)
	if err != nil {
		return false, err
	}
	return e == b, nil
}
