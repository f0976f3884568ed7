package tables

import "github.com/porutham-dev/porutham/internal/domain/values"

// GanaGrade is the classical verdict for a (girl gana, boy gana) pairing.
type GanaGrade string

const (
	GanaExcellent    GanaGrade = "Excellent"
	GanaGood         GanaGrade = "Good"
	GanaAcceptable   GanaGrade = "Acceptable"
	GanaNotPreferred GanaGrade = "Not Preferred"
)

// ganaMatrix is keyed girl-first. The asymmetry is classical: a Deva girl
// with a Rakshasa boy is not preferred, while the reverse pairing passes.
var ganaMatrix = map[values.Gana]map[values.Gana]GanaGrade{
	values.GanaDeva: {
		values.GanaDeva:     GanaExcellent,
		values.GanaManushya: GanaGood,
		values.GanaRakshasa: GanaNotPreferred,
	},
	values.GanaManushya: {
		values.GanaDeva:     GanaGood,
		values.GanaManushya: GanaGood,
		values.GanaRakshasa: GanaAcceptable,
	},
	values.GanaRakshasa: {
		values.GanaDeva:     GanaGood,
		values.GanaManushya: GanaAcceptable,
		values.GanaRakshasa: GanaAcceptable,
	},
}

// GanaCompatibility returns the matrix grade for the girl/boy gana pairing.
func GanaCompatibility(girl, boy values.Gana) (GanaGrade, error) {
	row, ok := ganaMatrix[girl]
	if !ok {
		return "", &CoverageError{Table: "gana matrix", Key: girl.String()}
	}
	grade, ok := row[boy]
	if !ok {
		return "", &CoverageError{Table: "gana matrix", Key: girl.String() + "/" + boy.String()}
	}
	return grade, nil
}
