package tables

import "github.com/porutham-dev/porutham/internal/domain/values"

// VasyaGrade is the classical verdict for a (girl rasi, boy rasi) pairing.
type VasyaGrade string

const (
	VasyaGood VasyaGrade = "Good"
	VasyaOK   VasyaGrade = "OK"
	VasyaBad  VasyaGrade = "Bad"
)

// vasyaMatrix encodes the girl-row by boy-column attraction grid, columns
// in zodiacal order Mesha..Meena. G = Good, O = OK, B = Bad. The grid is
// deliberately asymmetric; do not fold it.
var vasyaMatrix = map[values.Rasi]string{
	values.Mesha:     "GGOBGOOOGGOB",
	values.Vrishabha: "GGOBGOOOGGOB",
	values.Mithuna:   "OOGOBGGBOOGO",
	values.Karka:     "BBOGOOOOBBOG",
	values.Simha:     "GGBOGBBOGGBO",
	values.Kanya:     "OOGOBGGOOOGO",
	values.Tula:      "OOGOBGGOOOGO",
	values.Vrischika: "OOBOOOOGBOBO",
	values.Dhanu:     "GGOBGOOOGGOB",
	values.Makara:    "GGOBGOOOGGOB",
	values.Kumbha:    "OOGOBGGBOOGO",
	values.Meena:     "BBOGOOOOBBOG",
}

// VasyaCompatibility returns the matrix grade for the girl/boy sign pairing.
func VasyaCompatibility(girl, boy values.Rasi) (VasyaGrade, error) {
	row, ok := vasyaMatrix[girl]
	if !ok {
		return "", &CoverageError{Table: "vasya matrix", Key: girl.String()}
	}
	col := boy.Index()
	if col < 1 || col > len(row) {
		return "", &CoverageError{Table: "vasya matrix", Key: girl.String() + "/" + boy.String()}
	}
	switch row[col-1] {
	case 'G':
		return VasyaGood, nil
	case 'O':
		return VasyaOK, nil
	case 'B':
		return VasyaBad, nil
	default:
		return "", &CoverageError{Table: "vasya matrix", Key: girl.String() + "/" + boy.String()}
	}
}
