package engine

import (
	"fmt"

	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/match"
	"github.com/porutham-dev/porutham/internal/domain/tables"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// favorableRasiDistances holds the passing girl-to-boy counts on the zodiac
// wheel. The count is inclusive of both signs, so the same sign counts as 1.
var favorableRasiDistances = map[int]bool{
	1: true, 3: true, 4: true, 7: true, 10: true, 11: true, 12: true,
}

func checkRasi(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	distance := values.RasiCountFrom(girl.Rasi, boy.Rasi)

	gElement, err := tables.ElementOf(girl.Rasi)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	bElement, err := tables.ElementOf(boy.Rasi)
	if err != nil {
		return match.PoruthamResult{}, err
	}

	status := values.StatusBad
	reading := "unfavorable, a caution for tension or ego clashes"
	if favorableRasiDistances[distance] {
		status = values.StatusGood
		reading = "favorable, indicating mutual support and domestic harmony"
	}

	return match.PoruthamResult{
		Name:   "Rasi",
		Status: status,
		Explanation: fmt.Sprintf(
			"Count from %s (%s) to %s (%s) is %d (favorable counts are 1, 3, 4, 7, 10, 11, 12): %s.",
			girl.Rasi, gElement, boy.Rasi, bElement, distance, reading),
	}, nil
}

// checkRasiAdhipathi grades the natural friendship between the two Moon-sign
// lords, looked up in both directions since the classical matrix is not
// symmetric.
func checkRasiAdhipathi(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	gLord, err := tables.Lord(girl.Rasi)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	bLord, err := tables.Lord(boy.Rasi)
	if err != nil {
		return match.PoruthamResult{}, err
	}

	gToB, err := tables.Friendship(gLord, bLord)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	bToG, err := tables.Friendship(bLord, gLord)
	if err != nil {
		return match.PoruthamResult{}, err
	}

	var status values.Status
	var reading string
	switch {
	case gLord == bLord:
		status = values.StatusExcellent
		reading = "both signs share the same lord, perfect harmony"
	case gToB == values.RelationFriend && bToG == values.RelationFriend:
		status = values.StatusExcellent
		reading = "the lords are mutual friends"
	case gToB == values.RelationEnemy && bToG == values.RelationEnemy:
		status = values.StatusBad
		reading = "the lords are mutual enemies"
	case (gToB == values.RelationFriend && bToG == values.RelationNeutral) ||
		(gToB == values.RelationNeutral && bToG == values.RelationFriend):
		status = values.StatusGood
		reading = "one lord counts the other a friend, the other is neutral"
	case gToB == values.RelationNeutral && bToG == values.RelationNeutral:
		status = values.StatusGood
		reading = "the lords are neutral to each other"
	default:
		// One direction hostile, the other friendly or neutral.
		status = values.StatusAverage
		reading = "a mixed relationship between the lords"
	}

	return match.PoruthamResult{
		Name:   "Rasi Adhipathi",
		Status: status,
		Explanation: fmt.Sprintf(
			"Lord of %s is %s, lord of %s is %s (%s sees %s as %s, %s sees %s as %s): %s.",
			girl.Rasi, gLord, boy.Rasi, bLord,
			gLord, bLord, gToB, bLord, gLord, bToG, reading),
	}, nil
}

func checkVasya(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	grade, err := tables.VasyaCompatibility(girl.Rasi, boy.Rasi)
	if err != nil {
		return match.PoruthamResult{}, err
	}

	var status values.Status
	var reading string
	switch grade {
	case tables.VasyaGood:
		status = values.StatusGood
		reading = "natural attraction and mutual adjustment"
	case tables.VasyaOK:
		status = values.StatusAverage
		reading = "workable, with some adjustment needed"
	default:
		status = values.StatusBad
		reading = "weak mutual attraction"
	}

	return match.PoruthamResult{
		Name:   "Vasya",
		Status: status,
		Explanation: fmt.Sprintf(
			"Vasya lookup for girl's %s against boy's %s gives %s: %s.",
			girl.Rasi, boy.Rasi, grade, reading),
	}, nil
}
