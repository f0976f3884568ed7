package engine

import (
	"fmt"

	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/match"
	"github.com/porutham-dev/porutham/internal/domain/tables"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// taraNames indexes the nine taras by their reduced count, 1..9.
var taraNames = [10]string{
	1: "Janma", 2: "Sampat", 3: "Vipat", 4: "Kshema", 5: "Pratyari",
	6: "Sadhana", 7: "Naidhana", 8: "Mitra", 9: "Parama Mitra",
}

var (
	goodTaras = map[int]bool{2: true, 4: true, 6: true, 8: true, 9: true}
	badTaras  = map[int]bool{3: true, 5: true, 7: true}
)

// checkDina classifies the tara obtained by counting from the girl's star to
// the boy's star and reducing the count into the nine-tara cycle.
func checkDina(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	count := values.NakshatraCountFrom(girl.Nakshatra, boy.Nakshatra)
	tara := count % 9
	if tara == 0 {
		tara = 9
	}

	var status values.Status
	var reading string
	switch {
	case goodTaras[tara]:
		status = values.StatusGood
		reading = "a favorable tara, supporting health and well-being"
	case badTaras[tara]:
		status = values.StatusBad
		reading = "an unfavorable tara, a caution for health and fortune"
	default: // tara 1, Janma
		status = values.StatusAverage
		reading = "the birth tara itself, a neutral placement"
	}

	return match.PoruthamResult{
		Name:   "Dina",
		Status: status,
		Explanation: fmt.Sprintf(
			"Counting from %s to %s gives %d, tara %d (%s): %s. Good taras are 2, 4, 6, 8 and 9.",
			girl.Nakshatra, boy.Nakshatra, count, tara, taraNames[tara], reading),
	}, nil
}

// checkGana grades temperament compatibility from the girl-keyed gana matrix.
func checkGana(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	gGana, err := tables.Gana(girl.Nakshatra)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	bGana, err := tables.Gana(boy.Nakshatra)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	grade, err := tables.GanaCompatibility(gGana, bGana)
	if err != nil {
		return match.PoruthamResult{}, err
	}

	var status values.Status
	switch grade {
	case tables.GanaExcellent:
		status = values.StatusExcellent
	case tables.GanaGood:
		status = values.StatusGood
	case tables.GanaAcceptable:
		status = values.StatusAverage
	default:
		status = values.StatusBad
	}

	return match.PoruthamResult{
		Name:   "Gana",
		Status: status,
		Explanation: fmt.Sprintf(
			"Girl is %s gana (%s), boy is %s gana (%s): %s pairing by the gana chart.",
			gGana, girl.Nakshatra, bGana, boy.Nakshatra, grade),
	}, nil
}

// checkYoni compares the animal symbols of the two stars against the enmity
// table. Same animal passes outright, a hostile pair fails, anything else is
// neutral.
func checkYoni(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	gYoni, err := tables.YoniOf(girl.Nakshatra)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	bYoni, err := tables.YoniOf(boy.Nakshatra)
	if err != nil {
		return match.PoruthamResult{}, err
	}

	var status values.Status
	var reading string
	switch {
	case gYoni == bYoni:
		status = values.StatusGood
		reading = "same animal, natural physical harmony"
	default:
		hostile, err := tables.YoniHostile(gYoni, bYoni)
		if err != nil {
			return match.PoruthamResult{}, err
		}
		if hostile {
			status = values.StatusBad
			reading = "enemy animals, physical and instinctive discord"
		} else {
			status = values.StatusAverage
			reading = "neutral animals, workable physical compatibility"
		}
	}

	return match.PoruthamResult{
		Name:   "Yoni",
		Status: status,
		Explanation: fmt.Sprintf(
			"Girl's yoni is %s (%s), boy's is %s (%s): %s.",
			gYoni, gYoni.Animal(), bYoni, bYoni.Animal(), reading),
	}, nil
}

// checkStreeDheergha requires the boy's star to be at least seven counts
// ahead of the girl's.
func checkStreeDheergha(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	count := values.NakshatraCountFrom(girl.Nakshatra, boy.Nakshatra)

	status := values.StatusGood
	reading := "present, indicating protection and longevity for the woman"
	if count < 7 {
		status = values.StatusBad
		reading = "absent, a weakness in protection for the woman"
	}

	return match.PoruthamResult{
		Name:   "Stree Dheergha",
		Status: status,
		Explanation: fmt.Sprintf(
			"Count from %s to %s is %d (minimum 7 required): Stree Dheergha is %s.",
			girl.Nakshatra, boy.Nakshatra, count, reading),
	}, nil
}

// mahendraCounts is the classical set of passing counts from the girl's star.
var mahendraCounts = map[int]bool{
	4: true, 7: true, 10: true, 13: true, 16: true, 19: true, 22: true, 25: true,
}

func checkMahendra(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	count := values.NakshatraCountFrom(girl.Nakshatra, boy.Nakshatra)

	status := values.StatusAverage
	reading := "not present, which is acceptable when the other factors hold"
	if mahendraCounts[count] {
		status = values.StatusGood
		reading = "present, supporting prosperity and the continuation of the family line"
	}

	return match.PoruthamResult{
		Name:   "Mahendra",
		Status: status,
		Explanation: fmt.Sprintf(
			"Count from %s to %s is %d (passing counts are 4, 7, 10, 13, 16, 19, 22, 25): Mahendra is %s.",
			girl.Nakshatra, boy.Nakshatra, count, reading),
	}, nil
}

// checkRajju fails critically when both stars share a rajju group. A shared
// group is the classical rejection factor, so it alone can cap the overall
// score.
func checkRajju(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	gRajju, err := tables.Rajju(girl.Nakshatra)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	bRajju, err := tables.Rajju(boy.Nakshatra)
	if err != nil {
		return match.PoruthamResult{}, err
	}

	if gRajju == bRajju {
		return match.PoruthamResult{
			Name:   "Rajju",
			Status: values.StatusCritical,
			Explanation: fmt.Sprintf(
				"Both stars belong to the %s rajju (%s): Rajju dosha is present. "+
					"This is the classical rejection factor and weighs on the overall verdict.",
				gRajju, gRajju.BodyPart()),
		}, nil
	}

	return match.PoruthamResult{
		Name:   "Rajju",
		Status: values.StatusGood,
		Explanation: fmt.Sprintf(
			"Girl's star is in the %s rajju, boy's in the %s rajju: safe, no Rajju dosha.",
			gRajju, bRajju),
	}, nil
}

// checkVedha fails critically when the two stars form an obstruction pair in
// either direction.
func checkVedha(girl, boy *chart.BirthChart) (match.PoruthamResult, error) {
	has, err := tables.HasVedha(girl.Nakshatra, boy.Nakshatra)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	if has {
		return match.PoruthamResult{
			Name:   "Vedha",
			Status: values.StatusCritical,
			Explanation: fmt.Sprintf(
				"%s and %s form a Vedha (obstruction) pair. This is a significant caution.",
				girl.Nakshatra, boy.Nakshatra),
		}, nil
	}

	gPartner, err := tables.VedhaPartner(girl.Nakshatra)
	if err != nil {
		return match.PoruthamResult{}, err
	}
	return match.PoruthamResult{
		Name:   "Vedha",
		Status: values.StatusGood,
		Explanation: fmt.Sprintf(
			"%s obstructs only %s, not %s: no Vedha between the pair.",
			girl.Nakshatra, gPartner, boy.Nakshatra),
	}, nil
}
