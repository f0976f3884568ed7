package engine

import (
	"fmt"

	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/match"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// papaMalefics are the planets that contribute papa points.
var papaMalefics = []values.Planet{
	values.Mars, values.Saturn, values.Sun, values.Rahu,
}

// papaHouses are the afflicting houses, counted from any of the three
// reference charts.
var papaHouses = map[int]bool{
	1: true, 2: true, 4: true, 7: true, 8: true, 12: true,
}

// papasamyaPoints totals one papa point per malefic standing in an afflicting
// house from each of the Lagna, the Moon, and Venus. The Moon and Venus house
// maps are derived from the Lagna placements.
func papasamyaPoints(c *chart.BirthChart) (int, error) {
	moonMap, err := c.HousesFrom(values.Moon)
	if err != nil {
		return 0, err
	}
	venusMap, err := c.HousesFrom(values.Venus)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, p := range papaMalefics {
		if papaHouses[c.Placements[p]] {
			total++
		}
		if papaHouses[moonMap[p]] {
			total++
		}
		if papaHouses[venusMap[p]] {
			total++
		}
	}
	return total, nil
}

// analyzePapasamya compares the malefic load of the two charts. A girl
// outweighing the boy by more than the excess margin flags the pairing as
// less favorable and later caps the overall score.
func analyzePapasamya(girl, boy *chart.BirthChart) (match.PapasamyaResult, error) {
	girlPoints, err := papasamyaPoints(girl)
	if err != nil {
		return match.PapasamyaResult{}, fmt.Errorf("papasamya for %s: %w", girl.Name, err)
	}
	boyPoints, err := papasamyaPoints(boy)
	if err != nil {
		return match.PapasamyaResult{}, fmt.Errorf("papasamya for %s: %w", boy.Name, err)
	}

	diff := girlPoints - boyPoints
	absDiff := diff
	if absDiff < 0 {
		absDiff = -absDiff
	}

	var points float64
	var verdict string
	switch {
	case absDiff == 0:
		points = PapasamyaEqualPoints
		verdict = "Thulya papam: the malefic load is perfectly balanced."
	case absDiff <= PapasamyaCloseMargin:
		points = PapasamyaClosePoints
		verdict = fmt.Sprintf("Acceptable: the papa difference of %d is within the classical limit.", absDiff)
	default:
		points = PapasamyaFarPoints
		verdict = fmt.Sprintf("Unfavorable: the papa difference of %d exceeds the classical limit.", absDiff)
	}

	return match.PapasamyaResult{
		GirlPoints:    girlPoints,
		BoyPoints:     boyPoints,
		Difference:    diff,
		LessFavorable: diff > PapasamyaGirlExcess,
		Points:        points,
		Verdict:       verdict,
	}, nil
}

// manglikHouses are the Kuja dosha houses from the reference chart.
var manglikHouses = map[int]bool{
	1: true, 2: true, 4: true, 7: true, 8: true, 12: true,
}

// isManglik reports whether Mars afflicts the chart from the given reference.
// The reference is the Lagna by default, or the Moon or Venus chart when
// configured so.
func isManglik(c *chart.BirthChart, reference string) (bool, error) {
	houses := c.Placements
	switch reference {
	case "", "lagna":
	case "moon":
		m, err := c.HousesFrom(values.Moon)
		if err != nil {
			return false, err
		}
		houses = m
	case "venus":
		m, err := c.HousesFrom(values.Venus)
		if err != nil {
			return false, err
		}
		houses = m
	default:
		return false, fmt.Errorf("unsupported manglik reference %q (want lagna, moon or venus)", reference)
	}
	return manglikHouses[houses[values.Mars]], nil
}

func analyzeManglik(girl, boy *chart.BirthChart, reference string) (match.ManglikResult, error) {
	if reference == "" {
		reference = "lagna"
	}
	girlM, err := isManglik(girl, reference)
	if err != nil {
		return match.ManglikResult{}, fmt.Errorf("manglik for %s: %w", girl.Name, err)
	}
	boyM, err := isManglik(boy, reference)
	if err != nil {
		return match.ManglikResult{}, fmt.Errorf("manglik for %s: %w", boy.Name, err)
	}

	var points float64
	var verdict string
	switch {
	case girlM && boyM:
		points = ManglikMatchPoints
		verdict = "Both charts carry the Mars affliction, so the dosha balances out."
	case !girlM && !boyM:
		points = ManglikMatchPoints
		verdict = "Neither chart is Manglik."
	case girlM:
		points = ManglikMismatchPoints
		verdict = fmt.Sprintf("%s is Manglik while %s is not. The mismatch needs remedial handling.", girl.Name, boy.Name)
	default:
		points = ManglikMismatchPoints
		verdict = fmt.Sprintf("%s is Manglik while %s is not. The mismatch needs remedial handling.", boy.Name, girl.Name)
	}

	return match.ManglikResult{
		Girl:      girlM,
		Boy:       boyM,
		Reference: reference,
		Points:    points,
		Verdict:   verdict,
	}, nil
}
