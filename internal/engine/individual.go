package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/match"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// scoreBase is the neutral starting value for every individual score.
const scoreBase = 5.0

// scorer accumulates named rule contributions on top of the neutral base.
type scorer struct {
	contributions []match.Contribution
}

func (s *scorer) add(delta float64, format string, args ...any) {
	if delta == 0 {
		return
	}
	s.contributions = append(s.contributions, match.Contribution{
		Rule:  fmt.Sprintf(format, args...),
		Delta: delta,
	})
}

// total returns the final score rounded to one decimal and clamped to [0,10],
// together with the contribution list.
func (s *scorer) total() (float64, []match.Contribution) {
	v := scoreBase
	for _, c := range s.contributions {
		v += c.Delta
	}
	v = math.Round(v*10) / 10
	if v < 0 {
		v = 0
	}
	if v > 10 {
		v = 10
	}
	return v, s.contributions
}

func planetList(ps []values.Planet) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

func filterPlanets(ps []values.Planet, keep func(values.Planet) bool) []values.Planet {
	var out []values.Planet
	for _, p := range ps {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// analyzeIndividual derives the three per-person prospect scores from the
// rasi placements, the navamsa placements, and the running dasha.
func analyzeIndividual(c *chart.BirthChart) match.IndividualAnalysis {
	return match.IndividualAnalysis{
		Name:   c.Name,
		Career: scoreCareer(c),
		Wealth: scoreWealth(c),
		Life:   scoreLife(c),
	}
}

func scoreCareer(c *chart.BirthChart) match.ScoreBreakdown {
	var s scorer

	kendraBenefics := filterPlanets(c.PlanetsInHouses(1, 4, 7, 10), values.Planet.IsBenefic)
	if n := len(kendraBenefics); n > 0 {
		s.add(0.4*float64(n), "benefics in kendras: %s", planetList(kendraBenefics))
	}
	strainMalefics := filterPlanets(c.PlanetsInHouses(1, 10), values.Planet.IsMalefic)
	if n := len(strainMalefics); n > 0 {
		s.add(-0.3*float64(n), "malefics in the 1st or 10th: %s", planetList(strainMalefics))
	}

	tenth := c.PlanetsInHouses(10)
	if b := filterPlanets(tenth, values.Planet.IsBenefic); len(b) > 0 {
		s.add(0.7*float64(len(b)), "benefics in the 10th: %s", planetList(b))
	}
	if m := filterPlanets(tenth, values.Planet.IsMalefic); len(m) > 0 {
		s.add(0.4*float64(len(m)), "malefics in the 10th add drive: %s", planetList(m))
	}

	var d9Tenth []values.Planet
	for _, p := range values.AllPlanets {
		if c.Navamsa[p] == 10 {
			d9Tenth = append(d9Tenth, p)
		}
	}
	if n := len(d9Tenth); n > 0 {
		s.add(0.4*float64(n), "navamsa planets in the 10th: %s", planetList(d9Tenth))
	}

	lord := c.Dasha.Lord
	switch h := c.Placements[lord]; {
	case h == 1 || h == 4 || h == 5 || h == 7 || h == 9 || h == 10:
		s.add(0.5, "dasha lord %s in kendra/trikona house %d", lord, h)
	case h == 6 || h == 8 || h == 12:
		s.add(-0.7, "dasha lord %s in dusthana house %d", lord, h)
	}

	for _, p := range []values.Planet{values.Saturn, values.Rahu} {
		if h := c.Placements[p]; h == 8 || h == 12 {
			s.add(-0.6, "%s in house %d strains the profession", p, h)
		}
	}

	score, contributions := s.total()
	return match.ScoreBreakdown{
		Score:         score,
		Label:         careerLabel(score),
		Contributions: contributions,
	}
}

func scoreWealth(c *chart.BirthChart) match.ScoreBreakdown {
	var s scorer

	dhanaBenefics := filterPlanets(c.PlanetsInHouses(2, 5, 9, 11), values.Planet.IsBenefic)
	if n := len(dhanaBenefics); n > 0 {
		s.add(0.5*float64(n), "benefics in dhana houses: %s", planetList(dhanaBenefics))
	}
	if h := c.Placements[values.Moon]; h == 2 || h == 11 {
		s.add(0.4, "Moon in house %d supports cash flow", h)
	}

	for _, p := range []values.Planet{values.Venus, values.Jupiter, values.Moon} {
		switch h := c.Placements[p]; h {
		case 1, 2, 4, 5, 7, 9, 10, 11:
			s.add(0.3, "%s well placed in house %d", p, h)
		}
	}

	dhanaMalefics := filterPlanets(c.PlanetsInHouses(2, 11), values.Planet.IsMalefic)
	if n := len(dhanaMalefics); n > 0 {
		s.add(-0.4*float64(n), "malefics in the 2nd or 11th: %s", planetList(dhanaMalefics))
	}

	lord := c.Dasha.Lord
	if lord == values.Venus || lord == values.Jupiter || lord == values.Moon {
		s.add(0.3, "benefic dasha lord %s favors wealth", lord)
	}
	if h := c.Placements[lord]; h == 6 || h == 8 || h == 12 {
		s.add(-0.5, "dasha lord %s in dusthana house %d", lord, h)
	}

	for _, p := range []values.Planet{values.Saturn, values.Rahu} {
		if c.Placements[p] == 8 {
			s.add(-0.5, "%s in the 8th brings sudden swings", p)
		}
	}

	score, contributions := s.total()
	return match.ScoreBreakdown{
		Score:         score,
		Label:         wealthLabel(score),
		Contributions: contributions,
	}
}

func scoreLife(c *chart.BirthChart) match.ScoreBreakdown {
	var s scorer

	lagna := c.PlanetsInHouses(1)
	if b := filterPlanets(lagna, values.Planet.IsBenefic); len(b) > 0 {
		s.add(0.6*float64(len(b)), "benefics in the lagna: %s", planetList(b))
	}
	if m := filterPlanets(lagna, values.Planet.IsMalefic); len(m) > 0 {
		s.add(0.1*float64(len(m)), "malefics in the lagna add grit: %s", planetList(m))
	}

	for _, p := range []values.Planet{values.Jupiter, values.Venus} {
		switch h := c.Placements[p]; h {
		case 1, 4, 5, 7, 9, 10:
			s.add(0.6, "%s in kendra/trikona house %d", p, h)
		}
	}

	dusthanaMalefics := filterPlanets(c.PlanetsInHouses(6, 8, 12), values.Planet.IsMalefic)
	if n := len(dusthanaMalefics); n > 0 {
		s.add(-0.5*float64(n), "malefics in dusthanas: %s", planetList(dusthanaMalefics))
	}

	switch lord := c.Dasha.Lord; lord {
	case values.Jupiter, values.Venus:
		s.add(0.4, "benefic %s dasha running", lord)
	case values.Moon:
		if h := c.Placements[values.Moon]; h == 6 || h == 8 || h == 12 {
			s.add(-0.2, "Moon dasha with Moon in dusthana house %d", h)
		} else {
			s.add(0.2, "Moon dasha with a well placed Moon")
		}
	case values.Saturn:
		s.add(-0.3, "Saturn dasha running")
	}

	score, contributions := s.total()
	return match.ScoreBreakdown{
		Score:         score,
		Label:         lifeLabel(score),
		Contributions: contributions,
	}
}

func careerLabel(score float64) string {
	switch {
	case score >= 8:
		return "Strong career potential with good long-term growth"
	case score >= 6:
		return "Good, steady career potential"
	case score >= 4:
		return "Average, requires effort and the right choices"
	default:
		return "Challenging career pattern"
	}
}

func wealthLabel(score float64) string {
	switch {
	case score >= 7.5:
		return "Very strong wealth potential"
	case score >= 6:
		return "Strong wealth potential"
	case score >= 4.5:
		return "Good financial potential over time"
	case score >= 3:
		return "Average, finances depend heavily on choices"
	default:
		return "Financial pattern requires care"
	}
}

func lifeLabel(score float64) string {
	switch {
	case score >= 8:
		return "Overall life pattern looks strong with good growth potential"
	case score >= 6:
		return "Overall life pattern is good, with normal ups and downs"
	case score >= 4:
		return "Mixed life pattern, some good areas and some lessons"
	default:
		return "Challenging life pattern, needs conscious effort"
	}
}
