// Package config loads and canonicalizes match-input files. The on-disk
// format accepts common alternate spellings for signs, stars and planets;
// everything downstream of this package works with canonical values only.
package config

import (
	"fmt"

	"github.com/porutham-dev/porutham/internal/domain/chart"
)

// PersonInput is one person's chart as written in the input file.
type PersonInput struct {
	Name             string         `json:"name" yaml:"name"`
	Rasi             string         `json:"rasi" yaml:"rasi"`
	Nakshatra        string         `json:"nakshatra" yaml:"nakshatra"`
	NakshatraPada    int            `json:"nakshatra_pada" yaml:"nakshatra_pada"`
	Lagna            string         `json:"lagna" yaml:"lagna"`
	CurrentDasha     string         `json:"current_dasha" yaml:"current_dasha"`
	PlanetsFromLagna map[string]int `json:"planets_from_lagna" yaml:"planets_from_lagna"`
	NavamsaPlanets   map[string]int `json:"navamsa_planets_from_lagna" yaml:"navamsa_planets_from_lagna"`
}

// MatchInput is the full input document for one compatibility run.
type MatchInput struct {
	Girl PersonInput `json:"girl" yaml:"girl"`
	Boy  PersonInput `json:"boy" yaml:"boy"`
}

// Chart canonicalizes the person input into a validated birth chart.
func (p PersonInput) Chart() (*chart.BirthChart, error) {
	rasi, err := CanonicalRasi(p.Rasi)
	if err != nil {
		return nil, fmt.Errorf("chart for %q: %w", p.Name, err)
	}
	nakshatra, err := CanonicalNakshatra(p.Nakshatra)
	if err != nil {
		return nil, fmt.Errorf("chart for %q: %w", p.Name, err)
	}
	lagna, err := CanonicalRasi(p.Lagna)
	if err != nil {
		return nil, fmt.Errorf("chart for %q lagna: %w", p.Name, err)
	}
	dasha, err := ParseDasha(p.CurrentDasha)
	if err != nil {
		return nil, fmt.Errorf("chart for %q: %w", p.Name, err)
	}
	placements, err := canonicalPlacements(p.PlanetsFromLagna)
	if err != nil {
		return nil, fmt.Errorf("chart for %q placements: %w", p.Name, err)
	}
	navamsa, err := canonicalPlacements(p.NavamsaPlanets)
	if err != nil {
		return nil, fmt.Errorf("chart for %q navamsa: %w", p.Name, err)
	}

	c, err := chart.New(p.Name, rasi, nakshatra, p.NakshatraPada, lagna, dasha, placements, navamsa)
	if err != nil {
		return nil, fmt.Errorf("chart for %q: %w", p.Name, err)
	}
	return c, nil
}

func canonicalPlacements(raw map[string]int) (chart.PlacementMap, error) {
	out := make(chart.PlacementMap, len(raw))
	for name, house := range raw {
		p, err := CanonicalPlanet(name)
		if err != nil {
			return nil, err
		}
		out[p] = house
	}
	return out, nil
}

// Charts canonicalizes both persons.
func (in *MatchInput) Charts() (girl, boy *chart.BirthChart, err error) {
	girl, err = in.Girl.Chart()
	if err != nil {
		return nil, nil, err
	}
	boy, err = in.Boy.Chart()
	if err != nil {
		return nil, nil, err
	}
	return girl, boy, nil
}
