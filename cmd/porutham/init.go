package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/porutham-dev/porutham/internal/config"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

var initOutFile string

var initInputCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Interactively scaffold a match-input file",
	Long: `Walk through a short form for both charts and write a match-input
JSON file. Planet placements are written with placeholder houses that you
edit afterwards.`,
	Example: `  porutham init
  porutham init couple.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := initOutFile
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			path = "match-input.json"
		}
		return runInitInput(path)
	},
}

func init() {
	initInputCmd.Flags().StringVarP(&initOutFile, "output", "o", "", "Output file path (default: match-input.json)")
	rootCmd.AddCommand(initInputCmd)
}

func runInitInput(path string) error {
	girl, err := promptPerson("Girl")
	if err != nil {
		return err
	}
	boy, err := promptPerson("Boy")
	if err != nil {
		return err
	}

	in := config.MatchInput{Girl: girl, Boy: boy}
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s. Edit the planet placements before running 'porutham match %s'.\n", path, path)
	return nil
}

func promptPerson(role string) (config.PersonInput, error) {
	var (
		p    config.PersonInput
		pada string
	)

	rasiOptions := make([]huh.Option[string], len(values.AllRasis))
	for i, r := range values.AllRasis {
		rasiOptions[i] = huh.NewOption(r.String(), r.String())
	}
	nakOptions := make([]huh.Option[string], len(values.AllNakshatras))
	for i, n := range values.AllNakshatras {
		nakOptions[i] = huh.NewOption(n.String(), n.String())
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(role+" name").
				Validate(notEmpty).
				Value(&p.Name),
			huh.NewSelect[string]().
				Title(role+" rasi (Moon sign)").
				Options(rasiOptions...).
				Value(&p.Rasi),
			huh.NewSelect[string]().
				Title(role+" nakshatra").
				Options(nakOptions...).
				Value(&p.Nakshatra),
			huh.NewSelect[string]().
				Title(role+" nakshatra pada").
				Options(
					huh.NewOption("1", "1"),
					huh.NewOption("2", "2"),
					huh.NewOption("3", "3"),
					huh.NewOption("4", "4"),
				).
				Value(&pada),
			huh.NewSelect[string]().
				Title(role+" lagna (ascendant)").
				Options(rasiOptions...).
				Value(&p.Lagna),
			huh.NewInput().
				Title(role+" current dasha (e.g. \"Jupiter (till 2031)\")").
				Validate(validDasha).
				Value(&p.CurrentDasha),
		),
	)
	if err := form.Run(); err != nil {
		return config.PersonInput{}, err
	}

	p.NakshatraPada, _ = strconv.Atoi(pada)
	p.PlanetsFromLagna = placeholderPlacements()
	p.NavamsaPlanets = placeholderPlacements()
	return p, nil
}

func placeholderPlacements() map[string]int {
	m := make(map[string]int, len(values.AllPlanets))
	for _, p := range values.AllPlanets {
		m[p.String()] = 1
	}
	return m
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validDasha(s string) error {
	_, err := config.ParseDasha(s)
	return err
}
