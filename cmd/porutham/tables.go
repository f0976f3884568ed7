package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/porutham-dev/porutham/internal/domain/tables"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

var tablesCmd = &cobra.Command{
	Use:       "tables [rajju|yoni|vedha|gana]",
	Short:     "Print the classical reference tables",
	Long:      "Print the table data the rule engine is built on. With no argument all tables are printed.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"rajju", "yoni", "vedha", "gana"},
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			printRajjuTable()
			printYoniTable()
			printVedhaTable()
			return printGanaTable()
		}
		switch args[0] {
		case "rajju":
			printRajjuTable()
		case "yoni":
			printYoniTable()
		case "vedha":
			printVedhaTable()
		case "gana":
			return printGanaTable()
		default:
			return fmt.Errorf("unknown table %q (want rajju, yoni, vedha or gana)", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func printRajjuTable() {
	fmt.Println("Rajju groups (same group for both stars is the dosha):")
	for _, g := range values.AllRajjuGroups {
		stars := tables.NakshatrasInRajju(g)
		fmt.Printf("  %-7s (%s):", g, g.BodyPart())
		for _, n := range stars {
			fmt.Printf(" %s,", n)
		}
		fmt.Println()
	}
	fmt.Println()
}

func printYoniTable() {
	fmt.Println("Yoni animals, their enemies and their stars:")
	for _, y := range values.AllYonis {
		line := fmt.Sprintf("  %-8s (%s)", y, y.Animal())
		if enemy, err := tables.YoniEnemy(y); err == nil && enemy != "" {
			line += fmt.Sprintf(", enemy of %s (%s)", enemy, enemy.Animal())
		}
		line += ":"
		for _, n := range tables.NakshatrasWithYoni(y) {
			line += fmt.Sprintf(" %s,", n)
		}
		fmt.Println(line)
	}
	fmt.Println()
}

func printVedhaTable() {
	fmt.Println("Vedha (obstruction) pairs:")
	for _, n := range values.AllNakshatras {
		partner, err := tables.VedhaPartner(n)
		if err != nil {
			continue
		}
		fmt.Printf("  %-18s obstructs %s\n", n, partner)
	}
	fmt.Println()
}

func printGanaTable() error {
	fmt.Println("Gana of each star, and the girl-to-boy gana chart:")
	for _, n := range values.AllNakshatras {
		g, err := tables.Gana(n)
		if err != nil {
			return err
		}
		fmt.Printf("  %-18s %s\n", n, g)
	}
	fmt.Println()
	ganas := []values.Gana{values.GanaDeva, values.GanaManushya, values.GanaRakshasa}
	fmt.Printf("  %-10s", "girl\\boy")
	for _, b := range ganas {
		fmt.Printf(" %-10s", b)
	}
	fmt.Println()
	for _, g := range ganas {
		fmt.Printf("  %-10s", g)
		for _, b := range ganas {
			grade, err := tables.GanaCompatibility(g, b)
			if err != nil {
				return err
			}
			fmt.Printf(" %-10s", grade)
		}
		fmt.Println()
	}
	return nil
}
