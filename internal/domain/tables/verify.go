package tables

import (
	"fmt"

	"github.com/porutham-dev/porutham/internal/domain/values"
)

func init() {
	if err := Verify(); err != nil {
		panic(fmt.Sprintf("reference table integrity: %v", err))
	}
}

// Verify checks the internal consistency of every reference table. Missing
// classical data is a programming error, so the package panics on init
// rather than letting a partial table reach a lookup.
func Verify() error {
	if err := verifyNakshatraTable(); err != nil {
		return err
	}
	if err := verifyRajjuPartition(); err != nil {
		return err
	}
	if err := verifyVedhaPairs(); err != nil {
		return err
	}
	if err := verifyRasiTables(); err != nil {
		return err
	}
	if err := verifyMatrices(); err != nil {
		return err
	}
	return nil
}

func verifyNakshatraTable() error {
	if len(nakshatraTable) != len(values.AllNakshatras) {
		return fmt.Errorf("nakshatra table has %d entries, want %d", len(nakshatraTable), len(values.AllNakshatras))
	}
	for _, n := range values.AllNakshatras {
		t, ok := nakshatraTable[n]
		if !ok {
			return &CoverageError{Table: "nakshatra", Key: n.String()}
		}
		if err := t.Gana.Validate(); err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
		if err := t.Yoni.Validate(); err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
		if err := t.Rajju.Validate(); err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
		if err := t.Vedha.Validate(); err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
	}
	return nil
}

// verifyRajjuPartition checks that the five rope groups cover all 27 stars
// with the classical group sizes: three stars on the Siro rope and six on
// each of the other four. Any other distribution means a star sits in the
// wrong group, which would corrupt the one check that can reject a match
// outright.
func verifyRajjuPartition() error {
	counts := make(map[values.RajjuGroup]int)
	for _, n := range values.AllNakshatras {
		counts[nakshatraTable[n].Rajju]++
	}
	for _, g := range values.AllRajjuGroups {
		want := 6
		if g == values.RajjuSiro {
			want = 3
		}
		if counts[g] != want {
			return fmt.Errorf("rajju group %s has %d stars, want %d", g, counts[g], want)
		}
	}
	return nil
}

// verifyVedhaPairs checks that no star obstructs itself and that the pair
// map is an involution everywhere except the classical Dhanishta exception:
// with 27 stars a perfect pairing is impossible, and tradition resolves the
// remainder by pointing Dhanishta at Revati while Revati's own partner
// stays Moola.
func verifyVedhaPairs() error {
	for _, n := range values.AllNakshatras {
		partner := nakshatraTable[n].Vedha
		if partner == n {
			return fmt.Errorf("vedha: %s obstructs itself", n)
		}
		back := nakshatraTable[partner].Vedha
		if back != n && n != values.Dhanishta {
			return fmt.Errorf("vedha: %s -> %s but %s -> %s", n, partner, partner, back)
		}
	}
	if nakshatraTable[values.Dhanishta].Vedha != values.Revati {
		return fmt.Errorf("vedha: Dhanishta must pair with Revati")
	}
	return nil
}

func verifyRasiTables() error {
	for _, r := range values.AllRasis {
		lord, ok := rasiLords[r]
		if !ok {
			return &CoverageError{Table: "rasi lords", Key: r.String()}
		}
		if _, ok := friendshipTable[lord]; !ok {
			return fmt.Errorf("friendship table has no row for %s, lord of %s", lord, r)
		}
		if _, ok := rasiElements[r]; !ok {
			return &CoverageError{Table: "rasi elements", Key: r.String()}
		}
	}
	// every lord must grade every other lord in both directions
	for a, row := range friendshipTable {
		for b := range friendshipTable {
			if a == b {
				continue
			}
			rel, ok := row[b]
			if !ok {
				return &CoverageError{Table: "friendship", Key: a.String() + "/" + b.String()}
			}
			if err := rel.Validate(); err != nil {
				return fmt.Errorf("friendship %s/%s: %w", a, b, err)
			}
		}
	}
	return nil
}

func verifyMatrices() error {
	for _, girl := range []values.Gana{values.GanaDeva, values.GanaManushya, values.GanaRakshasa} {
		for _, boy := range []values.Gana{values.GanaDeva, values.GanaManushya, values.GanaRakshasa} {
			if _, err := GanaCompatibility(girl, boy); err != nil {
				return err
			}
		}
	}
	for _, girl := range values.AllRasis {
		row, ok := vasyaMatrix[girl]
		if !ok {
			return &CoverageError{Table: "vasya matrix", Key: girl.String()}
		}
		if len(row) != len(values.AllRasis) {
			return fmt.Errorf("vasya row for %s has %d columns, want %d", girl, len(row), len(values.AllRasis))
		}
		for _, boy := range values.AllRasis {
			if _, err := VasyaCompatibility(girl, boy); err != nil {
				return err
			}
		}
	}
	for _, y := range values.AllYonis {
		e, err := YoniEnemy(y)
		if err != nil {
			return err
		}
		back, err := YoniEnemy(e)
		if err != nil {
			return err
		}
		if back != y {
			return fmt.Errorf("yoni enmity not symmetric: %s -> %s -> %s", y, e, back)
		}
	}
	return nil
}
