package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/porutham-dev/porutham/internal/domain/chart"
)

// dashaPattern accepts "Jupiter", "Jupiter (till 2031)" and
// "Jupiter till 2031".
var dashaPattern = regexp.MustCompile(`^\s*([A-Za-z]+)(?:\s*\(?\s*(?:till|until|upto)\s+(\d{4})\s*\)?)?\s*$`)

// ParseDasha parses the free-form current-dasha descriptor into a lord and
// an optional end year.
func ParseDasha(descriptor string) (chart.Dasha, error) {
	if strings.TrimSpace(descriptor) == "" {
		return chart.Dasha{}, fmt.Errorf("current dasha is empty")
	}

	m := dashaPattern.FindStringSubmatch(descriptor)
	if m == nil {
		return chart.Dasha{}, fmt.Errorf("cannot parse current dasha %q (want e.g. %q)", descriptor, "Jupiter (till 2031)")
	}

	lord, err := CanonicalPlanet(m[1])
	if err != nil {
		return chart.Dasha{}, err
	}

	d := chart.Dasha{Lord: lord}
	if m[2] != "" {
		year, err := strconv.Atoi(m[2])
		if err != nil {
			return chart.Dasha{}, fmt.Errorf("cannot parse dasha end year in %q: %w", descriptor, err)
		}
		d.EndYear = year
	}
	return d, nil
}
