package values

import "fmt"

// Gana is the temperament category assigned to each nakshatra.
type Gana string

const (
	GanaDeva     Gana = "Deva"
	GanaManushya Gana = "Manushya"
	GanaRakshasa Gana = "Rakshasa"
)

// Validate returns an error if the gana is not one of the three categories.
func (g Gana) Validate() error {
	switch g {
	case GanaDeva, GanaManushya, GanaRakshasa:
		return nil
	default:
		return fmt.Errorf("invalid gana: %s", g)
	}
}

// String returns the gana name.
func (g Gana) String() string {
	return string(g)
}
