package values

import "fmt"

// Status represents the graded outcome of a single porutham check.
type Status string

const (
	// StatusExcellent indicates the best possible grade for the factor
	StatusExcellent Status = "excellent"
	// StatusGood indicates a favorable or safe grade
	StatusGood Status = "good"
	// StatusAverage indicates a neutral, acceptable, or absent grade
	StatusAverage Status = "average"
	// StatusBad indicates an unfavorable grade
	StatusBad Status = "bad"
	// StatusCritical indicates a blocking dosha (Rajju or Vedha)
	StatusCritical Status = "critical"
)

// Rank returns the numeric ordering of this status.
// Higher values indicate a better grade.
//
// Rank: Excellent (4) > Good (3) > Average (2) > Bad (1) > Critical (0)
func (s Status) Rank() int {
	switch s {
	case StatusExcellent:
		return 4
	case StatusGood:
		return 3
	case StatusAverage:
		return 2
	case StatusBad:
		return 1
	case StatusCritical:
		return 0
	default:
		return -1
	}
}

// IsCritical returns true if this status represents a blocking dosha
func (s Status) IsCritical() bool {
	return s == StatusCritical
}

// IsFavorable returns true if this status is good or excellent
func (s Status) IsFavorable() bool {
	return s == StatusGood || s == StatusExcellent
}

// Validate returns an error if the status value is invalid
func (s Status) Validate() error {
	switch s {
	case StatusExcellent, StatusGood, StatusAverage, StatusBad, StatusCritical:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", s)
	}
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}
