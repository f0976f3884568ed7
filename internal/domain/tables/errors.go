package tables

import "fmt"

// CoverageError indicates a reference-table lookup with no defined entry.
// It is an internal consistency bug in the classical data, never a
// user-input problem, and is treated as fatal at construction time.
type CoverageError struct {
	Table string
	Key   string
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("reference table %q has no entry for %q", e.Table, e.Key)
}
