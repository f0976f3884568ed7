package engine

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/porutham-dev/porutham/internal/domain/match"
)

// PoruthamEnv exposes one porutham row for filter-expression evaluation.
type PoruthamEnv struct {
	Index  int     `expr:"index"`
	Name   string  `expr:"name"`
	Status string  `expr:"status"`
	Points float64 `expr:"points"`
}

// CompileFilter compiles a row-filter expression such as
// `status == "bad" || points < 3`.
func CompileFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression,
		expr.Env(PoruthamEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}
	return program, nil
}

// FilterPoruthams returns the rows matching the compiled expression, in
// their original order. A nil program keeps every row.
func FilterPoruthams(rows []match.PoruthamResult, program *vm.Program) ([]match.PoruthamResult, error) {
	if program == nil {
		return rows, nil
	}
	var out []match.PoruthamResult
	for _, row := range rows {
		env := PoruthamEnv{
			Index:  row.Index,
			Name:   row.Name,
			Status: row.Status.String(),
			Points: row.Points,
		}
		matched, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("evaluating filter for %s: %w", row.Name, err)
		}
		if matched.(bool) {
			out = append(out, row)
		}
	}
	return out, nil
}
