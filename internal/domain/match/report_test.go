package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/porutham-dev/porutham/internal/domain/values"
)

func Test_Summary_AddAndFavorable(t *testing.T) {
	var s Summary
	for _, st := range []values.Status{
		values.StatusExcellent, values.StatusGood, values.StatusGood,
		values.StatusAverage, values.StatusBad, values.StatusCritical,
	} {
		s.Add(st)
	}

	assert.Equal(t, Summary{Excellent: 1, Good: 2, Average: 1, Bad: 1, Critical: 1}, s)
	assert.Equal(t, 3, s.Favorable())
}

func Test_ManglikResult_Matched(t *testing.T) {
	assert.True(t, ManglikResult{Girl: false, Boy: false}.Matched())
	assert.True(t, ManglikResult{Girl: true, Boy: true}.Matched())
	assert.False(t, ManglikResult{Girl: true, Boy: false}.Matched())
}

func Test_IndividualAnalysis_Total(t *testing.T) {
	a := IndividualAnalysis{
		Career: ScoreBreakdown{Score: 8},
		Wealth: ScoreBreakdown{Score: 6.5},
		Life:   ScoreBreakdown{Score: 7},
	}
	assert.InDelta(t, 21.5, a.Total(), 1e-9)
}

func Test_MatchReport_Porutham(t *testing.T) {
	r := &MatchReport{Poruthams: []PoruthamResult{
		{Index: 1, Name: "Dina"},
		{Index: 2, Name: "Gana"},
	}}

	p := r.Porutham("Gana")
	assert.NotNil(t, p)
	assert.Equal(t, 2, p.Index)
	assert.Nil(t, r.Porutham("Rajju"))

	// The lookup aliases the slice so aggregation can write through it.
	p.Points = 5
	assert.Equal(t, 5.0, r.Poruthams[1].Points)
}
