package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porutham-dev/porutham/internal/domain/match"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

func Test_Aggregate_RajjuCap(t *testing.T) {
	girl, boy := exampleGirl(t), exampleBoy(t)
	// Bharani and Pushya share the Kati rajju.
	girl.Nakshatra = values.Bharani
	boy.Nakshatra = values.Pushya

	report, err := New(DefaultConfig()).Evaluate(context.Background(), girl, boy)
	require.NoError(t, err)

	rajju := report.Porutham("Rajju")
	require.NotNil(t, rajju)
	assert.Equal(t, values.StatusCritical, rajju.Status)
	assert.Equal(t, CapRajjuDosha, report.Overall)
	assert.Contains(t, report.CriticalDoshas, "Rajju dosha")
	assert.Contains(t, report.Verdict, "Not recommended")
}

func Test_Aggregate_VedhaCap(t *testing.T) {
	girl, boy := exampleGirl(t), exampleBoy(t)
	// Dhanishta obstructs Revati while their rajju groups differ, so only
	// the Vedha cap fires.
	girl.Nakshatra = values.Dhanishta
	boy.Nakshatra = values.Revati

	report, err := New(DefaultConfig()).Evaluate(context.Background(), girl, boy)
	require.NoError(t, err)

	vedha := report.Porutham("Vedha")
	require.NotNil(t, vedha)
	assert.Equal(t, values.StatusCritical, vedha.Status)
	assert.Equal(t, CapVedhaDosha, report.Overall)
	assert.Equal(t, []string{"Vedha dosha"}, report.CriticalDoshas)
	assert.Contains(t, report.Verdict, "Proceed with caution")
	assert.Contains(t, report.Verdict, "Vedha")
}

func Test_Aggregate_ManglikMismatchCap(t *testing.T) {
	girl, boy := exampleGirl(t), exampleBoy(t)

	// From the Moon chart Arjun is Manglik and Meera is not.
	cfg := DefaultConfig()
	cfg.ManglikReference = "moon"
	report, err := New(cfg).Evaluate(context.Background(), girl, boy)
	require.NoError(t, err)

	assert.False(t, report.Manglik.Matched())
	assert.Equal(t, CapManglikMismatch, report.Overall)
	assert.Contains(t, report.CriticalDoshas, "Manglik mismatch")
	assert.Contains(t, report.Verdict, "Workable match with reservations")
}

func Test_Aggregate_PapasamyaCap(t *testing.T) {
	report := &match.MatchReport{
		Poruthams: make([]match.PoruthamResult, 10),
		Papasamya: match.PapasamyaResult{
			GirlPoints: 9, BoyPoints: 2, Difference: 7,
			LessFavorable: true, Points: PapasamyaFarPoints,
		},
		Manglik: match.ManglikResult{Points: ManglikMatchPoints},
	}
	for i := range report.Poruthams {
		report.Poruthams[i] = match.PoruthamResult{
			Index: i + 1, Name: "factor", Status: values.StatusGood,
		}
	}

	aggregate(report)

	// 50 porutham points plus 3 plus 10 exceeds the papasamya cap.
	assert.Equal(t, CapPapasamyaExcess, report.Overall)
	assert.Equal(t, []string{"Papasamya excess on the girl's side"}, report.CriticalDoshas)
	assert.Contains(t, report.Verdict, "girl's papa load clearly exceeds")
}

func Test_Verdict_Bands(t *testing.T) {
	report, err := New(DefaultConfig()).Evaluate(context.Background(), exampleGirl(t), exampleBoy(t))
	require.NoError(t, err)

	assert.Contains(t, report.Verdict, "Good match")
	assert.Contains(t, report.Verdict, "6 of 10 poruthams favorable")
	assert.Contains(t, report.Verdict, "72.5/100 overall")
}
