package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Status_Rank(t *testing.T) {
	tests := []struct {
		status Status
		rank   int
	}{
		{StatusExcellent, 4},
		{StatusGood, 3},
		{StatusAverage, 2},
		{StatusBad, 1},
		{StatusCritical, 0},
		{Status("unknown"), -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.rank, tt.status.Rank())
		})
	}

	assert.True(t, StatusExcellent.Rank() > StatusGood.Rank())
	assert.True(t, StatusBad.Rank() > StatusCritical.Rank())
}

func Test_Status_Predicates(t *testing.T) {
	assert.True(t, StatusCritical.IsCritical())
	assert.False(t, StatusBad.IsCritical())

	assert.True(t, StatusExcellent.IsFavorable())
	assert.True(t, StatusGood.IsFavorable())
	assert.False(t, StatusAverage.IsFavorable())
	assert.False(t, StatusCritical.IsFavorable())
}

func Test_Status_Validate(t *testing.T) {
	for _, s := range []Status{StatusExcellent, StatusGood, StatusAverage, StatusBad, StatusCritical} {
		assert.NoError(t, s.Validate())
	}
	assert.Error(t, Status("fine").Validate())
}

func Test_Rasi_Index(t *testing.T) {
	assert.Equal(t, 1, Mesha.Index())
	assert.Equal(t, 8, Vrischika.Index())
	assert.Equal(t, 12, Meena.Index())
	assert.Equal(t, 0, Rasi("Ophiuchus").Index())
}

func Test_RasiCountFrom(t *testing.T) {
	tests := []struct {
		name  string
		from  Rasi
		to    Rasi
		count int
	}{
		{"same sign", Mesha, Mesha, 1},
		{"adjacent", Mesha, Vrishabha, 2},
		{"wrap around", Meena, Mesha, 2},
		{"example pair", Vrischika, Tula, 12},
		{"reverse example", Tula, Vrischika, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, RasiCountFrom(tt.from, tt.to))
		})
	}
}

// Inclusive counting means the two directions total 14 for distinct signs,
// not 12: the two underlying step counts sum to the full cycle and each
// direction adds one for the starting sign.
func Test_RasiCountFrom_Complement(t *testing.T) {
	for _, a := range AllRasis {
		for _, b := range AllRasis {
			if a == b {
				continue
			}
			sum := RasiCountFrom(a, b) + RasiCountFrom(b, a)
			require.Equal(t, 14, sum, "%s/%s", a, b)
		}
	}
}

func Test_Nakshatra_Index(t *testing.T) {
	assert.Equal(t, 1, Ashwini.Index())
	assert.Equal(t, 16, Vishakha.Index())
	assert.Equal(t, 17, Anuradha.Index())
	assert.Equal(t, 27, Revati.Index())
	assert.Equal(t, 0, Nakshatra("Polaris").Index())
}

func Test_NakshatraCountFrom(t *testing.T) {
	tests := []struct {
		name  string
		from  Nakshatra
		to    Nakshatra
		count int
	}{
		{"same star", Ashwini, Ashwini, 1},
		{"forward", Ashwini, Rohini, 4},
		{"wrap", Revati, Ashwini, 2},
		{"example pair", Anuradha, Vishakha, 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, NakshatraCountFrom(tt.from, tt.to))
		})
	}
}

func Test_NakshatraCountFrom_Range(t *testing.T) {
	for _, a := range AllNakshatras {
		for _, b := range AllNakshatras {
			c := NakshatraCountFrom(a, b)
			require.GreaterOrEqual(t, c, 1)
			require.LessOrEqual(t, c, 27)
		}
	}
}

func Test_Planet_Nature(t *testing.T) {
	assert.True(t, Jupiter.IsBenefic())
	assert.True(t, Mercury.IsBenefic())
	assert.False(t, Saturn.IsBenefic())

	assert.True(t, Saturn.IsMalefic())
	assert.True(t, Ketu.IsMalefic())
	assert.False(t, Venus.IsMalefic())

	// Every graha is exactly one of the two.
	for _, p := range AllPlanets {
		assert.NotEqual(t, p.IsBenefic(), p.IsMalefic(), p)
	}
}

func Test_Enum_Validate(t *testing.T) {
	for _, p := range AllPlanets {
		assert.NoError(t, p.Validate())
	}
	assert.Error(t, Planet("Pluto").Validate())

	for _, r := range AllRasis {
		assert.NoError(t, r.Validate())
	}
	assert.Error(t, Rasi("Aries ").Validate())

	for _, n := range AllNakshatras {
		assert.NoError(t, n.Validate())
	}
	assert.Error(t, Nakshatra("").Validate())
}
