package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

// starChart builds a chart carrying only the fields the nakshatra-based
// checks read.
func starChart(n values.Nakshatra) *chart.BirthChart {
	return &chart.BirthChart{Nakshatra: n}
}

// rasiChart builds a chart carrying only the Moon sign.
func rasiChart(r values.Rasi) *chart.BirthChart {
	return &chart.BirthChart{Rasi: r}
}

func Test_CheckDina(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Nakshatra
		status    values.Status
		mentions  string
	}{
		{"same star is the birth tara", values.Anuradha, values.Anuradha, values.StatusAverage, "Janma"},
		{"count 2 is Sampat", values.Ashwini, values.Bharani, values.StatusGood, "Sampat"},
		{"count 3 is Vipat", values.Ashwini, values.Krittika, values.StatusBad, "Vipat"},
		{"count 27 reduces to Parama Mitra", values.Anuradha, values.Vishakha, values.StatusGood, "Parama Mitra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkDina(starChart(tt.girl), starChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
			assert.Contains(t, result.Explanation, tt.mentions)
		})
	}
}

func Test_CheckGana(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Nakshatra
		status    values.Status
	}{
		{"deva girl with deva boy", values.Ashwini, values.Pushya, values.StatusExcellent},
		{"manushya girl with deva boy", values.Bharani, values.Ashwini, values.StatusGood},
		{"manushya girl with rakshasa boy", values.Bharani, values.Chitra, values.StatusAverage},
		{"deva girl with rakshasa boy", values.Ashwini, values.Krittika, values.StatusBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkGana(starChart(tt.girl), starChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func Test_CheckYoni(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Nakshatra
		status    values.Status
	}{
		{"same animal", values.Ashwini, values.Satabhisha, values.StatusGood},
		{"enemy animals", values.Ashlesha, values.Magha, values.StatusBad},
		{"neutral animals", values.Anuradha, values.Vishakha, values.StatusAverage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkYoni(starChart(tt.girl), starChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func Test_CheckStreeDheergha(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Nakshatra
		status    values.Status
	}{
		{"count 27 passes", values.Anuradha, values.Vishakha, values.StatusGood},
		{"count 7 is the minimum", values.Ashwini, values.Punarvasu, values.StatusGood},
		{"count 3 fails", values.Ashwini, values.Krittika, values.StatusBad},
		{"same star fails", values.Rohini, values.Rohini, values.StatusBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkStreeDheergha(starChart(tt.girl), starChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func Test_CheckMahendra(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Nakshatra
		status    values.Status
	}{
		{"count 4 passes", values.Ashwini, values.Rohini, values.StatusGood},
		{"count 25 passes", values.Rohini, values.Ashwini, values.StatusGood},
		{"count 2 is merely absent", values.Ashwini, values.Bharani, values.StatusAverage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkMahendra(starChart(tt.girl), starChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func Test_CheckRajju(t *testing.T) {
	t.Run("shared group is critical", func(t *testing.T) {
		result, err := checkRajju(starChart(values.Bharani), starChart(values.Pushya))
		require.NoError(t, err)
		assert.Equal(t, values.StatusCritical, result.Status)
		assert.Contains(t, result.Explanation, "Rajju dosha is present")
	})
	t.Run("different groups are safe", func(t *testing.T) {
		result, err := checkRajju(starChart(values.Ashwini), starChart(values.Bharani))
		require.NoError(t, err)
		assert.Equal(t, values.StatusGood, result.Status)
	})
}

func Test_CheckVedha(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Nakshatra
		status    values.Status
	}{
		{"obstruction pair", values.Ashwini, values.Jyeshta, values.StatusCritical},
		{"obstruction pair reversed", values.Jyeshta, values.Ashwini, values.StatusCritical},
		{"one-way pointer still obstructs", values.Dhanishta, values.Revati, values.StatusCritical},
		{"revati's own partner", values.Revati, values.Moola, values.StatusCritical},
		{"unrelated stars are safe", values.Anuradha, values.Vishakha, values.StatusGood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkVedha(starChart(tt.girl), starChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func Test_CheckRasi(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Rasi
		status    values.Status
	}{
		{"same sign counts as 1", values.Mesha, values.Mesha, values.StatusGood},
		{"count 12 passes", values.Vrischika, values.Tula, values.StatusGood},
		{"count 2 fails", values.Mesha, values.Vrishabha, values.StatusBad},
		{"count 6 fails", values.Mesha, values.Kanya, values.StatusBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkRasi(rasiChart(tt.girl), rasiChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func Test_CheckRasiAdhipathi(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Rasi
		status    values.Status
	}{
		{"same lord", values.Mesha, values.Vrischika, values.StatusExcellent},
		{"mutual friends", values.Simha, values.Karka, values.StatusExcellent},
		{"friend and neutral", values.Karka, values.Mesha, values.StatusGood},
		{"mutual neutrals", values.Makara, values.Dhanu, values.StatusGood},
		{"mixed with an enemy", values.Karka, values.Tula, values.StatusAverage},
		{"mutual enemies", values.Simha, values.Tula, values.StatusBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkRasiAdhipathi(rasiChart(tt.girl), rasiChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func Test_CheckVasya(t *testing.T) {
	tests := []struct {
		name      string
		girl, boy values.Rasi
		status    values.Status
	}{
		{"good cell", values.Mesha, values.Mesha, values.StatusGood},
		{"ok cell", values.Vrischika, values.Tula, values.StatusAverage},
		{"bad cell", values.Mesha, values.Karka, values.StatusBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checkVasya(rasiChart(tt.girl), rasiChart(tt.boy))
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}
