package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porutham-dev/porutham/internal/domain/values"
)

func fullPlacements(house int) PlacementMap {
	m := make(PlacementMap, len(values.AllPlanets))
	for _, p := range values.AllPlanets {
		m[p] = house
	}
	return m
}

func Test_New_Valid(t *testing.T) {
	c, err := New("Meera", values.Vrischika, values.Anuradha, 2, values.Kumbha,
		Dasha{Lord: values.Jupiter, EndYear: 2031},
		fullPlacements(1), fullPlacements(5))
	require.NoError(t, err)
	assert.Equal(t, "Meera", c.Name)
	assert.Equal(t, values.Anuradha, c.Nakshatra)
}

func Test_New_UnknownEntities(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*BirthChart, error)
	}{
		{"bad rasi", func() (*BirthChart, error) {
			return New("X", values.Rasi("Ophiuchus"), values.Anuradha, 1, values.Kumbha,
				Dasha{Lord: values.Jupiter}, fullPlacements(1), fullPlacements(1))
		}},
		{"bad nakshatra", func() (*BirthChart, error) {
			return New("X", values.Vrischika, values.Nakshatra("Sirius"), 1, values.Kumbha,
				Dasha{Lord: values.Jupiter}, fullPlacements(1), fullPlacements(1))
		}},
		{"bad lagna", func() (*BirthChart, error) {
			return New("X", values.Vrischika, values.Anuradha, 1, values.Rasi(""),
				Dasha{Lord: values.Jupiter}, fullPlacements(1), fullPlacements(1))
		}},
		{"bad dasha lord", func() (*BirthChart, error) {
			return New("X", values.Vrischika, values.Anuradha, 1, values.Kumbha,
				Dasha{Lord: values.Planet("Pluto")}, fullPlacements(1), fullPlacements(1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
			var unknown *UnknownEntityError
			assert.ErrorAs(t, err, &unknown)
		})
	}
}

func Test_New_PadaRange(t *testing.T) {
	for _, pada := range []int{0, 5, -1} {
		_, err := New("X", values.Vrischika, values.Anuradha, pada, values.Kumbha,
			Dasha{Lord: values.Jupiter}, fullPlacements(1), fullPlacements(1))
		require.Error(t, err, pada)
		var oor *OutOfRangeError
		assert.ErrorAs(t, err, &oor)
	}
}

func Test_New_MissingPlanet(t *testing.T) {
	placements := fullPlacements(1)
	delete(placements, values.Ketu)

	_, err := New("X", values.Vrischika, values.Anuradha, 1, values.Kumbha,
		Dasha{Lord: values.Jupiter}, placements, fullPlacements(1))
	require.Error(t, err)
	var missing *MissingPlanetError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, values.Ketu, missing.Planet)
	assert.Equal(t, "rasi", missing.Varga)
}

func Test_New_HouseRange(t *testing.T) {
	placements := fullPlacements(1)
	placements[values.Mars] = 13

	_, err := New("X", values.Vrischika, values.Anuradha, 1, values.Kumbha,
		Dasha{Lord: values.Jupiter}, placements, fullPlacements(1))
	require.Error(t, err)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 13, oor.Value)
}

func Test_HousesFrom(t *testing.T) {
	placements := fullPlacements(1)
	placements[values.Moon] = 10
	placements[values.Saturn] = 9
	placements[values.Sun] = 1

	c, err := New("X", values.Vrischika, values.Anuradha, 1, values.Kumbha,
		Dasha{Lord: values.Jupiter}, placements, fullPlacements(1))
	require.NoError(t, err)

	fromMoon, err := c.HousesFrom(values.Moon)
	require.NoError(t, err)
	assert.Equal(t, 1, fromMoon[values.Moon], "the reference planet sits in its own first house")
	assert.Equal(t, 12, fromMoon[values.Saturn])
	assert.Equal(t, 4, fromMoon[values.Sun])
}

func Test_PlanetsInHouses(t *testing.T) {
	placements := fullPlacements(3)
	placements[values.Jupiter] = 10
	placements[values.Moon] = 10
	placements[values.Sun] = 1

	c, err := New("X", values.Vrischika, values.Anuradha, 1, values.Kumbha,
		Dasha{Lord: values.Jupiter}, placements, fullPlacements(1))
	require.NoError(t, err)

	got := c.PlanetsInHouses(1, 10)
	assert.Equal(t, []values.Planet{values.Sun, values.Moon, values.Jupiter}, got,
		"canonical planet order, not house order")
	assert.Empty(t, c.PlanetsInHouses(7))
}

func Test_Dasha_String(t *testing.T) {
	assert.Equal(t, "Jupiter (till 2031)", Dasha{Lord: values.Jupiter, EndYear: 2031}.String())
	assert.Equal(t, "Venus", Dasha{Lord: values.Venus}.String())
}
