package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porutham-dev/porutham/internal/domain/chart"
	"github.com/porutham-dev/porutham/internal/domain/values"
)

func Test_Load_JSON(t *testing.T) {
	in, err := Load(filepath.Join("testdata", "couple.json"))
	require.NoError(t, err)

	assert.Equal(t, "Meera", in.Girl.Name)
	assert.Equal(t, "Arjun", in.Boy.Name)

	girl, boy, err := in.Charts()
	require.NoError(t, err)
	assert.Equal(t, values.Vrischika, girl.Rasi)
	assert.Equal(t, values.Anuradha, girl.Nakshatra)
	assert.Equal(t, values.Kumbha, girl.Lagna)
	assert.Equal(t, chart.Dasha{Lord: values.Jupiter, EndYear: 2031}, girl.Dasha)
	assert.Equal(t, values.Tula, boy.Rasi)
	assert.Equal(t, values.Vishakha, boy.Nakshatra)
	assert.Equal(t, 10, boy.Placements[values.Moon])
}

func Test_Load_YAMLEquivalent(t *testing.T) {
	fromJSON, err := Load(filepath.Join("testdata", "couple.json"))
	require.NoError(t, err)
	fromYAML, err := Load(filepath.Join("testdata", "couple.yaml"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "no-such-file.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func Test_Load_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "couple.toml")
	require.NoError(t, os.WriteFile(path, []byte("girl = 1"), 0o644))

	_, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "unsupported extension")
}

func Test_Load_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"girl": {`), 0o644))

	_, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func Test_Load_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing person", `{"girl": {}}`},
		{"missing required field", `{
			"girl": {"name": "A", "rasi": "Mesha", "nakshatra": "Ashwini",
				"nakshatra_pada": 1, "lagna": "Mesha",
				"planets_from_lagna": {}, "navamsa_planets_from_lagna": {}},
			"boy": {"name": "B", "rasi": "Mesha", "nakshatra": "Ashwini",
				"nakshatra_pada": 1, "lagna": "Mesha", "current_dasha": "Sun",
				"planets_from_lagna": {}, "navamsa_planets_from_lagna": {}}
		}`},
		{"house out of range", `{
			"girl": {"name": "A", "rasi": "Mesha", "nakshatra": "Ashwini",
				"nakshatra_pada": 1, "lagna": "Mesha", "current_dasha": "Sun",
				"planets_from_lagna": {"Sun": 13, "Moon": 1, "Mars": 1, "Mercury": 1,
					"Jupiter": 1, "Venus": 1, "Saturn": 1, "Rahu": 1, "Ketu": 1},
				"navamsa_planets_from_lagna": {"Sun": 1, "Moon": 1, "Mars": 1, "Mercury": 1,
					"Jupiter": 1, "Venus": 1, "Saturn": 1, "Rahu": 1, "Ketu": 1}},
			"boy": {"name": "B", "rasi": "Mesha", "nakshatra": "Ashwini",
				"nakshatra_pada": 1, "lagna": "Mesha", "current_dasha": "Sun",
				"planets_from_lagna": {"Sun": 1, "Moon": 1, "Mars": 1, "Mercury": 1,
					"Jupiter": 1, "Venus": 1, "Saturn": 1, "Rahu": 1, "Ketu": 1},
				"navamsa_planets_from_lagna": {"Sun": 1, "Moon": 1, "Mars": 1, "Mercury": 1,
					"Jupiter": 1, "Venus": 1, "Saturn": 1, "Rahu": 1, "Ketu": 1}}
		}`},
		{"unknown top-level field", `{"girl": {}, "boy": {}, "extra": true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "input.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))

			_, err := Load(path)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func Test_Charts_UnknownEntity(t *testing.T) {
	in, err := Load(filepath.Join("testdata", "couple.json"))
	require.NoError(t, err)
	in.Girl.Rasi = "Atlantis"

	_, _, err = in.Charts()
	var unknownErr *chart.UnknownEntityError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "rasi", unknownErr.Field)
	assert.Equal(t, "Atlantis", unknownErr.Value)
}
