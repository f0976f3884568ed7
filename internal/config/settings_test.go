package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SettingsFromViper_Defaults(t *testing.T) {
	s, err := SettingsFromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func Test_SettingsFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("manglik_reference", "moon")
	v.Set("format", "json")
	v.Set("color", false)

	s, err := SettingsFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "moon", s.ManglikReference)
	assert.Equal(t, "json", s.DefaultFormat)
	assert.False(t, s.Color)
}

func Test_SettingsFromViper_InvalidReference(t *testing.T) {
	v := viper.New()
	v.Set("manglik_reference", "jupiter")

	_, err := SettingsFromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid manglik_reference")
}
