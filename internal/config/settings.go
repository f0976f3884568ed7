package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings are the runtime options read from the config file and the
// environment, as opposed to the per-run match input.
type Settings struct {
	// ManglikReference is the chart Mars is judged from: lagna, moon or
	// venus.
	ManglikReference string
	// DefaultFormat is the output format used when --format is not given.
	DefaultFormat string
	// Color enables ANSI colors in table output.
	Color bool
}

// DefaultSettings returns the built-in runtime defaults.
func DefaultSettings() Settings {
	return Settings{
		ManglikReference: "lagna",
		DefaultFormat:    "table",
		Color:            true,
	}
}

// SettingsFromViper overlays the viper-managed configuration on top of the
// defaults and validates the result.
func SettingsFromViper(v *viper.Viper) (Settings, error) {
	s := DefaultSettings()
	if v.IsSet("manglik_reference") {
		s.ManglikReference = v.GetString("manglik_reference")
	}
	if v.IsSet("format") {
		s.DefaultFormat = v.GetString("format")
	}
	if v.IsSet("color") {
		s.Color = v.GetBool("color")
	}

	switch s.ManglikReference {
	case "lagna", "moon", "venus":
	default:
		return Settings{}, fmt.Errorf("invalid manglik_reference %q (want lagna, moon or venus)", s.ManglikReference)
	}
	return s, nil
}
