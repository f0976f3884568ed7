package main

import (
	"errors"
	"io/fs"

	"github.com/porutham-dev/porutham/internal/config"
	"github.com/porutham-dev/porutham/internal/domain/chart"
)

// Exit codes, stable per the CLI contract.
const (
	exitOK            = 0
	exitFailure       = 1
	exitFileNotFound  = 2
	exitInvalidInput  = 3
	exitUnknownEntity = 4
)

// exitCode maps an error chain onto the CLI exit code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var (
		parseErr   *config.ParseError
		unknown    *chart.UnknownEntityError
		missing    *chart.MissingPlanetError
		outOfRange *chart.OutOfRangeError
	)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return exitFileNotFound
	case errors.As(err, &unknown):
		return exitUnknownEntity
	case errors.As(err, &parseErr), errors.As(err, &missing), errors.As(err, &outOfRange):
		return exitInvalidInput
	default:
		return exitFailure
	}
}
