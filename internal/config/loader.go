package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseError marks an input file that was found but could not be decoded or
// failed schema validation.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid match input %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads, schema-validates and decodes a match-input file. The format is
// chosen by extension: .json, or .yaml/.yml. A missing file surfaces
// fs.ErrNotExist unwrapped so callers can map it to a distinct exit code.
func Load(path string) (*MatchInput, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("opening input directory: %w", err)
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("opening match input: %w", err)
	}
	defer file.Close()

	return loadFrom(file, path)
}

func loadFrom(r io.Reader, path string) (*MatchInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading match input: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return loadJSON(data, path)
	case ".yaml", ".yml":
		return loadYAML(data, path)
	default:
		return nil, &ParseError{Path: path, Err: fmt.Errorf("unsupported extension %q (want .json, .yaml or .yml)", ext)}
	}
}

func loadJSON(data []byte, path string) (*MatchInput, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := validateSchema(doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var in MatchInput
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &in, nil
}

func loadYAML(data []byte, path string) (*MatchInput, error) {
	// The schema validator expects JSON-decoded values, so the YAML
	// document is converted before validation.
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := validateSchema(doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var in MatchInput
	if err := yaml.UnmarshalWithOptions(data, &in, yaml.Strict()); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &in, nil
}
