package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/match-input.schema.json
var matchInputSchema []byte

var inputSchema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("match-input.schema.json", bytes.NewReader(matchInputSchema)); err != nil {
		panic(fmt.Sprintf("config: adding embedded schema: %v", err))
	}
	schema, err := compiler.Compile("match-input.schema.json")
	if err != nil {
		panic(fmt.Sprintf("config: compiling embedded schema: %v", err))
	}
	return schema
}()

// validateSchema checks the decoded document shape before any
// canonicalization. doc must be the generic (map/slice/scalar) decoding of
// the input file.
func validateSchema(doc any) error {
	if err := inputSchema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("input does not match the expected shape:\n%s", formatValidationError(ve))
		}
		return err
	}
	return nil
}

func formatValidationError(ve *jsonschema.ValidationError) string {
	var lines []string
	for _, cause := range ve.Causes {
		loc := cause.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		lines = append(lines, fmt.Sprintf("  - %s: %s", loc, cause.Message))
	}
	if len(lines) == 0 {
		lines = append(lines, "  - "+ve.Message)
	}
	return strings.Join(lines, "\n")
}
