package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

// writeOutput writes v as indented JSON to path, or to stdout when path is
// empty, then validates it against the named schema. Validation failures are
// reported as warnings.
func writeOutput(stdout, stderr io.Writer, path, schema string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		if _, err := fmt.Fprintln(stdout, string(jsonBytes)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := schemas.Validate(schema, jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(stderr, "Warning: output does not validate against the %s schema: %v\n", schema, err)
		} else {
			_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}
	return nil
}
