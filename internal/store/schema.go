package store

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

var fileSchema = gojsonschema.NewStringLoader(schemaJSON)

// validateDocument checks raw store content against the embedded schema.
func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(fileSchema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate store schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, schemaErr := range result.Errors() {
		errs = append(errs, schemaErr.String())
	}
	sort.Strings(errs)

	return fmt.Errorf("schema validation failed: %s", strings.Join(errs, "; "))
}
