package task

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

var documentSchema = gojsonschema.NewStringLoader(schemaJSON)

// validateDocument checks the raw document against the embedded schema and
// returns one line per violation.
func validateDocument(doc gojsonschema.JSONLoader) ([]string, error) {
	result, err := gojsonschema.Validate(documentSchema, doc)
	if err != nil {
		return nil, fmt.Errorf("validate task document: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, schemaErr := range result.Errors() {
		problems = append(problems, schemaErr.String())
	}
	sort.Strings(problems)
	return problems, nil
}
