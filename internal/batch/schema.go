package batch

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/algoselect/internal/engine"
	q "github.com/abhisek/algoselect/internal/questionnaire"
)

const schemaURL = "schema://algoselect/request.json"

// compiledSchema is built once from the question catalog.
var compiledSchema = sync.OnceValues(compileSchema)

// schemaDefinition describes a request: an answers object keyed by question
// id plus an optional size policy. Unknown ids are rejected.
func schemaDefinition() map[string]any {
	props := make(map[string]any)
	for _, question := range q.All() {
		props[question.ID] = map[string]any{
			"type":        "string",
			"description": question.Prompt,
		}
	}
	return map[string]any{
		"type":                 "object",
		"required":             []any{"answers"},
		"additionalProperties": false,
		"properties": map[string]any{
			"answers": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           props,
			},
			"size_policy": map[string]any{
				"enum": []any{string(engine.SizePolicyHigh), string(engine.SizePolicyUnknown)},
			},
		},
	}
}

func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, schemaDefinition()); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
