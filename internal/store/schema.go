package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordsSchemaURL = "schema://answers.json"

// recordsSchemaDoc describes answers.json: an array of records with the
// six fixed keys.
const recordsSchemaDoc = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["H", "E", "C", "F", "R", "total_contamination"],
		"properties": {
			"H": {"type": "number"},
			"E": {"type": "number"},
			"C": {"type": "number"},
			"F": {"type": "number"},
			"R": {"enum": [1, 2]},
			"total_contamination": {"type": "number"}
		}
	}
}`

var recordsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal([]byte(recordsSchemaDoc), &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(recordsSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(recordsSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateRecords checks a decoded JSON document against the record schema.
func validateRecords(doc any) error {
	sch, err := recordsSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
