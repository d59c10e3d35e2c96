package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	menuSchemaOnce sync.Once
	menuSchema     *jsonschema.Schema
	menuSchemaErr  error
)

// ValidateMenuJSON checks a sanitized extraction payload against the menu
// schema. The schema is compiled once; it never changes at runtime.
func ValidateMenuJSON(data []byte) error {
	menuSchemaOnce.Do(func() {
		menuSchema, menuSchemaErr = compileSchema(BuildMenuJSONSchema())
	})
	if menuSchemaErr != nil {
		return fmt.Errorf("compile menu schema: %w", menuSchemaErr)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal menu json: %w", err)
	}
	if err := menuSchema.Validate(v); err != nil {
		return fmt.Errorf("menu json does not match schema: %w", err)
	}
	return nil
}

func compileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("menu.schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("menu.schema.json")
}
