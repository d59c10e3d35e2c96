package extract

import "github.com/dramhound/dramhound/constants"

// BuildMenuJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the extraction provider as a structured output constraint and
// also use it locally to validate what comes back.
func BuildMenuJSONSchema() map[string]any {
	whiskeyProps := map[string]any{
		"name":        map[string]any{"type": "string", "minLength": 1},
		"distillery":  map[string]any{"type": "string"},
		"spirit_type": map[string]any{"type": "string", "enum": constants.SpiritTypes},
		"age_years":   map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"abv":         map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		"price":       map[string]any{"type": "number", "minimum": 0},
		"pour_size":   map[string]any{"type": "string"},
		"notes":       map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"bar_name":   map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"whiskeys": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           whiskeyProps,
					"required":             []string{"name"},
				},
			},
		},
		"required": []string{"whiskeys"},
	}
}
