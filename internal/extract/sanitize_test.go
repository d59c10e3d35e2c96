package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAndSanitizeJSON(t *testing.T) {
	raw := []byte(`{
		"bar_name": "  The Dram Room  ",
		"confidence": 0.9,
		"model_notes": "extra",
		"whiskeys": [
			{"name": "Lagavulin 16", "spirit_type": "Islay", "price": "$18", "abv": "43%", "age_years": "16", "pour_size": "dram"},
			{"name": "Buffalo Trace", "distillery": null, "price": 9.5, "vintage": 2019},
			{"name": "   ", "price": 12},
			{"name": "Redbreast 12", "notes": ""}
		]
	}`)

	cleaned, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))

	assert.Equal(t, "The Dram Room", m["bar_name"])
	_, hasUnknown := m["model_notes"]
	assert.False(t, hasUnknown)

	items := m["whiskeys"].([]any)
	// the nameless entry is gone
	require.Len(t, items, 3)

	first := items[0].(map[string]any)
	assert.Equal(t, "scotch", first["spirit_type"])
	assert.Equal(t, 18.0, first["price"])
	assert.Equal(t, 43.0, first["abv"])
	assert.Equal(t, 16.0, first["age_years"]) // json numbers decode as float64
	assert.Equal(t, "1oz", first["pour_size"])

	second := items[1].(map[string]any)
	_, hasDistillery := second["distillery"]
	assert.False(t, hasDistillery, "explicit null must be dropped")
	_, hasVintage := second["vintage"]
	assert.False(t, hasVintage)

	third := items[2].(map[string]any)
	_, hasNotes := third["notes"]
	assert.False(t, hasNotes, "empty string must be dropped")
}

func TestSanitizeSynonymRenames(t *testing.T) {
	raw := []byte(`{"venue": "Quiet Oak", "items": [{"name": "Oban 14"}]}`)
	cleaned, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, "Quiet Oak", m["bar_name"])
	assert.Len(t, m["whiskeys"], 1)
}

func TestSanitizedOutputPassesSchema(t *testing.T) {
	raw := []byte(`{"whiskeys": [{"name": "Ardbeg 10", "price": "12", "spirit_type": "single malt"}], "confidence": 0.8}`)
	cleaned, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	require.NoError(t, ValidateMenuJSON(cleaned))
}

func TestSanitizeRejectsNonJSON(t *testing.T) {
	_, _, err := NormalizeAndSanitizeJSON([]byte("I could not read the menu."), nil)
	require.Error(t, err)
}

func TestSanitizeKeepsMissingWhiskeysAbsent(t *testing.T) {
	// A response with no menu structure at all must not be rewritten into a
	// valid empty menu; leaving the key absent lets schema validation reject
	// it so the attempt loop retries.
	cleaned, _, err := NormalizeAndSanitizeJSON([]byte(`{"error": "I cannot read this page"}`), nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	_, hasWhiskeys := m["whiskeys"]
	assert.False(t, hasWhiskeys)
	require.Error(t, ValidateMenuJSON(cleaned))
}

func TestSanitizeDefaultsNullWhiskeysToEmpty(t *testing.T) {
	cleaned, _, err := NormalizeAndSanitizeJSON([]byte(`{"whiskeys": null}`), nil)
	require.NoError(t, err)
	require.NoError(t, ValidateMenuJSON(cleaned))

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Len(t, m["whiskeys"], 0)
}

func TestSchemaAllowsEmptyWhiskeys(t *testing.T) {
	require.NoError(t, ValidateMenuJSON([]byte(`{"whiskeys": []}`)))
}

func TestSchemaRequiresWhiskeys(t *testing.T) {
	require.Error(t, ValidateMenuJSON([]byte(`{"bar_name": "x"}`)))
}
