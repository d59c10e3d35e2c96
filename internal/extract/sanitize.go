package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// NormalizeAndSanitizeJSON cleans a raw capability response before schema
// validation:
//   - drops explicit nulls and empty strings (absence is the only skip signal
//     downstream, so nulls must never survive to the ingestion engine)
//   - coerces numeric strings ("$14", "43%") to numbers for price/abv/age
//   - normalizes spirit_type and pour_size to the controlled vocabularies
//   - removes unknown keys (additionalProperties = false friendliness)
//   - drops whiskey entries with no usable name
//
// It returns the cleaned JSON and the list of dropped/renamed keys for logging.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)

	// rename synonyms the model likes to emit
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}
	renamed("bar", "bar_name")
	renamed("venue", "bar_name")
	renamed("items", "whiskeys")
	renamed("menu", "whiskeys")

	// top-level string hygiene
	if v, ok := m["bar_name"]; ok {
		s, isStr := v.(string)
		if !isStr || strings.TrimSpace(s) == "" {
			delete(m, "bar_name")
			dropped = append(dropped, "bar_name(empty)")
		} else {
			m["bar_name"] = strings.TrimSpace(s)
		}
	}

	if v, ok := m["confidence"]; ok {
		if _, isNum := v.(float64); !isNum {
			delete(m, "confidence")
			dropped = append(dropped, "confidence(type)")
		}
	}

	// whiskeys array. A present-but-null or mistyped value becomes an empty
	// menu; an absent key is left absent so schema validation rejects the
	// response and the attempt loop retries.
	if v, ok := m["whiskeys"]; ok {
		items, _ := v.([]any)
		cleanItems := make([]any, 0, len(items))
		for i, it := range items {
			entry, ok := it.(map[string]any)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("whiskeys[%d](type)", i))
				continue
			}
			if cleaned, ok := sanitizeWhiskey(entry, i, &dropped); ok {
				cleanItems = append(cleanItems, cleaned)
			}
		}
		m["whiskeys"] = cleanItems
	}

	// remove unknown top-level keys
	allowedTop := map[string]struct{}{"bar_name": {}, "confidence": {}, "whiskeys": {}}
	for k := range m {
		if _, ok := allowedTop[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

func sanitizeWhiskey(entry map[string]any, idx int, dropped *[]string) (map[string]any, bool) {
	drop := func(key, why string) {
		delete(entry, key)
		*dropped = append(*dropped, fmt.Sprintf("whiskeys[%d].%s(%s)", idx, key, why))
	}

	// strings: trim, drop empties and nulls
	for _, k := range []string{"name", "distillery", "notes", "pour_size", "spirit_type"} {
		v, ok := entry[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				drop(k, "empty")
			} else {
				entry[k] = s
			}
		case nil:
			drop(k, "null")
		default:
			drop(k, "type")
		}
	}

	// numbers: coerce "14", "$14.50", "43%" and drop the rest
	for _, k := range []string{"price", "abv"} {
		if v, ok := entry[k]; ok {
			if f, ok := coerceFloat(v); ok {
				entry[k] = f
			} else {
				drop(k, "number")
			}
		}
	}
	if v, ok := entry["age_years"]; ok {
		if f, ok := coerceFloat(v); ok && f >= 0 {
			entry["age_years"] = int(f)
		} else {
			drop("age_years", "number")
		}
	}

	// controlled vocabularies
	if v, ok := entry["spirit_type"].(string); ok {
		if norm, ok := NormalizeSpiritType(v); ok {
			entry["spirit_type"] = norm
		} else {
			drop("spirit_type", "vocab")
		}
	}
	if v, ok := entry["pour_size"].(string); ok {
		if norm, ok := NormalizePourSize(v); ok {
			entry["pour_size"] = norm
		} else {
			drop("pour_size", "vocab")
		}
	}

	// remove unknown keys
	allowed := map[string]struct{}{
		"name": {}, "distillery": {}, "spirit_type": {}, "age_years": {},
		"abv": {}, "price": {}, "pour_size": {}, "notes": {},
	}
	for k := range entry {
		if _, ok := allowed[k]; !ok {
			drop(k, "unknown")
		}
	}

	if _, ok := entry["name"].(string); !ok {
		*dropped = append(*dropped, fmt.Sprintf("whiskeys[%d](no name)", idx))
		return nil, false
	}
	return entry, true
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimPrefix(s, "$")
		s = strings.TrimSuffix(s, "%")
		s = strings.ReplaceAll(s, ",", "")
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
