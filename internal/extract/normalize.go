package extract

import (
	"strings"

	"github.com/dramhound/dramhound/constants"
)

// spiritSynonyms maps common menu spellings onto the controlled vocabulary.
var spiritSynonyms = map[string]string{
	"bourbon":            "bourbon",
	"straight bourbon":   "bourbon",
	"kentucky bourbon":   "bourbon",
	"rye":                "rye",
	"straight rye":       "rye",
	"scotch":             "scotch",
	"scotch whisky":      "scotch",
	"islay":              "scotch",
	"speyside":           "scotch",
	"highland":           "scotch",
	"irish":              "irish",
	"irish whiskey":      "irish",
	"japanese":           "japanese",
	"japanese whisky":    "japanese",
	"canadian":           "canadian",
	"canadian whisky":    "canadian",
	"single malt":        "single_malt",
	"single_malt":        "single_malt",
	"single malt scotch": "single_malt",
	"blended":            "blended",
	"blend":              "blended",
	"blended scotch":     "blended",
	"blended whiskey":    "blended",
	"american":           "american",
	"american whiskey":   "american",
	"tennessee":          "american",
	"tennessee whiskey":  "american",
	"world":              "world",
	"world whisky":       "world",
	"other":              "other",
	"whiskey":            "other",
	"whisky":             "other",
}

// pourSynonyms maps menu pour spellings onto the controlled pour sizes.
var pourSynonyms = map[string]string{
	"0.5oz":     "0.5oz",
	"0.5 oz":    "0.5oz",
	"1/2 oz":    "0.5oz",
	"half oz":   "0.5oz",
	"half pour": "0.5oz",
	"taste":     "0.5oz",
	"taster":    "0.5oz",
	"15ml":      "0.5oz",
	"1oz":       "1oz",
	"1 oz":      "1oz",
	"dram":      "1oz",
	"30ml":      "1oz",
	"1.5oz":     "1.5oz",
	"1.5 oz":    "1.5oz",
	"45ml":      "1.5oz",
	"shot":      "1.5oz",
	"2oz":       "2oz",
	"2 oz":      "2oz",
	"60ml":      "2oz",
	"full pour": "2oz",
	"pour":      "2oz",
	"glass":     "2oz",
}

// NormalizeSpiritType maps a free-text spirit type onto the controlled
// vocabulary. The second return is false when no mapping exists.
func NormalizeSpiritType(s string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if norm, ok := spiritSynonyms[key]; ok {
		return norm, true
	}
	// exact vocabulary values pass through
	for _, v := range constants.SpiritTypes {
		if key == v {
			return v, true
		}
	}
	return "", false
}

// NormalizePourSize maps a free-text pour size onto the controlled vocabulary.
func NormalizePourSize(s string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if norm, ok := pourSynonyms[key]; ok {
		return norm, true
	}
	return "", false
}

// Finalize applies the shared post-extraction rules: clamp confidence into
// [0,1] and route low-confidence menus to review. Called by every
// MenuExtractor implementation after decoding.
func Finalize(menu *ExtractedMenu) {
	if menu.Confidence < 0 {
		menu.Confidence = 0
	}
	if menu.Confidence > 1 {
		menu.Confidence = 1
	}
	if menu.Whiskeys == nil {
		menu.Whiskeys = []ExtractedWhiskey{}
	}
	if menu.Confidence < ReviewThreshold {
		menu.ExtractionMethod = constants.MethodReview
	}
}
