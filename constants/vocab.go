package constants

import "strings"

// SpiritTypes holds the controlled vocabulary for the whiskey spirit_type field.
var SpiritTypes = []string{
	"bourbon",
	"rye",
	"scotch",
	"irish",
	"japanese",
	"canadian",
	"single_malt",
	"blended",
	"american",
	"world",
	"other",
}

// PourSizes holds the controlled vocabulary for listing pour sizes.
var PourSizes = []string{"0.5oz", "1oz", "1.5oz", "2oz"}

// AllowedImageMIMEs holds the image content types accepted for vision extraction.
var AllowedImageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// MaxImageBytes caps image payloads before they reach the extractor.
const MaxImageBytes = 25 << 20 // 25 MiB

// NormalizeMIME lowercases and strips parameters from a content type.
func NormalizeMIME(mime string) string {
	mime = strings.TrimSpace(strings.ToLower(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return mime
}
