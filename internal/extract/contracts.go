package extract

import (
	"context"
	"time"

	"github.com/dramhound/dramhound/constants"
)

// ReviewThreshold is the confidence below which an extraction is routed to
// manual review instead of being trusted outright. A low-confidence result is
// not an error.
const ReviewThreshold = 0.5

// ExtractedWhiskey is one candidate menu line. Every field except Name is
// optional; a nil pointer means the menu did not state that fact, which the
// ingestion engine treats as "do not touch the stored value".
type ExtractedWhiskey struct {
	Name       string   `json:"name"`
	Distillery *string  `json:"distillery,omitempty"`
	SpiritType *string  `json:"spirit_type,omitempty"`
	AgeYears   *int     `json:"age_years,omitempty"`
	ABV        *float64 `json:"abv,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	PourSize   *string  `json:"pour_size,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

// ExtractedMenu is the output of one extraction pass. Whiskeys may be empty:
// a zero-result extraction is valid, not an error.
type ExtractedMenu struct {
	BarName           *string                    `json:"bar_name,omitempty"`
	Whiskeys          []ExtractedWhiskey         `json:"whiskeys"`
	SourceURL         string                     `json:"source_url,omitempty"`
	ExtractionMethod  constants.ExtractionMethod `json:"extraction_method"`
	Confidence        float32                    `json:"confidence"`
	ScrapedAt         *time.Time                 `json:"scraped_at,omitempty"`
	SourceAttribution *string                    `json:"source_attribution,omitempty"`
	ContentHash       string                     `json:"content_hash,omitempty"`
	SourceType        constants.SourceType       `json:"source_type"`
}

// TextRequest carries pre-converted page content into text extraction.
type TextRequest struct {
	Markdown    string
	TitleHint   string // page title, a bar-name hint for the capability
	SourceURL   string
	ContentHash string
}

// ImageRequest carries a menu photograph into vision extraction. The payload
// must already be within constants.MaxImageBytes and have an allow-listed
// MIME type.
type ImageRequest struct {
	Data     []byte
	MIMEType string
}

// MenuExtractor is the interface the pipeline depends on. Implementations
// wrap whatever extraction provider is configured; the pipeline only sees
// structured menus, confidence scores, and failures.
type MenuExtractor interface {
	ExtractFromText(ctx context.Context, req TextRequest) (*ExtractedMenu, []byte /*rawJSON*/, error)
	ExtractFromImage(ctx context.Context, req ImageRequest) (*ExtractedMenu, []byte /*rawJSON*/, error)
}
