package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TrawlJob represents one ingestion attempt for data transfer between layers.
type TrawlJob struct {
	ID           uuid.UUID       `json:"id"`
	BarID        uuid.UUID       `json:"bar_id"`
	SourceRef    string          `json:"source_ref"`
	SourceType   string          `json:"source_type"`
	Status       string          `json:"status"`
	WhiskeyCount int             `json:"whiskey_count"`
	Result       json.RawMessage `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	SubmittedBy  *string         `json:"submitted_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
