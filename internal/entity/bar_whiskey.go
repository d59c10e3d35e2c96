package entity

import (
	"time"

	"github.com/google/uuid"
)

// BarWhiskey represents one bar-to-whiskey listing for data transfer between layers.
type BarWhiskey struct {
	ID           uuid.UUID `json:"id"`
	BarID        uuid.UUID `json:"bar_id"`
	WhiskeyID    uuid.UUID `json:"whiskey_id"`
	Price        *float64  `json:"price,omitempty"`
	PourSize     *string   `json:"pour_size,omitempty"`
	Available    bool      `json:"available"`
	Notes        *string   `json:"notes,omitempty"`
	SourceType   string    `json:"source_type"`
	LastVerified time.Time `json:"last_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MenuItem is a denormalized listing row (whiskey joined onto its listing),
// used for menu display and export.
type MenuItem struct {
	WhiskeyName  string    `json:"whiskey_name"`
	Distillery   *string   `json:"distillery,omitempty"`
	SpiritType   string    `json:"spirit_type"`
	AgeYears     *int      `json:"age_years,omitempty"`
	ABV          *float64  `json:"abv,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	PourSize     *string   `json:"pour_size,omitempty"`
	Available    bool      `json:"available"`
	Notes        *string   `json:"notes,omitempty"`
	LastVerified time.Time `json:"last_verified"`
}
