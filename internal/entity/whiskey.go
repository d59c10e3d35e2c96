package entity

import (
	"time"

	"github.com/google/uuid"
)

// Whiskey represents a canonical catalog whiskey for data transfer between layers.
type Whiskey struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Distillery    *string   `json:"distillery,omitempty"`
	NameKey       string    `json:"-"`
	DistilleryKey string    `json:"-"`
	SpiritType    string    `json:"spirit_type"`
	AgeYears      *int      `json:"age_years,omitempty"`
	ABV           *float64  `json:"abv,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
