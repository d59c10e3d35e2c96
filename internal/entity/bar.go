package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bar represents a bar for data transfer between layers.
type Bar struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    *string   `json:"address,omitempty"`
	City       *string   `json:"city,omitempty"`
	WebsiteURL *string   `json:"website_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
