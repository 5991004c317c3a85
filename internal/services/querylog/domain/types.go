// Package domain defines querylog types and ports
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded parse outcome. Optional slots stay empty strings
// and persist as NULLs
type Entry struct {
	ID                 uuid.UUID `json:"id"`
	Query              string    `json:"query"`
	Language           string    `json:"language"`
	LanguageConfidence float64   `json:"language_confidence"`
	Origin             string    `json:"origin,omitempty"`
	Destination        string    `json:"destination,omitempty"`
	DepartureDate      string    `json:"departure_date,omitempty"`
	ReturnDate         string    `json:"return_date,omitempty"`
	TripType           string    `json:"trip_type"`
	CanSearch          bool      `json:"can_search"`
	CreatedAt          time.Time `json:"created_at"`
}
