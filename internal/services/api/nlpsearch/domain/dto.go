// Package domain defines transport types for the nlp-search endpoints
package domain

import (
	"tripparse/internal/core/lang"
	"tripparse/internal/core/parser"
)

// SearchContext carries caller-supplied facts the query text itself lacks
type SearchContext struct {
	Checkin string `json:"checkin" validate:"omitempty,iso_date" example:"2025-11-15"`
}

// ParseInput is the POST /nlp-search request body
// swagger:model
type ParseInput struct {
	Query   string         `json:"query" validate:"required" example:"vuelo de Madrid a Cancún el 15 de noviembre"`
	Context *SearchContext `json:"context,omitempty"`
}

// SearchResponse is the full POST /nlp-search payload: the structured parse
// plus a readable rendering and prompts for whatever is still missing
// swagger:model
type SearchResponse struct {
	Parsed         parser.ParsedTravelRequest `json:"parsed"`
	Interpretation string                     `json:"interpretation"`
	Suggestions    []string                   `json:"suggestions"`
	CanSearch      bool                       `json:"canSearch"`
	OriginalQuery  string                     `json:"originalQuery"`
}

// LanguageResponse is the GET /nlp-search/language payload
// swagger:model
type LanguageResponse struct {
	lang.Result
	Mixed bool `json:"mixed"`
}
