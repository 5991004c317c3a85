package domain

import (
	"context"

	"tripparse/internal/core/parser"
)

// ServicePort is the nlp-search service contract
type ServicePort interface {
	// Search parses the query, renders the interpretation and suggestion
	// prompts, and records the outcome when a query log is configured
	Search(ctx context.Context, in ParseInput) (SearchResponse, error)

	// Parse runs the bare parse for the GET form
	Parse(ctx context.Context, query string) (parser.ParsedTravelRequest, error)

	// Language reports the full detection result for a query
	Language(query string) LanguageResponse
}
