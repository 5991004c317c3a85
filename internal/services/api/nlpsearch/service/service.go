// Package service contains the nlp-search workflows
package service

import (
	"context"
	"fmt"
	"strings"

	"tripparse/internal/adapters/geocode"
	"tripparse/internal/core/parser"
	perr "tripparse/internal/platform/errors"
	"tripparse/internal/platform/logger"
	"tripparse/internal/services/api/nlpsearch/domain"
	qdomain "tripparse/internal/services/querylog/domain"
)

// Service defines the nlp-search service contract
type Service interface {
	domain.ServicePort
}

// Confidence assigned to a slot filled by the external geocoder rather
// than the built-in gazetteer
const geocodedConfidence = 0.5

// Fixed prompts returned for slots the query never filled
const (
	suggestDestination = "Where would you like to go?"
	suggestCheckin     = "When would you like to check in?"
	suggestNights      = "How many nights will you stay?"
)

// Svc implements the nlp-search service
type Svc struct {
	parser *parser.Parser
	geo    geocode.Resolver
	rec    qdomain.RecorderPort
	log    logger.Logger
}

// Option configures the service
type Option func(*Svc)

// WithGeocoder sets the external resolver tried on gazetteer misses
func WithGeocoder(g geocode.Resolver) Option {
	return func(s *Svc) { s.geo = g }
}

// WithRecorder sets the query log port
func WithRecorder(r qdomain.RecorderPort) Option {
	return func(s *Svc) { s.rec = r }
}

// New constructs the nlp-search service over a parser
func New(p *parser.Parser, opts ...Option) *Svc {
	if p == nil {
		panic("nlpsearch.Service requires a non nil Parser")
	}
	s := &Svc{
		parser: p,
		log:    *logger.Named("nlpsearch"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse implements domain.ServicePort
func (s *Svc) Parse(ctx context.Context, query string) (parser.ParsedTravelRequest, error) {
	if strings.TrimSpace(query) == "" {
		return parser.ParsedTravelRequest{}, perr.Validationf("query must not be blank")
	}
	p := s.parser.Parse(query)
	s.geocodeMisses(ctx, &p)
	return p, nil
}

// Search implements domain.ServicePort
func (s *Svc) Search(ctx context.Context, in domain.ParseInput) (domain.SearchResponse, error) {
	parsed, err := s.Parse(ctx, in.Query)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	checkin := parsed.DepartureDate
	if checkin == "" && in.Context != nil {
		checkin = in.Context.Checkin
	}

	out := domain.SearchResponse{
		Parsed:         parsed,
		Interpretation: interpret(parsed, checkin),
		Suggestions:    suggest(parsed, checkin),
		CanSearch:      parsed.Destination != "" && checkin != "",
		OriginalQuery:  in.Query,
	}

	s.record(ctx, in.Query, parsed, out.CanSearch)
	return out, nil
}

// Language implements domain.ServicePort
func (s *Svc) Language(query string) domain.LanguageResponse {
	det := s.parser.Languages()
	return domain.LanguageResponse{
		Result: det.Detect(query),
		Mixed:  det.IsMixedLanguage(query),
	}
}

// geocodeMisses tries the external resolver once per unresolved slot.
// Resolver failures leave the slot empty, same as a plain gazetteer miss
func (s *Svc) geocodeMisses(ctx context.Context, p *parser.ParsedTravelRequest) {
	if s.geo == nil {
		return
	}
	if p.Origin == "" && p.Unresolved.Origin != "" {
		if place, _ := s.geo.Resolve(ctx, p.Unresolved.Origin); place != nil {
			p.Origin = place.City
			p.Confidence.Origin = geocodedConfidence
		}
	}
	if p.Destination == "" && p.Unresolved.Destination != "" {
		if place, _ := s.geo.Resolve(ctx, p.Unresolved.Destination); place != nil {
			p.Destination = place.City
			p.Confidence.Destination = geocodedConfidence
		}
	}
}

// record writes the outcome to the query log, best effort
func (s *Svc) record(ctx context.Context, query string, p parser.ParsedTravelRequest, canSearch bool) {
	if s.rec == nil {
		return
	}
	err := s.rec.Record(ctx, qdomain.Entry{
		Query:              query,
		Language:           string(p.Language),
		LanguageConfidence: p.LanguageConfidence,
		Origin:             p.Origin,
		Destination:        p.Destination,
		DepartureDate:      p.DepartureDate,
		ReturnDate:         p.ReturnDate,
		TripType:           string(p.TripType),
		CanSearch:          canSearch,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("query log write failed")
	}
}

// interpret renders the parse as one readable line, slots in a fixed
// order so identical parses always read identically
func interpret(p parser.ParsedTravelRequest, checkin string) string {
	var parts []string
	if p.Destination != "" {
		parts = append(parts, "trip to "+p.Destination)
	}
	if checkin != "" {
		parts = append(parts, "check-in "+checkin)
	}
	if p.Stay.Nights > 0 {
		parts = append(parts, fmt.Sprintf("%d nights", p.Stay.Nights))
	}
	parts = append(parts, fmt.Sprintf("%d adults", p.Passengers.Adults))
	if p.Passengers.Children > 0 {
		parts = append(parts, fmt.Sprintf("%d children", p.Passengers.Children))
	}
	if p.Stay.BudgetMax > 0 {
		parts = append(parts, fmt.Sprintf("under $%d", p.Stay.BudgetMax))
	}
	if p.Stay.Stars > 0 {
		parts = append(parts, fmt.Sprintf("%d stars", p.Stay.Stars))
	}
	if len(p.Stay.Amenities) > 0 {
		parts = append(parts, "with "+strings.Join(p.Stay.Amenities, ", "))
	}
	if p.Stay.Mood != "" {
		parts = append(parts, p.Stay.Mood)
	}
	return strings.Join(parts, ", ")
}

// suggest returns one fixed prompt per missing required slot
func suggest(p parser.ParsedTravelRequest, checkin string) []string {
	out := make([]string, 0, 3)
	if p.Destination == "" {
		out = append(out, suggestDestination)
	}
	if checkin == "" {
		out = append(out, suggestCheckin)
	}
	if p.Stay.Nights == 0 && p.ReturnDate == "" {
		out = append(out, suggestNights)
	}
	return out
}
