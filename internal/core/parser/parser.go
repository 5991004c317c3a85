// Package parser composes the extractors into one travel-request parse.
// A single synchronous pass runs every extractor over the same input and
// merges the results; extractors never see each other's output
package parser

import (
	"tripparse/internal/core/dates"
	"tripparse/internal/core/lang"
	"tripparse/internal/core/locations"
	"tripparse/internal/core/normalize"
	"tripparse/internal/core/passengers"
	"tripparse/internal/core/prefs"
	"tripparse/internal/core/rulepack"
	"tripparse/internal/core/stay"
	ptime "tripparse/internal/platform/time"
)

// TripType classifies the request as one-way or round-trip
type TripType string

// Trip types
const (
	OneWay    TripType = "one-way"
	RoundTrip TripType = "round-trip"
)

// Confidence carries per-slot extraction confidence
type Confidence struct {
	Origin      float64 `json:"origin"`
	Destination float64 `json:"destination"`
	Dates       float64 `json:"dates"`
}

// Unresolved carries connector captures that missed the gazetteer, for an
// optional external geocoding pass. Not part of the wire output
type Unresolved struct {
	Origin      string
	Destination string
}

// ParsedTravelRequest is the immutable parse outcome
type ParsedTravelRequest struct {
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	ReturnDate    string `json:"return_date,omitempty"`

	Passengers  passengers.Counts `json:"passengers"`
	TripType    TripType          `json:"trip_type"`
	Preferences prefs.Prefs       `json:"preferences"`
	Stay        stay.Details      `json:"stay"`

	Language           lang.Code `json:"language"`
	LanguageConfidence float64   `json:"language_confidence"`

	Confidence Confidence `json:"confidence"`

	Unresolved Unresolved `json:"-"`
}

// Option configures a Parser
type Option func(*Parser)

// WithClock overrides the time source used for year inference on
// month/day-only dates
func WithClock(c ptime.Clock) Option {
	return func(p *Parser) { p.now = c }
}

// Parser orchestrates the extractors. Safe for concurrent use: all state
// is the immutable pack plus stateless extractors
type Parser struct {
	pack  *rulepack.Pack
	lang  *lang.Detector
	dates *dates.Extractor
	locs  *locations.Extractor
	pax   *passengers.Extractor
	prefs *prefs.Extractor
	stay  *stay.Extractor
	now   ptime.Clock
}

// Departure confidence when a date was found, and the discount applied
// when round-trip intent is present but no return date was stated
const (
	datesFoundConfidence    = 0.9
	missingReturnMultiplier = 0.7
)

// New constructs a Parser over the given pack
func New(p *rulepack.Pack, opts ...Option) *Parser {
	ps := &Parser{
		pack:  p,
		lang:  lang.New(p),
		dates: dates.New(p),
		locs:  locations.New(p),
		pax:   passengers.New(p),
		prefs: prefs.New(p),
		stay:  stay.New(p),
		now:   ptime.SystemClock,
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// Languages exposes the language detector for callers that need the full
// detection result (alternates, mixed signal) rather than a parse
func (p *Parser) Languages() *lang.Detector { return p.lang }

// Parse runs every extractor over text and merges the results.
// Deterministic for identical input and never fails; unparseable slots
// simply stay empty
func (p *Parser) Parse(text string) ParsedTravelRequest {
	det := p.lang.Detect(text)
	d := p.dates.Extract(text, p.now())
	loc := p.locs.Extract(text)
	pax := p.pax.Extract(text)
	pref := p.prefs.Extract(text)
	st := p.stay.Extract(text)

	out := ParsedTravelRequest{
		Origin:             loc.Origin,
		Destination:        loc.Destination,
		DepartureDate:      d.Departure,
		ReturnDate:         d.Return,
		Preferences:        pref,
		Stay:               st,
		Language:           det.Language,
		LanguageConfidence: det.Confidence,
		Unresolved: Unresolved{
			Origin:      loc.OriginText,
			Destination: loc.DestinationText,
		},
	}

	// default to a single adult when no passenger language was present
	if pax != nil {
		out.Passengers = *pax
	} else {
		out.Passengers = passengers.Counts{Adults: 1}
	}

	folded := normalize.Fold(text)
	returnIntent := p.pack.ReturnRe.MatchString(folded)
	oneWayMarker := p.pack.OneWayRe.MatchString(folded)

	// an explicit one-way marker wins; otherwise a stated return date or a
	// bare round-trip keyword both count as round-trip intent
	switch {
	case oneWayMarker:
		out.TripType = OneWay
	case d.Return != "" || returnIntent:
		out.TripType = RoundTrip
	default:
		out.TripType = OneWay
	}

	out.Confidence = Confidence{
		Origin:      loc.OriginConfidence,
		Destination: loc.DestinationConfidence,
		Dates:       datesConfidence(d, out.TripType),
	}
	return out
}

// datesConfidence gates on the departure date (zero without one) and
// discounts when round-trip intent implies a return date that was never
// stated
func datesConfidence(d dates.Dates, trip TripType) float64 {
	if d.Departure == "" {
		return 0
	}
	c := datesFoundConfidence
	if trip == RoundTrip && d.Return == "" {
		c *= missingReturnMultiplier
	}
	return c
}
