// Package prefs extracts flight preference flags and cabin class
package prefs

import (
	"tripparse/internal/core/normalize"
	"tripparse/internal/core/rulepack"
)

// Prefs is always returned as a value object; a silent query simply has
// every field at its zero value, since "no preference stated" is common
type Prefs struct {
	DirectFlights bool   `json:"direct_flights"`
	IncludeBags   bool   `json:"include_bags"`
	CabinClass    string `json:"cabin_class,omitempty"`
}

// Extractor matches preference vocabulary
type Extractor struct {
	p *rulepack.Pack
}

// New constructs an Extractor over the given pack
func New(p *rulepack.Pack) *Extractor {
	return &Extractor{p: p}
}

// Extract scans for preference signals. Cabin classes resolve most-specific
// first in pack order (first, business, premium economy, economy)
func (e *Extractor) Extract(text string) Prefs {
	folded := normalize.Fold(text)
	if folded == "" {
		return Prefs{}
	}

	out := Prefs{
		DirectFlights: e.p.DirectRe.MatchString(folded),
		IncludeBags:   e.p.BagsRe.MatchString(folded),
	}
	for _, c := range e.p.Cabins {
		if c.Re.MatchString(folded) {
			out.CabinClass = c.Class
			break
		}
	}
	return out
}
