// Package stay extracts accommodation details: length of stay, budget
// ceiling, star rating, amenities and trip mood
package stay

import (
	"strconv"

	"tripparse/internal/core/normalize"
	"tripparse/internal/core/rulepack"
)

// Details is always returned as a value object; absent fields stay zero
type Details struct {
	Nights    int      `json:"nights,omitempty"`
	BudgetMax int      `json:"budget_max,omitempty"`
	Stars     int      `json:"stars,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Mood      string   `json:"mood,omitempty"`
}

// Extractor matches stay vocabulary
type Extractor struct {
	p *rulepack.Pack
}

// New constructs an Extractor over the given pack
func New(p *rulepack.Pack) *Extractor {
	return &Extractor{p: p}
}

// Extract scans for stay signals. Amenities accumulate in pack order; the
// first matching mood wins
func (e *Extractor) Extract(text string) Details {
	folded := normalize.Fold(text)
	if folded == "" {
		return Details{}
	}

	var out Details

	if m := e.p.NightsRe.FindStringSubmatch(folded); m != nil {
		out.Nights, _ = strconv.Atoi(m[1])
	}
	for _, re := range e.p.BudgetRes {
		if m := re.FindStringSubmatch(folded); m != nil {
			out.BudgetMax, _ = strconv.Atoi(m[1])
			break
		}
	}
	if m := e.p.StarsRe.FindStringSubmatch(folded); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 5 {
			out.Stars = n
		}
	}
	for _, a := range e.p.Amenities {
		if a.Re.MatchString(folded) {
			out.Amenities = append(out.Amenities, a.ID)
		}
	}
	for _, m := range e.p.Moods {
		if m.Re.MatchString(folded) {
			out.Mood = m.ID
			break
		}
	}
	return out
}
