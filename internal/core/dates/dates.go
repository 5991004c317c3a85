// Package dates extracts departure and return dates from free-text queries.
// The extractor is pure: the caller supplies the reference time that fills
// in the year for month/day-only mentions
package dates

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"tripparse/internal/core/normalize"
	"tripparse/internal/core/rulepack"
)

// Dates holds the extracted ISO dates. Empty string means not found.
// Return is only ever set when Departure is set
type Dates struct {
	Departure string `json:"departure,omitempty"`
	Return    string `json:"return,omitempty"`
}

// candidate keeps the text offset so assignment follows reading order
type candidate struct {
	iso   string
	start int
}

// Extractor finds date mentions using the pack's surface patterns
type Extractor struct {
	p *rulepack.Pack
}

// New constructs an Extractor over the given pack
func New(p *rulepack.Pack) *Extractor {
	return &Extractor{p: p}
}

// Extract collects every date-like substring across all patterns, orders
// them by position, drops duplicates and assigns first=departure,
// second=return. Month/day mentions take now's year; there is no rollover
// to the next year for dates already past
func (e *Extractor) Extract(text string, now time.Time) Dates {
	folded := normalize.Fold(text)
	if folded == "" {
		return Dates{}
	}

	var cands []candidate
	for _, rule := range e.p.DateRules {
		for _, m := range rule.Re.FindAllStringSubmatchIndex(folded, -1) {
			iso, ok := e.resolve(rule.Kind, folded, m, now)
			if !ok {
				continue
			}
			cands = append(cands, candidate{iso: iso, start: m[0]})
		}
	}
	if len(cands) == 0 {
		return Dates{}
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].start < cands[j].start })

	var out Dates
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		if _, ok := seen[c.iso]; ok {
			continue
		}
		seen[c.iso] = struct{}{}
		switch {
		case out.Departure == "":
			out.Departure = c.iso
		case out.Return == "":
			out.Return = c.iso
		}
		if out.Return != "" {
			break
		}
	}
	return out
}

// resolve turns one pattern match into an ISO date, rejecting impossible
// month/day combinations
func (e *Extractor) resolve(kind, folded string, m []int, now time.Time) (string, bool) {
	group := func(i int) string {
		lo, hi := m[2*i], m[2*i+1]
		if lo < 0 {
			return ""
		}
		return folded[lo:hi]
	}

	var y, mo, d int
	switch kind {
	case "month_day":
		mo = e.p.Months[group(1)]
		d, _ = strconv.Atoi(group(2))
		y = now.Year()
	case "day_month":
		d, _ = strconv.Atoi(group(1))
		mo = e.p.Months[group(2)]
		y = now.Year()
	case "slash":
		mo, _ = strconv.Atoi(group(1))
		d, _ = strconv.Atoi(group(2))
		y = now.Year()
	case "iso":
		y, _ = strconv.Atoi(group(1))
		mo, _ = strconv.Atoi(group(2))
		d, _ = strconv.Atoi(group(3))
	default:
		return "", false
	}

	if mo < 1 || mo > 12 || d < 1 || d > 31 || y < 1 {
		return "", false
	}
	// round-trip through time.Date rejects e.g. February 31
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	if int(t.Month()) != mo || t.Day() != d {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, mo, d), true
}
