// Package passengers extracts adult/child/infant counts from free text
package passengers

import (
	"regexp"
	"strconv"

	"tripparse/internal/core/normalize"
	"tripparse/internal/core/rulepack"
)

// Counts holds extracted passenger numbers
type Counts struct {
	Adults   int `json:"adults"`
	Children int `json:"children,omitempty"`
	Infants  int `json:"infants,omitempty"`
}

// Extractor finds numeric passenger mentions
type Extractor struct {
	p *rulepack.Pack
}

// New constructs an Extractor over the given pack
func New(p *rulepack.Pack) *Extractor {
	return &Extractor{p: p}
}

// Extract returns nil when the text contains no passenger-count language at
// all, letting the caller apply its own default explicitly. When any count
// is present, adults default to 1 unless stated
func (e *Extractor) Extract(text string) *Counts {
	folded := normalize.Fold(text)
	if folded == "" {
		return nil
	}

	adults := firstCount(e.p.AdultRe, folded)
	children := firstCount(e.p.ChildRe, folded)
	infants := firstCount(e.p.InfantRe, folded)

	if adults < 0 && children < 0 && infants < 0 {
		return nil
	}

	out := &Counts{Adults: 1}
	if adults >= 0 {
		out.Adults = adults
	}
	if children > 0 {
		out.Children = children
	}
	if infants > 0 {
		out.Infants = infants
	}
	if out.Adults < 1 {
		out.Adults = 1
	}
	return out
}

// firstCount returns the first captured count or -1 when the pattern is absent
func firstCount(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}
