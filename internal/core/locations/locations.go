// Package locations extracts origin and destination cities from free text.
// Connector phrases ("from X to Y") are tried first; unresolved slots fall
// back to a gazetteer scan ordered by textual position
package locations

import (
	"sort"
	"strings"

	"tripparse/internal/core/normalize"
	"tripparse/internal/core/rulepack"
)

// Confidence levels per resolution stage
const (
	confConnector  = 0.9
	confScanPair   = 0.7
	confScanSingle = 0.6
)

// maxLookupWords caps how many words of a connector capture are tried
// against the gazetteer
const maxLookupWords = 4

// Locations is the extraction outcome. Empty Origin/Destination with zero
// confidence means "not found", which is a normal result, not an error.
// OriginText/DestinationText carry connector captures that missed the
// gazetteer so a caller may hand them to an external geocoder
type Locations struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`

	OriginConfidence      float64 `json:"origin_confidence"`
	DestinationConfidence float64 `json:"destination_confidence"`

	OriginText      string `json:"-"`
	DestinationText string `json:"-"`
}

// Extractor resolves location mentions against the pack's gazetteer
type Extractor struct {
	p *rulepack.Pack
}

// New constructs an Extractor over the given pack
func New(p *rulepack.Pack) *Extractor {
	return &Extractor{p: p}
}

// Extract runs the connector stage and then the positional gazetteer scan
// for any slot the connectors left unresolved
func (e *Extractor) Extract(text string) Locations {
	folded := normalize.Fold(text)
	if folded == "" {
		return Locations{}
	}

	var out Locations
	e.connectors(folded, &out)
	e.scan(normalize.Strip(text), &out)
	return out
}

// connectors tries each linking pattern in order; the first one that
// matches claims the text. Each capture resolves independently, so one
// resolved slot at connector confidence can coexist with a fallback fill
// on the other
func (e *Extractor) connectors(folded string, out *Locations) {
	for _, rule := range e.p.Connectors {
		m := rule.Re.FindStringSubmatch(folded)
		if m == nil {
			continue
		}

		if pl, miss := e.resolveCapture(m[1], true); pl != nil {
			out.Origin = pl.City
			out.OriginConfidence = confConnector
		} else if !rule.Loose {
			out.OriginText = miss
		}
		if pl, miss := e.resolveCapture(m[2], false); pl != nil {
			out.Destination = pl.City
			out.DestinationConfidence = confConnector
		} else if !rule.Loose {
			out.DestinationText = miss
		}
		return
	}
}

// resolveCapture looks a capture up in the gazetteer, retrying on word
// windows from longest to shortest. Origin captures sit left of the
// connector so their windows anchor at the tail; destination captures
// anchor at the head. On a miss it returns the widest window as the
// geocoder candidate
func (e *Extractor) resolveCapture(capture string, tail bool) (*rulepack.Place, string) {
	words := strings.Fields(capture)
	n := len(words)
	if n == 0 {
		return nil, ""
	}
	w := n
	if w > maxLookupWords {
		w = maxLookupWords
	}

	widest := ""
	for k := w; k >= 1; k-- {
		var window string
		if tail {
			window = strings.Join(words[n-k:], " ")
		} else {
			window = strings.Join(words[:k], " ")
		}
		if widest == "" {
			widest = window
		}
		if pl := e.p.Lookup(window); pl != nil {
			return pl, ""
		}
	}
	return nil, widest
}

// hit is one gazetteer mention with its text offset
type hit struct {
	place *rulepack.Place
	start int
}

// scan fills unresolved slots from whole-word gazetteer mentions ordered by
// position. With both slots open, two cities read as origin then
// destination; a single city reads as destination only, matching how
// people phrase "flights to X".
// Both patterns run over the same mark-stripped rendition so name and code
// offsets are comparable; case folding would shift offsets and lose the
// uppercase signal the code scan depends on
func (e *Extractor) scan(stripped string, out *Locations) {
	if out.Origin != "" && out.Destination != "" {
		return
	}

	var hits []hit
	for _, m := range e.p.NameRe.FindAllStringIndex(stripped, -1) {
		if pl := e.p.Lookup(stripped[m[0]:m[1]]); pl != nil {
			hits = append(hits, hit{place: pl, start: m[0]})
		}
	}
	// IATA codes count only when written uppercase; case-folded scanning
	// would read words like "sin" or "mad" as airports
	for _, m := range e.p.CodeRe.FindAllStringIndex(stripped, -1) {
		if pl := e.p.LookupCode(stripped[m[0]:m[1]]); pl != nil {
			hits = append(hits, hit{place: pl, start: m[0]})
		}
	}
	if len(hits) == 0 {
		return
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	// distinct cities in reading order, skipping ones already claimed
	var cities []string
	seen := map[string]struct{}{}
	if out.Origin != "" {
		seen[out.Origin] = struct{}{}
	}
	if out.Destination != "" {
		seen[out.Destination] = struct{}{}
	}
	for _, h := range hits {
		if _, ok := seen[h.place.City]; ok {
			continue
		}
		seen[h.place.City] = struct{}{}
		cities = append(cities, h.place.City)
	}
	if len(cities) == 0 {
		return
	}

	switch {
	case out.Origin == "" && out.Destination == "":
		if len(cities) >= 2 {
			out.Origin = cities[0]
			out.OriginConfidence = confScanPair
			out.Destination = cities[1]
			out.DestinationConfidence = confScanPair
		} else {
			out.Destination = cities[0]
			out.DestinationConfidence = confScanSingle
		}
	case out.Origin == "":
		out.Origin = cities[0]
		out.OriginConfidence = confScanPair
	default:
		out.Destination = cities[0]
		out.DestinationConfidence = confScanPair
	}
}
