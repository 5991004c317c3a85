// Package rulepack loads and compiles the extraction rules from the embedded rules.json.
// It prepares the language pattern sets, the gazetteer index and the vocabulary
// regexes the extractors evaluate. A compiled Pack is immutable and safe for
// concurrent use
package rulepack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"tripparse/internal/core/normalize"
)

//go:embed rules.json
var embedded []byte

type rawLang struct {
	Keywords []string `json:"keywords"`
	Question []string `json:"question"`
	Verb     []string `json:"verb"`
	Distinct []string `json:"distinct,omitempty"`
	Accents  string   `json:"accents,omitempty"`
	Strong   string   `json:"strong,omitempty"`
}

type rawPlace struct {
	City    string   `json:"city"`
	Country string   `json:"country"`
	Codes   []string `json:"codes"`
	Aliases []string `json:"aliases"`
}

type rawCabin struct {
	Class string   `json:"class"`
	Terms []string `json:"terms"`
}

type rawVocab struct {
	ID    string   `json:"id"`
	Terms []string `json:"terms"`
}

type rawConnector struct {
	Pattern string `json:"pattern"`
	Loose   bool   `json:"loose,omitempty"`
}

type rawPack struct {
	Version   int                 `json:"version"`
	Meta      map[string]any      `json:"meta"`
	Languages map[string]rawLang  `json:"languages"`
	Quick     map[string][]string `json:"quick"`
	Months    map[string]int      `json:"months"`
	Gazetteer []rawPlace          `json:"gazetteer"`
	Connect   []rawConnector      `json:"connectors"`
	Trip      struct {
		Return []string `json:"return"`
		OneWay []string `json:"one_way"`
	} `json:"trip"`
	Passengers struct {
		Adult  []string `json:"adult"`
		Child  []string `json:"child"`
		Infant []string `json:"infant"`
	} `json:"passengers"`
	Preferences struct {
		Direct []string   `json:"direct"`
		Bags   []string   `json:"bags"`
		Cabin  []rawCabin `json:"cabin"`
	} `json:"preferences"`
	Stay struct {
		Night      []string   `json:"night"`
		Star       []string   `json:"star"`
		BudgetLead []string   `json:"budget_lead"`
		Amenities  []rawVocab `json:"amenities"`
		Moods      []rawVocab `json:"moods"`
	} `json:"stay"`
}

// LangRules is the compiled pattern set for one language.
// Keywords/Question/Verb/Distinct match against folded text; Accents and
// Strong are character classes evaluated against the raw input because
// folding strips exactly the diacritics they look for
type LangRules struct {
	Keywords []*regexp.Regexp // one whole-word regex per keyword
	Question *regexp.Regexp
	Verb     *regexp.Regexp
	Distinct *regexp.Regexp // nil unless the language defines distinct words
	Accents  *regexp.Regexp // nil for languages without a diacritic signal
	Strong   *regexp.Regexp // nil unless exclusive characters exist
}

// Place is one gazetteer record. A Place is reachable under many index
// keys (folded canonical name, aliases, IATA/metro codes)
type Place struct {
	City    string
	Country string
	Codes   []string
}

// DateRule is one compiled date surface pattern
type DateRule struct {
	Kind string // "month_day" | "slash" | "iso" | "day_month"
	Re   *regexp.Regexp
}

// CabinRule maps cabin-class vocabulary to its canonical class name
type CabinRule struct {
	Class string
	Re    *regexp.Regexp
}

// VocabRule is a generic id + term-set rule (amenities, moods)
type VocabRule struct {
	ID string
	Re *regexp.Regexp
}

// ConnectorRule is one origin/destination linking pattern with exactly two
// capture groups. Loose patterns capture arbitrary clauses, so their misses
// are not worth surfacing to a geocoder
type ConnectorRule struct {
	Re    *regexp.Regexp
	Loose bool
}

// Pack is the compiled rule pack shared by every extractor
type Pack struct {
	Version int
	Meta    map[string]any

	Languages map[string]*LangRules
	Priority  []string // deterministic tie-break order

	Quick map[string]*regexp.Regexp

	Months    map[string]int
	DateRules []DateRule

	Places []*Place
	index  map[string]*Place
	NameRe *regexp.Regexp // case-insensitive scan over names and aliases
	CodeRe *regexp.Regexp // uppercase IATA code scan

	Connectors []ConnectorRule

	ReturnRe *regexp.Regexp
	OneWayRe *regexp.Regexp

	AdultRe  *regexp.Regexp
	ChildRe  *regexp.Regexp
	InfantRe *regexp.Regexp

	DirectRe *regexp.Regexp
	BagsRe   *regexp.Regexp
	Cabins   []CabinRule

	NightsRe  *regexp.Regexp
	StarsRe   *regexp.Regexp
	BudgetRes []*regexp.Regexp
	Amenities []VocabRule
	Moods     []VocabRule
}

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) {
	return Compile(embedded)
}

// Compile builds a Pack from raw rules.json bytes. Tests use it with
// miniature rule sets
func Compile(data []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(data, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("rulepack: unsupported rules.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version:   rp.Version,
		Meta:      rp.Meta,
		Languages: make(map[string]*LangRules, len(rp.Languages)),
		Priority:  []string{"en", "es", "pt"},
		Quick:     make(map[string]*regexp.Regexp, len(rp.Quick)),
		Months:    make(map[string]int, len(rp.Months)),
		index:     make(map[string]*Place, 4*len(rp.Gazetteer)),
	}

	for code, rl := range rp.Languages {
		cl, err := compileLang(rl)
		if err != nil {
			return nil, fmt.Errorf("rulepack: language %q: %w", code, err)
		}
		p.Languages[code] = cl
	}

	for code, terms := range rp.Quick {
		re, err := wordAlt(terms)
		if err != nil {
			return nil, fmt.Errorf("rulepack: quick %q: %w", code, err)
		}
		p.Quick[code] = re
	}

	for name, num := range rp.Months {
		key := normalize.Key(name)
		if key == "" || num < 1 || num > 12 {
			return nil, fmt.Errorf("rulepack: bad month entry %q=%d", name, num)
		}
		p.Months[key] = num
	}
	if err := p.compileDateRules(); err != nil {
		return nil, err
	}

	if err := p.buildGazetteer(rp.Gazetteer); err != nil {
		return nil, err
	}

	for _, c := range rp.Connect {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rulepack: connector %q: %w", c.Pattern, err)
		}
		if re.NumSubexp() != 2 {
			return nil, fmt.Errorf("rulepack: connector %q needs exactly 2 groups", c.Pattern)
		}
		p.Connectors = append(p.Connectors, ConnectorRule{Re: re, Loose: c.Loose})
	}

	var err error
	if p.ReturnRe, err = wordAlt(rp.Trip.Return); err != nil {
		return nil, fmt.Errorf("rulepack: trip.return: %w", err)
	}
	if p.OneWayRe, err = wordAlt(rp.Trip.OneWay); err != nil {
		return nil, fmt.Errorf("rulepack: trip.one_way: %w", err)
	}

	if p.AdultRe, err = countAlt(rp.Passengers.Adult); err != nil {
		return nil, fmt.Errorf("rulepack: passengers.adult: %w", err)
	}
	if p.ChildRe, err = countAlt(rp.Passengers.Child); err != nil {
		return nil, fmt.Errorf("rulepack: passengers.child: %w", err)
	}
	if p.InfantRe, err = countAlt(rp.Passengers.Infant); err != nil {
		return nil, fmt.Errorf("rulepack: passengers.infant: %w", err)
	}

	if p.DirectRe, err = wordAlt(rp.Preferences.Direct); err != nil {
		return nil, fmt.Errorf("rulepack: preferences.direct: %w", err)
	}
	if p.BagsRe, err = wordAlt(rp.Preferences.Bags); err != nil {
		return nil, fmt.Errorf("rulepack: preferences.bags: %w", err)
	}
	for _, c := range rp.Preferences.Cabin {
		re, err := wordAlt(c.Terms)
		if err != nil {
			return nil, fmt.Errorf("rulepack: cabin %q: %w", c.Class, err)
		}
		p.Cabins = append(p.Cabins, CabinRule{Class: c.Class, Re: re})
	}

	if p.NightsRe, err = countAlt(rp.Stay.Night); err != nil {
		return nil, fmt.Errorf("rulepack: stay.night: %w", err)
	}
	if p.StarsRe, err = countAlt(rp.Stay.Star); err != nil {
		return nil, fmt.Errorf("rulepack: stay.star: %w", err)
	}
	if err := p.compileBudget(rp.Stay.BudgetLead); err != nil {
		return nil, err
	}
	for _, v := range rp.Stay.Amenities {
		re, err := wordAlt(v.Terms)
		if err != nil {
			return nil, fmt.Errorf("rulepack: amenity %q: %w", v.ID, err)
		}
		p.Amenities = append(p.Amenities, VocabRule{ID: v.ID, Re: re})
	}
	for _, v := range rp.Stay.Moods {
		re, err := wordAlt(v.Terms)
		if err != nil {
			return nil, fmt.Errorf("rulepack: mood %q: %w", v.ID, err)
		}
		p.Moods = append(p.Moods, VocabRule{ID: v.ID, Re: re})
	}

	return p, nil
}

// Lookup resolves a free-text capture to a gazetteer record via the
// folded key index (names, aliases and codes). Returns nil on miss
func (p *Pack) Lookup(s string) *Place {
	key := normalize.Key(s)
	if key == "" {
		return nil
	}
	return p.index[key]
}

// LookupCode resolves an IATA/metro code capture. Codes share the same
// folded index, the separate entry point just documents intent at call sites
func (p *Pack) LookupCode(code string) *Place {
	if len(code) != 3 {
		return nil
	}
	return p.index[strings.ToLower(code)]
}

func compileLang(rl rawLang) (*LangRules, error) {
	cl := &LangRules{}
	for _, kw := range rl.Keywords {
		re, err := wordAlt([]string{kw})
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", kw, err)
		}
		cl.Keywords = append(cl.Keywords, re)
	}
	var err error
	if cl.Question, err = wordAlt(rl.Question); err != nil {
		return nil, fmt.Errorf("question: %w", err)
	}
	if cl.Verb, err = wordAlt(rl.Verb); err != nil {
		return nil, fmt.Errorf("verb: %w", err)
	}
	if len(rl.Distinct) > 0 {
		if cl.Distinct, err = wordAlt(rl.Distinct); err != nil {
			return nil, fmt.Errorf("distinct: %w", err)
		}
	}
	if rl.Accents != "" {
		if cl.Accents, err = regexp.Compile(rl.Accents); err != nil {
			return nil, fmt.Errorf("accents: %w", err)
		}
	}
	if rl.Strong != "" {
		if cl.Strong, err = regexp.Compile(rl.Strong); err != nil {
			return nil, fmt.Errorf("strong: %w", err)
		}
	}
	return cl, nil
}

func (p *Pack) buildGazetteer(in []rawPlace) error {
	nameKeys := make([]string, 0, 4*len(in))
	for _, rp := range in {
		pl := &Place{City: rp.City, Country: rp.Country, Codes: rp.Codes}
		p.Places = append(p.Places, pl)

		keys := []string{rp.City}
		keys = append(keys, rp.Aliases...)
		for _, k := range keys {
			key := normalize.Key(k)
			if key == "" {
				continue
			}
			if prev, ok := p.index[key]; ok && prev != pl {
				return fmt.Errorf("rulepack: gazetteer key %q claimed by both %q and %q", key, prev.City, pl.City)
			}
			p.index[key] = pl
			nameKeys = append(nameKeys, key)
		}
		for _, c := range rp.Codes {
			key := strings.ToLower(strings.TrimSpace(c))
			if key == "" {
				continue
			}
			if prev, ok := p.index[key]; ok && prev != pl {
				return fmt.Errorf("rulepack: gazetteer code %q claimed by both %q and %q", key, prev.City, pl.City)
			}
			p.index[key] = pl
		}
	}

	// Longest keys first so "new york" beats any shorter alternative at
	// the same offset (alternation is leftmost-first)
	sort.Slice(nameKeys, func(i, j int) bool {
		if len(nameKeys[i]) != len(nameKeys[j]) {
			return len(nameKeys[i]) > len(nameKeys[j])
		}
		return nameKeys[i] < nameKeys[j]
	})
	quoted := make([]string, 0, len(nameKeys))
	seen := make(map[string]struct{}, len(nameKeys))
	for _, k := range nameKeys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		quoted = append(quoted, regexp.QuoteMeta(k))
	}
	// case-insensitive so names and codes can scan the same mark-stripped
	// rendition of the input and report comparable offsets
	var err error
	p.NameRe, err = regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return fmt.Errorf("rulepack: gazetteer scan regex: %w", err)
	}

	// Codes are scanned uppercase-only; a case-folded scan would turn
	// common words (sin, mad, las) into airport hits
	p.CodeRe = regexp.MustCompile(`\b[A-Z]{3}\b`)
	return nil
}

func (p *Pack) compileDateRules() error {
	names := make([]string, 0, len(p.Months))
	for n := range p.Months {
		names = append(names, n)
	}
	// longest first for leftmost-first alternation ("september" before "sep")
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for i, n := range names {
		names[i] = regexp.QuoteMeta(n)
	}
	monthAlt := strings.Join(names, "|")

	rules := []struct{ kind, pat string }{
		{"month_day", `\b(` + monthAlt + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`},
		{"slash", `\b(\d{1,2})/(\d{1,2})\b`},
		{"iso", `\b(\d{4})-(\d{1,2})-(\d{1,2})\b`},
		{"day_month", `\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:de\s+)?(` + monthAlt + `)\b`},
	}
	for _, r := range rules {
		re, err := regexp.Compile(r.pat)
		if err != nil {
			return fmt.Errorf("rulepack: date rule %q: %w", r.kind, err)
		}
		p.DateRules = append(p.DateRules, DateRule{Kind: r.kind, Re: re})
	}
	return nil
}

func (p *Pack) compileBudget(leads []string) error {
	quoted := make([]string, 0, len(leads))
	for _, l := range leads {
		l = normalize.Fold(l)
		if l == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(l))
	}
	sort.Slice(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })

	pats := []string{
		`\b(?:` + strings.Join(quoted, "|") + `)\s*\$?\s*(\d{2,6})\b`,
		`\$\s*(\d{2,6})\b`,
		`\b(\d{2,6})\s*(?:usd|dollars|dolares|reais|euros)\b`,
	}
	for _, pat := range pats {
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("rulepack: budget pattern %q: %w", pat, err)
		}
		p.BudgetRes = append(p.BudgetRes, re)
	}
	return nil
}

// wordAlt compiles a whole-word alternation over folded terms.
// Longer terms sort first so multi-word phrases win at a shared prefix
func wordAlt(terms []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = normalize.Fold(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		quoted = append(quoted, t)
	}
	if len(quoted) == 0 {
		return nil, fmt.Errorf("empty term list")
	}
	sort.Slice(quoted, func(i, j int) bool {
		if len(quoted[i]) != len(quoted[j]) {
			return len(quoted[i]) > len(quoted[j])
		}
		return quoted[i] < quoted[j]
	})
	for i, t := range quoted {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// countAlt compiles "<number> <noun>" over the noun list, capturing the count
func countAlt(terms []string) (*regexp.Regexp, error) {
	inner, err := wordAlt(terms)
	if err != nil {
		return nil, err
	}
	return regexp.Compile(`\b(\d+)\s*` + inner.String())
}
