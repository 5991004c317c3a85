// Package normalize provides the deterministic text folder used by the extractors
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFD decomposition
// 3 Case folding
// 4 Strip combining marks and format chars
// 5 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFD,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks (accents, tildes, cedillas)
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
		)
	},
}

// same pipeline minus case folding, for scans that must preserve case
var stripPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
		)
	},
}

// Fold returns the accent-insensitive lowercase form of s.
// "São Paulo" and "sao   paulo" fold to the same string, which makes
// gazetteer keys and keyword matches diacritic-proof. Punctuation is kept
func Fold(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// Strip is Fold without the case folding: accents and format chars are
// removed and whitespace collapsed, but "MIA" stays "MIA". Scans that mix
// case-sensitive and case-insensitive patterns run on this rendition so
// every match reports offsets into the same string
func Strip(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := stripPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	stripPool.Put(tr)

	return collapseSpaces(ns)
}

// Key folds s into a lookup key: folded form with punctuation dropped,
// suitable for exact-match table keys ("St. Louis" -> "st louis")
func Key(s string) string {
	f := Fold(s)
	if f == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(f))
	for _, r := range f {
		switch {
		case r == '\'' || r == '.':
			// drop
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-':
			b.WriteRune(r)
		}
	}
	return collapseSpaces(b.String())
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
