// Package lang implements rule-based language detection for travel queries.
// Supported languages are English, Spanish and Portuguese; everything else
// scores low across the board and falls through to the English default
package lang

import (
	"sort"
	"strings"

	"tripparse/internal/core/normalize"
	"tripparse/internal/core/rulepack"
)

// Code is a supported language code
type Code string

// Supported languages. Default and tie-break priority is EN > ES > PT
const (
	EN Code = "en"
	ES Code = "es"
	PT Code = "pt"
)

// Signal weights. A language's maximum attainable score is the sum of the
// weights its rule set can trigger, so the denominator tracks the rule set
// mechanically: en = 40+20+20 = 80, es = +accents+strong = 105,
// pt = +accents+strong+distinct = 115
const (
	weightKeywords = 40.0
	weightQuestion = 20.0
	weightVerb     = 20.0
	weightAccents  = 15.0
	bonusStrong    = 10.0
	weightDistinct = 10.0
)

// mixedThreshold is the alternate confidence above which input is
// considered bilingual/ambiguous
const mixedThreshold = 0.4

// historyWindow bounds how many trailing messages FromHistory considers
const historyWindow = 5

// Score is one ranked language candidate
type Score struct {
	Language   Code    `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Result is the outcome of a full detection pass. Alternates holds every
// non-winning language ranked by descending confidence
type Result struct {
	Language   Code    `json:"language"`
	Confidence float64 `json:"confidence"`
	Alternates []Score `json:"alternates,omitempty"`
}

// Detector scores text against each language's compiled pattern set
type Detector struct {
	p *rulepack.Pack
}

// New constructs a Detector over the given pack
func New(p *rulepack.Pack) *Detector {
	return &Detector{p: p}
}

// Detect scores text against every supported language and returns the
// winner plus ranked alternates. It never fails; empty or whitespace-only
// input returns the documented English default with confidence 1
func (d *Detector) Detect(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Language: EN, Confidence: 1}
	}

	folded := normalize.Fold(text)

	scores := make([]Score, 0, len(d.p.Priority))
	for _, code := range d.p.Priority {
		rl := d.p.Languages[code]
		if rl == nil {
			continue
		}
		scores = append(scores, Score{
			Language:   Code(code),
			Confidence: scoreLanguage(rl, text, folded),
		})
	}

	// rank descending, ties broken by pack priority order (already the
	// iteration order, and the sort is stable)
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Confidence > scores[j].Confidence
	})

	return Result{
		Language:   scores[0].Language,
		Confidence: scores[0].Confidence,
		Alternates: scores[1:],
	}
}

// DetectQuick is a cheap trigger-word check for very short strings
// (greetings, single words). It may disagree with Detect on edge cases;
// unknown input falls back to English
func (d *Detector) DetectQuick(text string) Code {
	folded := normalize.Fold(text)
	if folded == "" {
		return EN
	}
	for _, code := range d.p.Priority {
		re := d.p.Quick[code]
		if re != nil && re.MatchString(folded) {
			return Code(code)
		}
	}
	return EN
}

// IsMixedLanguage reports whether the input looks bilingual: the top
// alternate scores above the mixed threshold
func (d *Detector) IsMixedLanguage(text string) bool {
	r := d.Detect(text)
	return len(r.Alternates) > 0 && r.Alternates[0].Confidence > mixedThreshold
}

// FromHistory keeps a conversation's language stable across turns: it runs
// DetectQuick over the last messages and returns the majority language.
// Ties resolve in pack priority order; no messages returns def
func (d *Detector) FromHistory(messages []string, def Code) Code {
	if len(messages) == 0 {
		return def
	}
	if len(messages) > historyWindow {
		messages = messages[len(messages)-historyWindow:]
	}

	counts := make(map[Code]int, 3)
	for _, m := range messages {
		counts[d.DetectQuick(m)]++
	}

	best := def
	bestN := 0
	for _, code := range d.p.Priority {
		if n := counts[Code(code)]; n > bestN {
			best = Code(code)
			bestN = n
		}
	}
	return best
}

// scoreLanguage sums the weighted signals and normalizes by the rule set's
// maximum attainable score. Keyword/question/verb/distinct signals run on
// folded text; the diacritic classes run on the raw input
func scoreLanguage(rl *rulepack.LangRules, raw, folded string) float64 {
	var score, max float64

	if n := len(rl.Keywords); n > 0 {
		matched := 0
		for _, re := range rl.Keywords {
			if re.MatchString(folded) {
				matched++
			}
		}
		score += weightKeywords * float64(matched) / float64(n)
		max += weightKeywords
	}

	if rl.Question != nil {
		if rl.Question.MatchString(folded) {
			score += weightQuestion
		}
		max += weightQuestion
	}
	if rl.Verb != nil {
		if rl.Verb.MatchString(folded) {
			score += weightVerb
		}
		max += weightVerb
	}
	if rl.Accents != nil {
		if rl.Accents.MatchString(raw) {
			score += weightAccents
		}
		max += weightAccents
	}
	if rl.Strong != nil {
		if rl.Strong.MatchString(raw) {
			score += bonusStrong
		}
		max += bonusStrong
	}
	if rl.Distinct != nil {
		if rl.Distinct.MatchString(folded) {
			score += weightDistinct
		}
		max += weightDistinct
	}

	if max == 0 {
		return 0
	}
	return score / max
}
