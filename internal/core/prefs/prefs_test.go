package prefs

import (
	"testing"

	"tripparse/internal/core/rulepack"
)

func mustExtractor(t *testing.T) *Extractor {
	t.Helper()
	p, err := rulepack.Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	return New(p)
}

func TestExtract(t *testing.T) {
	e := mustExtractor(t)
	cases := []struct {
		name string
		in   string
		want Prefs
	}{
		{"nothing stated", "flights to rome", Prefs{}},
		{"direct", "direct flights please", Prefs{DirectFlights: true}},
		{"nonstop", "nonstop to london", Prefs{DirectFlights: true}},
		{"spanish direct", "vuelo sin escalas", Prefs{DirectFlights: true}},
		{"portuguese direct", "voo sem escalas", Prefs{DirectFlights: true}},
		{"bags", "with checked bags included", Prefs{IncludeBags: true}},
		{"spanish bags", "con equipaje", Prefs{IncludeBags: true}},
		{"economy", "economy class is fine", Prefs{CabinClass: "economy"}},
		{"business", "business class", Prefs{CabinClass: "business"}},
		{"first", "first class only", Prefs{CabinClass: "first"}},
		{"premium economy beats economy", "premium economy please", Prefs{CabinClass: "premium_economy"}},
		{"first beats business mention", "first class, not business", Prefs{CabinClass: "first"}},
		{"combined", "direct flight, business class, bags included",
			Prefs{DirectFlights: true, IncludeBags: true, CabinClass: "business"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := e.Extract(c.in); got != c.want {
				t.Fatalf("Extract(%q) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}
