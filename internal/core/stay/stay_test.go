package stay

import (
	"reflect"
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
		want Details
	}{
		{"nothing", "flights to rome", Details{}},
		{"nights", "7 nights in lisbon", Details{Nights: 7}},
		{"spanish nights", "5 noches por favor", Details{Nights: 5}},
		{"budget lead", "under $400 total", Details{BudgetMax: 400}},
		{"bare currency", "$250 somewhere sunny", Details{BudgetMax: 250}},
		{"spanish budget", "hasta 300 euros", Details{BudgetMax: 300}},
		{"stars", "4 star hotel", Details{Stars: 4}},
		{"stars out of range ignored", "9 stars", Details{}},
		{"amenities accumulate", "pool and wifi and breakfast",
			Details{Amenities: []string{"pool", "wifi", "breakfast"}}},
		{"mood", "romantic getaway", Details{Mood: "romantic"}},
		{"portuguese", "3 noites, piscina, lua de mel",
			Details{Nights: 3, Amenities: []string{"pool"}, Mood: "romantic"}},
		{"combined", "5 nights under $800, 4 stars, spa, family trip",
			Details{Nights: 5, BudgetMax: 800, Stars: 4, Amenities: []string{"spa"}, Mood: "family"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := e.Extract(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Extract(%q) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}
