package dates

import (
	"testing"
	"time"

	"tripparse/internal/core/rulepack"
)

var refNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

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
		want Dates
	}{
		{
			"two month-day dates",
			"Leaving November 15 returning November 22",
			Dates{Departure: "2025-11-15", Return: "2025-11-22"},
		},
		{
			"return keyword never invents a date",
			"I want to fly November 15 and then return",
			Dates{Departure: "2025-11-15"},
		},
		{
			"abbreviated months",
			"from NYC to GRU nov 15 to nov 22",
			Dates{Departure: "2025-11-15", Return: "2025-11-22"},
		},
		{
			"ordinal suffix",
			"flying out january 3rd",
			Dates{Departure: "2025-01-03"},
		},
		{
			"slash form",
			"depart 11/15 back 11/22",
			Dates{Departure: "2025-11-15", Return: "2025-11-22"},
		},
		{
			"iso literal trusted verbatim",
			"checkin 2026-07-01 checkout 2026-07-08",
			Dates{Departure: "2026-07-01", Return: "2026-07-08"},
		},
		{
			"day before month, spanish",
			"salida el 15 de noviembre, vuelta el 22 de noviembre",
			Dates{Departure: "2025-11-15", Return: "2025-11-22"},
		},
		{
			"duplicate mentions collapse",
			"november 15, yes 11/15 works",
			Dates{Departure: "2025-11-15"},
		},
		{
			"no dates",
			"flights to tokyo please",
			Dates{},
		},
		{
			"invalid slash month skipped",
			"ratio is 13/45 but fly 11/15",
			Dates{Departure: "2025-11-15"},
		},
		{
			"impossible calendar day skipped",
			"february 31 or march 5",
			Dates{Departure: "2025-03-05"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := e.Extract(c.in, refNow)
			if got != c.want {
				t.Fatalf("Extract(%q) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}

func TestExtract_OrderIsTextual(t *testing.T) {
	e := mustExtractor(t)
	// the later pattern kind (iso) appears first in the text and must win
	// the departure slot over the earlier-kind month-day match
	got := e.Extract("2025-12-01 then december 20", refNow)
	want := Dates{Departure: "2025-12-01", Return: "2025-12-20"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestExtract_NoYearRollover(t *testing.T) {
	e := mustExtractor(t)
	// january is already past relative to refNow; the year stays as-is
	got := e.Extract("flying january 5", refNow)
	if got.Departure != "2025-01-05" {
		t.Fatalf("departure = %q, want 2025-01-05", got.Departure)
	}
}
