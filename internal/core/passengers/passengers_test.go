package passengers

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
		want *Counts
	}{
		{"no passenger language", "just me", nil},
		{"empty", "", nil},
		{"adults and child", "2 adults 1 child", &Counts{Adults: 2, Children: 1}},
		{"children only defaults adults", "traveling with 2 kids", &Counts{Adults: 1, Children: 2}},
		{"infant", "1 adult and 1 baby", &Counts{Adults: 1, Infants: 1}},
		{"full set", "3 adults, 2 children and 1 infant", &Counts{Adults: 3, Children: 2, Infants: 1}},
		{"spanish", "para 2 adultos y 1 niño", &Counts{Adults: 2, Children: 1}},
		{"portuguese", "2 adultos e 1 criança", &Counts{Adults: 2, Children: 1}},
		{"passenger noun", "4 passengers", &Counts{Adults: 4}},
		{"people noun", "5 people going", &Counts{Adults: 5}},
		{"zero adults clamps to one", "0 adults", &Counts{Adults: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := e.Extract(c.in)
			if c.want == nil {
				if got != nil {
					t.Fatalf("Extract(%q) = %+v, want nil", c.in, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Extract(%q) = nil, want %+v", c.in, c.want)
			}
			if *got != *c.want {
				t.Fatalf("Extract(%q) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}
