package rulepack

import "testing"

func TestLoadCompiles(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if p.Version != 1 {
		t.Fatalf("unexpected version %d", p.Version)
	}
	for _, code := range []string{"en", "es", "pt"} {
		rl := p.Languages[code]
		if rl == nil {
			t.Fatalf("language %q missing", code)
		}
		if len(rl.Keywords) == 0 || rl.Question == nil || rl.Verb == nil {
			t.Fatalf("language %q incomplete", code)
		}
		if p.Quick[code] == nil {
			t.Fatalf("quick triggers for %q missing", code)
		}
	}
	if p.Languages["pt"].Distinct == nil {
		t.Fatalf("pt distinct words missing")
	}
	if p.Languages["es"].Strong == nil {
		t.Fatalf("es strong punctuation class missing")
	}
	if len(p.DateRules) != 4 {
		t.Fatalf("want 4 date rules, got %d", len(p.DateRules))
	}
	if len(p.Connectors) == 0 {
		t.Fatalf("no connector patterns")
	}
	if p.ReturnRe == nil || p.OneWayRe == nil {
		t.Fatalf("trip keyword clusters missing")
	}
}

func TestLookupFoldsKeys(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	cases := []struct {
		in   string
		city string
	}{
		{"São Paulo", "São Paulo"},
		{"sao paulo", "São Paulo"},
		{"GRU", "São Paulo"},
		{"gru", "São Paulo"},
		{"NYC", "New York"},
		{"nueva york", "New York"},
		{"Tóquio", "Tokyo"},
		{"CANCUN", "Cancún"},
	}
	for _, c := range cases {
		pl := p.Lookup(c.in)
		if pl == nil {
			t.Fatalf("Lookup(%q) = nil", c.in)
		}
		if pl.City != c.city {
			t.Fatalf("Lookup(%q) = %q, want %q", c.in, pl.City, c.city)
		}
	}
	if p.Lookup("atlantis") != nil {
		t.Fatalf("expected miss for unknown place")
	}
}

func TestMonthsShareNumbersAcrossLanguages(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	for _, c := range []struct {
		name string
		num  int
	}{
		{"november", 11}, {"nov", 11}, {"noviembre", 11}, {"novembro", 11},
		{"march", 3}, {"marzo", 3}, {"marco", 3},
	} {
		if p.Months[c.name] != c.num {
			t.Fatalf("month %q = %d, want %d", c.name, p.Months[c.name], c.num)
		}
	}
}

func TestCompileRejectsBadVersion(t *testing.T) {
	if _, err := Compile([]byte(`{"version": 9}`)); err == nil {
		t.Fatalf("expected version error")
	}
}

func TestNameScanPrefersLongestKey(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	hits := p.NameRe.FindAllString("flights to new york city tomorrow", -1)
	if len(hits) != 1 || hits[0] != "new york city" {
		t.Fatalf("want single hit on longest key, got %v", hits)
	}
}
