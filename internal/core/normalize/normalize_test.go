package normalize

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"Miami", "miami"},
		{"São Paulo", "sao paulo"},
		{"AVIÃO", "aviao"},
		{"açúcar", "acucar"},
		{"  lots   of\tspace \n", "lots of space"},
		{"¿Dónde está?", "¿donde esta?"},
		{"Boa noite, você", "boa noite, voce"},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Fatalf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStrip(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"São Paulo", "Sao Paulo"},
		{"AVIÃO", "AVIAO"},
		{"¿Dónde está? MIA", "¿Donde esta? MIA"},
		{"  lots   of\tspace \n", "lots of space"},
	}
	for _, c := range cases {
		if got := Strip(c.in); got != c.want {
			t.Fatalf("Strip(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"São Paulo", "sao paulo"},
		{"St. Louis", "st louis"},
		{"NEW YORK", "new york"},
		{"Rio de Janeiro ", "rio de janeiro"},
		{"L'Aquila", "laquila"},
		{"GRU", "gru"},
	}
	for _, c := range cases {
		if got := Key(c.in); got != c.want {
			t.Fatalf("Key(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestKeyFoldsAgree(t *testing.T) {
	// accented and plain spellings must land on the same key
	pairs := [][2]string{
		{"São Paulo", "Sao Paulo"},
		{"Bogotá", "Bogota"},
		{"Cancún", "Cancun"},
		{"Tóquio", "Toquio"},
	}
	for _, p := range pairs {
		if Key(p[0]) != Key(p[1]) {
			t.Fatalf("keys differ for %q vs %q: %q vs %q", p[0], p[1], Key(p[0]), Key(p[1]))
		}
	}
}
