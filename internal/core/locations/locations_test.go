package locations

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

func TestExtract_ConnectorPhrase(t *testing.T) {
	e := mustExtractor(t)
	got := e.Extract("flights from Miami to Sao Paulo")
	if got.Origin != "Miami" || got.Destination != "São Paulo" {
		t.Fatalf("got %q -> %q", got.Origin, got.Destination)
	}
	if got.OriginConfidence < 0.85 || got.DestinationConfidence < 0.85 {
		t.Fatalf("connector confidence too low: %+v", got)
	}
}

func TestExtract_ConnectorWithCodes(t *testing.T) {
	e := mustExtractor(t)
	got := e.Extract("from NYC to GRU nov 15 to nov 22, 2 adults, direct flights")
	if got.Origin != "New York" {
		t.Fatalf("origin = %q, want New York", got.Origin)
	}
	if got.Destination != "São Paulo" {
		t.Fatalf("destination = %q, want São Paulo", got.Destination)
	}
}

func TestExtract_CodePair(t *testing.T) {
	e := mustExtractor(t)
	got := e.Extract("looking at MIA-GIG next month")
	if got.Origin != "Miami" || got.Destination != "Rio de Janeiro" {
		t.Fatalf("got %q -> %q", got.Origin, got.Destination)
	}
}

func TestExtract_ScanOrdering(t *testing.T) {
	e := mustExtractor(t)
	got := e.Extract("thinking about Tokyo and Singapore for my trip")
	if got.Origin != "Tokyo" || got.Destination != "Singapore" {
		t.Fatalf("got %q -> %q, want Tokyo -> Singapore", got.Origin, got.Destination)
	}
	if got.OriginConfidence != 0.7 || got.DestinationConfidence != 0.7 {
		t.Fatalf("scan confidence: %+v", got)
	}
}

func TestExtract_SingleCityIsDestination(t *testing.T) {
	e := mustExtractor(t)
	got := e.Extract("I want to go to Dubai")
	if got.Origin != "" {
		t.Fatalf("origin = %q, want empty", got.Origin)
	}
	if got.Destination != "Dubai" {
		t.Fatalf("destination = %q, want Dubai", got.Destination)
	}
	if got.DestinationConfidence != 0.6 {
		t.Fatalf("single-hit confidence = %v, want 0.6", got.DestinationConfidence)
	}
}

func TestExtract_DiacriticInsensitive(t *testing.T) {
	e := mustExtractor(t)
	for _, in := range []string{
		"vuelos de Madrid a São Paulo",
		"vuelos de Madrid a sao paulo",
	} {
		got := e.Extract(in)
		if got.Origin != "Madrid" || got.Destination != "São Paulo" {
			t.Fatalf("Extract(%q) = %q -> %q", in, got.Origin, got.Destination)
		}
	}
}

func TestExtract_LowercaseCodeWordsIgnoredByScan(t *testing.T) {
	e := mustExtractor(t)
	// "sin" is the SIN metro code but also a spanish preposition; without
	// uppercase it must not become a location
	got := e.Extract("quiero un vuelo sin escalas")
	if got.Origin != "" || got.Destination != "" {
		t.Fatalf("sin escalas produced a location: %+v", got)
	}
}

func TestExtract_UppercaseCodeScan(t *testing.T) {
	e := mustExtractor(t)
	got := e.Extract("is GIG busy this week")
	if got.Destination != "Rio de Janeiro" || got.Origin != "" {
		t.Fatalf("got %+v", got)
	}
}

func TestExtract_AccentedTextBeforeCodeKeepsScanOrder(t *testing.T) {
	e := mustExtractor(t)
	// multi-byte accents ahead of the code shrink under folding; name and
	// code offsets must still come from the same rendition or the later
	// city sorts ahead of the earlier code
	got := e.Extract("¿Cuál será la máxima duración del viaje más barato? MIA Tokyo")
	if got.Origin != "Miami" {
		t.Fatalf("origin = %q, want Miami (%+v)", got.Origin, got)
	}
	if got.Destination != "Tokyo" {
		t.Fatalf("destination = %q, want Tokyo", got.Destination)
	}
	if got.OriginConfidence != 0.7 || got.DestinationConfidence != 0.7 {
		t.Fatalf("scan pair confidence: %+v", got)
	}
}

func TestExtract_UnresolvedCaptureSurfaced(t *testing.T) {
	e := mustExtractor(t)
	got := e.Extract("from Springfield to Miami")
	if got.Destination != "Miami" || got.DestinationConfidence != 0.9 {
		t.Fatalf("destination: %+v", got)
	}
	if got.Origin != "" {
		t.Fatalf("origin resolved unexpectedly: %q", got.Origin)
	}
	if got.OriginText != "springfield" {
		t.Fatalf("unresolved origin capture = %q, want springfield", got.OriginText)
	}
}

func TestExtract_NothingFound(t *testing.T) {
	e := mustExtractor(t)
	got := e.Extract("any nice beach somewhere warm")
	if got != (Locations{}) {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
