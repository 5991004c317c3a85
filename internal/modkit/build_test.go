package modkit_test

import (
	"net/http"
	"testing"

	"tripparse/internal/modkit"
	"tripparse/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := modkit.Build()

	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("expected zero name/prefix, got %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("expected default hooks to be non nil")
	}
	// default register must be a no-op
	b.Register(nil)
}

func TestBuild_AppliesOptions(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	registered := false

	b := modkit.Build(
		modkit.WithName("nlpsearch"),
		modkit.WithPrefix("/nlp-search"),
		modkit.WithMiddlewares(mw),
		modkit.WithSwagger(true),
		modkit.WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "nlpsearch" || b.Prefix != "/nlp-search" {
		t.Fatalf("options not applied: %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("expected one middleware, got %d", len(b.Mw))
	}
	if !b.SwaggerOn {
		t.Fatalf("expected swagger enabled")
	}
	b.Register(nil)
	if !registered {
		t.Fatalf("register hook not wired")
	}
}

func TestWithPorts_RoundTrip(t *testing.T) {
	t.Parallel()

	type ports struct{ N int }
	b := modkit.Build(modkit.WithPorts(ports{N: 7}))
	p, ok := b.Ports.(ports)
	if !ok || p.N != 7 {
		t.Fatalf("ports not carried: %#v", b.Ports)
	}
}
