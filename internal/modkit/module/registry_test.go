package module_test

import (
	"testing"

	"tripparse/internal/modkit/module"
)

type pingPort interface{ Ping() string }

type pinger struct{}

func (pinger) Ping() string { return "pong" }

func TestRegister_And_PortsAs(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)

	module.Register("querylog", pinger{})

	got, ok := module.PortsAs[pingPort]("querylog")
	if !ok {
		t.Fatalf("expected ports for querylog")
	}
	if got.Ping() != "pong" {
		t.Fatalf("unexpected port behavior")
	}

	if _, ok := module.PortsAs[pingPort]("missing"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}

func TestPortsAs_WrongType(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)

	module.Register("querylog", 42)

	if _, ok := module.PortsAs[pingPort]("querylog"); ok {
		t.Fatalf("expected type assertion failure")
	}
}
