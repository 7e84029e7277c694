package backend_test

import (
	"testing"

	"github.com/easelgl/easel"
	"github.com/easelgl/easel/backend"
	"github.com/easelgl/easel/backend/soft"
)

func TestSoftRegistersItself(t *testing.T) {
	if !backend.IsRegistered("soft") {
		t.Fatal("soft backend not registered")
	}
	found := false
	for _, name := range backend.Available() {
		if name == "soft" {
			found = true
		}
	}
	if !found {
		t.Fatal("Available() missing soft")
	}
}

func TestNewByName(t *testing.T) {
	b := backend.New("soft", 320, 240)
	if b == nil {
		t.Fatal("New(soft) returned nil")
	}
	if b.Name() != "soft" {
		t.Fatalf("Name = %q", b.Name())
	}
	if b.Width() != 320 || b.Height() != 240 {
		t.Fatalf("dimensions = %dx%d", b.Width(), b.Height())
	}
	if backend.New("missing", 1, 1) != nil {
		t.Fatal("New of unknown name returned a backend")
	}
}

func TestRegisterUnregister(t *testing.T) {
	backend.Register("test-backend", func(w, h int) easel.Backend {
		return soft.New(w, h)
	})
	if !backend.IsRegistered("test-backend") {
		t.Fatal("registered name not found")
	}
	backend.Unregister("test-backend")
	if backend.IsRegistered("test-backend") {
		t.Fatal("unregistered name still present")
	}
}

func TestDefaultPrefersPriorityOrder(t *testing.T) {
	// only soft is compiled into the tests, so it is the default
	b := backend.Default(64, 64)
	if b == nil {
		t.Fatal("Default returned nil with soft registered")
	}
	if b.Name() != "soft" {
		t.Fatalf("default backend = %q, want soft", b.Name())
	}
}
