package render

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-readmegen/pkg/block"
)

type stubRenderer struct {
	name string
}

func (r stubRenderer) Name() string        { return r.name }
func (r stubRenderer) ContentType() string { return "text/plain" }

func (r stubRenderer) Render(context.Context, block.Output, RenderOptions) ([]byte, error) {
	return []byte(r.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "markdown"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("markdown")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "markdown" {
		t.Fatalf("expected markdown renderer, got %q", renderer.Name())
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "preview"})

	err := registry.Register(stubRenderer{name: "preview"})
	if err == nil {
		t.Fatal("duplicate registration should fail")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistry_RejectsNilAndUnnamed(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("nil renderer should fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("unnamed renderer should fail")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("html"); err == nil {
		t.Fatal("unknown renderer should fail")
	}
	if registry.Has("html") {
		t.Fatal("Has should report missing renderers")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "preview"})
	registry.MustRegister(stubRenderer{name: "markdown"})

	names := registry.List()
	if len(names) != 2 || names[0] != "markdown" || names[1] != "preview" {
		t.Fatalf("expected sorted names, got %v", names)
	}
}

func TestRegistry_MustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustGet should panic on missing renderer")
		}
	}()
	NewRegistry().MustGet("missing")
}
