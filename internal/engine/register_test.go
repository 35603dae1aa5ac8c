package engine

import (
	"slices"
	"testing"

	"github.com/jparise/fsfind/internal/registry"
)

func TestDefaultRegistry(t *testing.T) {
	found, err := registry.Discover(Location)
	if err != nil {
		t.Fatalf("Discover(%q) unexpected error: %v", Location, err)
	}

	want := []string{NameBFS, NameDFS, NamePBFS}
	if got := registry.Names(found); !slices.Equal(got, want) {
		t.Errorf("Discover(%q) names = %v, want %v", Location, got, want)
	}

	a, b := found[NameBFS](), found[NameBFS]()
	if a == b {
		t.Error("factory returned the same engine twice")
	}
}
