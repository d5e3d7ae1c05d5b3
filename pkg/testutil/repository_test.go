package testutil

import (
	"testing"

	"defaultslist/pkg/resolver"
)

func TestMapConfigRepositoryLoadConfig(t *testing.T) {
	repo := NewStandardRepository()

	doc, err := repo.LoadConfig("a/a2", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc == nil || doc.Header.Package != "a" {
		t.Fatalf("unexpected doc: %+v", doc)
	}
	if len(doc.DefaultsList) != 1 || doc.DefaultsList[0].ConfigGroup != "b" {
		t.Errorf("unexpected defaults list: %+v", doc.DefaultsList)
	}
}

func TestMapConfigRepositoryMissing(t *testing.T) {
	repo := NewStandardRepository()
	doc, err := repo.LoadConfig("does/not/exist", false)
	if err != nil || doc != nil {
		t.Errorf("expected (nil, nil), got (%+v, %v)", doc, err)
	}
}

func TestMapConfigRepositoryResolvesSelfDocument(t *testing.T) {
	repo := NewStandardRepository()

	got, err := resolver.ComputeElementDefaults(resolver.DefaultEntry{ConfigName: "implicit_self"}, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []resolver.DefaultEntry{{ConfigName: "implicit_self"}, {ConfigName: "no_defaults"}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMapConfigRepositorySources(t *testing.T) {
	repo := NewStandardRepository()
	sources := repo.GetSources()
	if len(sources) != 1 || sources[0].Provider != "testutil" {
		t.Errorf("unexpected sources: %+v", sources)
	}
}
