package configrepo

import (
	"os"
	"path/filepath"
	"testing"

	"defaultslist/pkg/resolver"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadConfigFindsFileAndParsesDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/a2.yaml", "package: a\ndefaults:\n  - group: b\n    name: b1\n")
	writeFile(t, root, "b/b1.yaml", "package: b\n")

	repo := New(DiscoveryConfig{DefaultRoots: []Root{{Path: root}}, Extensions: []string{".yaml", ".yml"}})

	doc, err := repo.LoadConfig("a/a2", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc == nil {
		t.Fatal("expected a document, got nil")
	}
	if doc.Header.Package != "a" {
		t.Errorf("expected package 'a', got %q", doc.Header.Package)
	}
	want := resolver.DefaultEntry{ConfigGroup: "b", ConfigName: "b1"}
	if len(doc.DefaultsList) != 1 || doc.DefaultsList[0] != want {
		t.Errorf("unexpected defaults list: %+v", doc.DefaultsList)
	}
}

func TestLoadConfigMissingReturnsNilNil(t *testing.T) {
	root := t.TempDir()
	repo := New(DiscoveryConfig{DefaultRoots: []Root{{Path: root}}, Extensions: []string{".yaml"}})

	doc, err := repo.LoadConfig("nope", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != nil {
		t.Errorf("expected nil document, got %+v", doc)
	}
}

func TestLoadConfigSelfSentinel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "trailing_self.yaml", "defaults:\n  - name: no_defaults\n  - self: true\n")

	repo := New(DiscoveryConfig{DefaultRoots: []Root{{Path: root}}, Extensions: []string{".yaml"}})
	doc, err := repo.LoadConfig("trailing_self", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.DefaultsList) != 2 || doc.DefaultsList[1].ConfigName != "_self_" {
		t.Errorf("unexpected defaults list: %+v", doc.DefaultsList)
	}
}

func TestEnvVarOverridesDefaultRoots(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "only_here.yaml", "package: only_here\n")

	t.Setenv("TESTAPP_CONFIG_PATH", root)
	cfg := NewDefaultDiscoveryConfig("testapp")
	repo := New(cfg)

	doc, err := repo.LoadConfig("only_here", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc == nil || doc.Header.Package != "only_here" {
		t.Errorf("expected env-overridden root to be searched, got %+v", doc)
	}
}

func TestGetSourcesReportsFilesystemProvider(t *testing.T) {
	root := t.TempDir()
	repo := New(DiscoveryConfig{DefaultRoots: []Root{{Path: root}}})
	sources := repo.GetSources()
	if len(sources) != 1 || sources[0].Provider != "filesystem" {
		t.Errorf("unexpected sources: %+v", sources)
	}
}

func TestGetSourcesReportsDistinctProviders(t *testing.T) {
	cliRoot := t.TempDir()
	toolRoot := t.TempDir()
	repo := New(DiscoveryConfig{DefaultRoots: []Root{
		{Path: cliRoot, Provider: "command-line"},
		{Path: toolRoot, Provider: "tool-config"},
	}})
	sources := repo.GetSources()
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %+v", sources)
	}
	if sources[0].Provider != "command-line" || sources[1].Provider != "tool-config" {
		t.Errorf("expected distinct providers, got %+v", sources)
	}
}

func TestEnvVarOverrideReportsEnvProvider(t *testing.T) {
	root := t.TempDir()
	t.Setenv("TESTAPP_CONFIG_PATH", root)
	cfg := NewDefaultDiscoveryConfig("testapp")
	repo := New(cfg)

	sources := repo.GetSources()
	if len(sources) != 1 || sources[0].Provider != "env" {
		t.Errorf("expected env provider, got %+v", sources)
	}
}

func TestLoadConfigCachesResult(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "cached.yaml", "package: one\n")
	repo := New(DiscoveryConfig{DefaultRoots: []Root{{Path: root}}, Extensions: []string{".yaml"}})

	first, err := repo.LoadConfig("cached", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Overwrite the file; cached lookup should still return the prior value.
	writeFile(t, root, "cached.yaml", "package: two\n")
	second, err := repo.LoadConfig("cached", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Header.Package != second.Header.Package {
		t.Errorf("expected cached result, got %q then %q", first.Header.Package, second.Header.Package)
	}
}
