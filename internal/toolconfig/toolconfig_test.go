package toolconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputFormat != "yaml" {
		t.Errorf("expected default output format 'yaml', got %q", cfg.OutputFormat)
	}
}

func TestLoadMergesOverDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".defaultslist.toml")
	body := "search_paths = [\"./a\", \"./b\"]\nconfig_name = \"app\"\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.SearchPaths) != 2 || cfg.SearchPaths[0] != "./a" {
		t.Errorf("unexpected search paths: %v", cfg.SearchPaths)
	}
	if cfg.ConfigName != "app" {
		t.Errorf("expected config_name 'app', got %q", cfg.ConfigName)
	}
	if cfg.OutputFormat != "yaml" {
		t.Errorf("expected output_format to fall back to default 'yaml', got %q", cfg.OutputFormat)
	}
}

func TestLoadMalformedTomlErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".defaultslist.toml")
	if err := os.WriteFile(path, []byte("search_paths = ["), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
