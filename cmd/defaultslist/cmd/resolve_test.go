package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"defaultslist/pkg/testutil"
)

func writeConfig(t *testing.T, dir, rel, body string) {
	t.Helper()
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolveCommandPrintsSelections(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "app.yaml", "defaults:\n  - group: db\n    name: mysql\n  - self: true\n")
	writeConfig(t, root, "db/mysql.yaml", "package: db\n")

	resolveCmd := newResolveCommand()
	out, err := testutil.ExecuteCommand(t, resolveCmd, []string{"--search-root", root, "app"})
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput: %s", err, out)
	}
	testutil.AssertContains(t, out, "db/mysql@db", "resolve output")
	testutil.AssertContains(t, out, "app", "resolve output")
}

func TestResolveCommandDeleteDropsOverrideBeforeResolving(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "app.yaml", "defaults:\n  - self: true\n")
	// db/mysql.yaml deliberately does not exist: if the delete were applied
	// to the resolver's output instead of its input, resolving db=mysql
	// would fail with MissingConfig before the delete ever took effect.

	resolveCmd := newResolveCommand()
	out, err := testutil.ExecuteCommand(t, resolveCmd, []string{"--search-root", root, "app", "db=mysql", "~db"})
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput: %s", err, out)
	}
	testutil.AssertNotContains(t, out, "db/mysql", "resolve output")
	testutil.AssertContains(t, out, "app", "resolve output")
}

func TestResolveCommandWithOverride(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "app.yaml", "defaults:\n  - group: db\n    name: mysql\n  - self: true\n")
	writeConfig(t, root, "db/mysql.yaml", "package: db\n")
	writeConfig(t, root, "db/postgres.yaml", "package: db\n")

	resolveCmd := newResolveCommand()
	out, err := testutil.ExecuteCommand(t, resolveCmd, []string{"--search-root", root, "app", "db=postgres"})
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput: %s", err, out)
	}
	testutil.AssertContains(t, out, "db/postgres@db", "resolve output with override")
}
