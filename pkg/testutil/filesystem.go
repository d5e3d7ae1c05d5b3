package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// DefaultFileSystemTestHelper provides standard file system testing functionality.
type DefaultFileSystemTestHelper struct{}

// NewFileSystemTestHelper creates a new file system test helper.
func NewFileSystemTestHelper() FileSystemTestHelper {
	return &DefaultFileSystemTestHelper{}
}

// CreateTempDir creates a temporary directory and returns its path.
func (h *DefaultFileSystemTestHelper) CreateTempDir(t *testing.T, prefix string) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", prefix)
	if err != nil {
		t.Fatalf("Failed to create temp directory with prefix %q: %v", prefix, err)
	}
	t.Cleanup(func() {
		os.RemoveAll(tempDir)
	})
	return tempDir
}

// CreateTempFile creates a temporary file with content and returns its path.
func (h *DefaultFileSystemTestHelper) CreateTempFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %q: %v", filePath, err)
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		t.Fatalf("Failed to create temp file %q: %v", filePath, err)
	}
	return filePath
}

// CreateDirectory creates a directory structure from a map of paths to content.
func (h *DefaultFileSystemTestHelper) CreateDirectory(t *testing.T, root string, files map[string]string) error {
	t.Helper()

	for filePath, content := range files {
		fullPath := filepath.Join(root, filePath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return fmt.Errorf("failed to create directories for %q: %w", fullPath, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to create file %q: %w", fullPath, err)
		}
	}
	return nil
}

// CreateTestFiles creates multiple test files in a directory from a map.
func (h *DefaultFileSystemTestHelper) CreateTestFiles(t *testing.T, baseDir string, files map[string]string) {
	t.Helper()

	for filePath, content := range files {
		fullPath := filepath.Join(baseDir, filePath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directories for %q: %v", fullPath, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %q: %v", fullPath, err)
		}
	}
}

// Package-level convenience functions.

var defaultFileSystemHelper = NewFileSystemTestHelper()

// CreateTempDir is a package-level convenience function for creating temporary directories.
func CreateTempDir(t *testing.T, prefix string) string {
	return defaultFileSystemHelper.CreateTempDir(t, prefix)
}

// CreateTempFile is a package-level convenience function for creating temporary files.
func CreateTempFile(t *testing.T, dir, name string, content []byte) string {
	return defaultFileSystemHelper.CreateTempFile(t, dir, name, content)
}

// CreateDirectory is a package-level convenience function for creating directory structures.
func CreateDirectory(t *testing.T, root string, files map[string]string) error {
	return defaultFileSystemHelper.CreateDirectory(t, root, files)
}

// CreateTestFiles is a package-level convenience function for creating multiple test files.
func CreateTestFiles(t *testing.T, baseDir string, files map[string]string) {
	defaultFileSystemHelper.CreateTestFiles(t, baseDir, files)
}

// WithTempDir executes a function with a temporary directory and cleans up automatically.
func WithTempDir(t *testing.T, prefix string, fn func(dir string)) {
	t.Helper()
	tempDir := CreateTempDir(t, prefix)
	fn(tempDir)
}

// WithTestFiles executes a function with test files created in a temporary directory.
func WithTestFiles(t *testing.T, files map[string]string, fn func(dir string)) {
	t.Helper()
	WithTempDir(t, "testutil-files-", func(dir string) {
		CreateTestFiles(t, dir, files)
		fn(dir)
	})
}
