package testutil

import (
	"testing"

	"github.com/spf13/cobra"
)

// FileSystemTestHelper defines the interface for file system testing utilities.
type FileSystemTestHelper interface {
	// CreateTempDir creates a temporary directory and returns its path
	CreateTempDir(t *testing.T, prefix string) string

	// CreateTempFile creates a temporary file with content and returns its path
	CreateTempFile(t *testing.T, dir, name string, content []byte) string

	// CreateDirectory creates a directory structure from a map of paths to content
	CreateDirectory(t *testing.T, root string, files map[string]string) error

	// CreateTestFiles creates multiple test files in a directory from a map
	CreateTestFiles(t *testing.T, baseDir string, files map[string]string)
}

// CliTestHelper defines the interface for CLI testing utilities.
type CliTestHelper interface {
	// CreateTestCommand creates a test cobra command
	CreateTestCommand(name string, runFunc func(cmd *cobra.Command, args []string)) *cobra.Command

	// ExecuteCommand executes a command with arguments and returns output and error
	ExecuteCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error)
}

// AssertionHelper defines the interface for test assertion utilities.
type AssertionHelper interface {
	// AssertEqual asserts that two values are equal
	AssertEqual(t *testing.T, name string, got, want interface{})

	// AssertStringEqual asserts that two strings are equal
	AssertStringEqual(t *testing.T, name, got, want string)

	// AssertBoolEqual asserts that two booleans are equal
	AssertBoolEqual(t *testing.T, name string, got, want bool)

	// AssertIntEqual asserts that two integers are equal
	AssertIntEqual(t *testing.T, name string, got, want int)

	// AssertSliceEqual asserts that two slices are equal
	AssertSliceEqual(t *testing.T, name string, got, want []string)

	// AssertError asserts that an error occurred or did not, per expectError
	AssertError(t *testing.T, err error, expectError bool)

	// AssertContains asserts that a string contains a substring
	AssertContains(t *testing.T, str, substr, name string)
}
