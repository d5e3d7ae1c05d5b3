package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// DefaultCliTestHelper provides standard CLI testing functionality.
type DefaultCliTestHelper struct{}

// NewCliTestHelper creates a new CLI test helper.
func NewCliTestHelper() CliTestHelper {
	return &DefaultCliTestHelper{}
}

// CreateTestCommand creates a test cobra command.
func (h *DefaultCliTestHelper) CreateTestCommand(name string, runFunc func(cmd *cobra.Command, args []string)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: "Test command for " + name,
		Run:   runFunc,
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

// ExecuteCommand executes a command with arguments and returns its combined
// stdout/stderr output.
func (h *DefaultCliTestHelper) ExecuteCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	output := stdout.String()
	if stderr.Len() > 0 {
		if output != "" {
			output += "\n"
		}
		output += stderr.String()
	}
	return output, err
}

// CreateTestRootCommand creates a test root command with common setup, the
// shape cmd/defaultslist's own root command follows.
func CreateTestRootCommand(appName string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Test application for " + appName,
		Long:  "Test application for " + appName + " with common CLI patterns",
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	return rootCmd
}

// AssertCommandSuccess asserts that a command executed successfully.
func AssertCommandSuccess(t *testing.T, cmd *cobra.Command, args []string) string {
	t.Helper()

	helper := NewCliTestHelper()
	output, err := helper.ExecuteCommand(t, cmd, args)
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	return output
}

// AssertCommandError asserts that a command failed with an error.
func AssertCommandError(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	helper := NewCliTestHelper()
	output, err := helper.ExecuteCommand(t, cmd, args)
	if err == nil {
		t.Fatalf("Expected command to fail, but it succeeded\nOutput: %s", output)
	}
	return output, err
}

// AssertCommandOutput asserts that a command produces expected output.
func AssertCommandOutput(t *testing.T, cmd *cobra.Command, args []string, expectedOutput string) {
	t.Helper()

	output := AssertCommandSuccess(t, cmd, args)
	if !strings.Contains(output, expectedOutput) {
		t.Errorf("Expected output to contain %q, got %q", expectedOutput, output)
	}
}

// Package-level convenience functions.

var defaultCliHelper = NewCliTestHelper()

// CreateTestCommand is a package-level convenience function for creating test commands.
func CreateTestCommand(name string, runFunc func(cmd *cobra.Command, args []string)) *cobra.Command {
	return defaultCliHelper.CreateTestCommand(name, runFunc)
}

// ExecuteCommand is a package-level convenience function for executing commands.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	return defaultCliHelper.ExecuteCommand(t, cmd, args)
}
