// Tests for the pkg/errors package.
//
// Copyright (c) 2024 BkpDir Contributors
// Licensed under the MIT License
package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestResolverError(t *testing.T) {
	err := NewMissingConfig("db/mysql", []string{"pkg://conf", "file:///etc/app/conf"})
	if err.GetKind() != KindMissingConfig {
		t.Errorf("expected KindMissingConfig, got %v", err.GetKind())
	}
	if !strings.Contains(err.Error(), "Cannot find config : db/mysql") {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.GetPath() != "db/mysql" {
		t.Errorf("expected path 'db/mysql', got '%s'", err.GetPath())
	}

	cause := errors.New("underlying error")
	wrapped := &ResolverError{Kind: KindComposition, Message: "wrapper error", Err: cause}
	if !strings.Contains(wrapped.Error(), "wrapper error") {
		t.Errorf("error message should contain wrapper error")
	}
	if !strings.Contains(wrapped.Error(), "underlying error") {
		t.Errorf("error message should contain underlying error")
	}
	if wrapped.Unwrap() != cause {
		t.Errorf("Unwrap should return the original cause")
	}

	composition := NewComposition("expand_defaults", "Duplicate _self_ defined in %s", "duplicate_self")
	if composition.GetKind() != KindComposition {
		t.Errorf("expected KindComposition, got %v", composition.GetKind())
	}
	if composition.GetMessage() != "Duplicate _self_ defined in duplicate_self" {
		t.Errorf("unexpected message: %s", composition.GetMessage())
	}
	if composition.GetOperation() != "expand_defaults" {
		t.Errorf("expected operation 'expand_defaults', got '%s'", composition.GetOperation())
	}
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		err      *ResolverError
		category ErrorCategory
	}{
		{NewMissingConfig("a/a1", nil), ErrorCategoryMissingConfig},
		{NewComposition("op", "Duplicate _self_ defined in %s", "a1"), ErrorCategoryDuplicateSelf},
		{NewComposition("op", "self_name is not specified and defaults list contains a _self_ item"), ErrorCategoryDanglingSelf},
		{NewComposition("op", "Could not rename package. No match for '%s@%s' in the defaults list", "db", "new"), ErrorCategoryRenameConflict},
		{NewComposition("op", "Could not add '%s=%s'. '%s' is already in the defaults list.", "db", "mysql", "db"), ErrorCategoryAddConflict},
		{NewComposition("op", "some other structural failure"), ErrorCategoryComposition},
	}
	for _, c := range cases {
		if got := Classify(c.err); got != c.category {
			t.Errorf("Classify(%q) = %v, want %v", c.err.Message, got, c.category)
		}
	}

	if Classify(NewMissingConfig("x", nil)) == ErrorCategoryUnknown {
		t.Errorf("MissingConfig should never classify as unknown")
	}
}

func TestDefaultErrorClassifier(t *testing.T) {
	classifier := NewDefaultErrorClassifier()

	missing := NewMissingConfig("a/a1", nil)
	if classifier.ClassifyError(missing) != ErrorCategoryMissingConfig {
		t.Errorf("should classify missing config error correctly")
	}
	if classifier.GetSeverity(missing) != ErrorSeverityWarning {
		t.Errorf("missing config errors should be warning severity")
	}
	if classifier.IsRecoverable(missing) {
		t.Errorf("resolver errors are never retried, so none are recoverable")
	}

	composition := NewComposition("op", "Duplicate _self_ defined in %s", "a1")
	if classifier.ClassifyError(composition) != ErrorCategoryDuplicateSelf {
		t.Errorf("should classify duplicate self error correctly")
	}
	if classifier.GetSeverity(composition) != ErrorSeverityError {
		t.Errorf("composition errors should be error severity")
	}

	unrelated := errors.New("not a resolver error")
	if classifier.ClassifyError(unrelated) != ErrorCategoryUnknown {
		t.Errorf("non-ResolverError values should classify as unknown")
	}
}

func TestErrorContext(t *testing.T) {
	errorCtx := NewErrorContext("compute_defaults", "a/a1", nil)

	if errorCtx.Operation != "compute_defaults" {
		t.Errorf("expected operation 'compute_defaults', got '%s'", errorCtx.Operation)
	}
	if errorCtx.Path != "a/a1" {
		t.Errorf("expected path 'a/a1', got '%s'", errorCtx.Path)
	}

	errorCtx.WithMetadata("key1", "value1")
	if value, exists := errorCtx.GetMetadata("key1"); !exists || value != "value1" {
		t.Errorf("metadata should be stored and retrieved correctly")
	}
	if _, exists := errorCtx.GetMetadata("nonexistent"); exists {
		t.Errorf("nonexistent metadata should return false")
	}
}

func TestHandleError(t *testing.T) {
	mockCfg := &mockErrorConfig{}
	mockFormatter := &mockErrorFormatter{}

	if code := HandleError(nil, mockCfg, mockFormatter); code != 0 {
		t.Errorf("nil error should return status code 0")
	}

	missing := NewMissingConfig("a/a1", []string{"pkg://conf"})
	if code := HandleError(missing, mockCfg, mockFormatter); code != 2 {
		t.Errorf("MissingConfig should return its configured exit code, got %d", code)
	}
	if !strings.Contains(mockFormatter.lastMessage, "MissingConfig") {
		t.Errorf("formatter should have been invoked with the missing-config message")
	}

	composition := NewComposition("op", "Duplicate _self_ defined in %s", "a1")
	if code := HandleError(composition, mockCfg, mockFormatter); code != 3 {
		t.Errorf("ConfigComposition should return its configured exit code, got %d", code)
	}

	generic := errors.New("boom")
	if code := HandleError(generic, mockCfg, mockFormatter); code != 1 {
		t.Errorf("unrecognized errors should return exit code 1, got %d", code)
	}
}

// Mock implementations for testing.

type mockErrorConfig struct{}

func (m *mockErrorConfig) GetExitCodes() map[Kind]int {
	return map[Kind]int{
		KindMissingConfig: 2,
		KindComposition:   3,
	}
}

type mockErrorFormatter struct {
	lastMessage string
}

func (m *mockErrorFormatter) FormatError(message string) string {
	return message
}

func (m *mockErrorFormatter) PrintError(message string) {
	m.lastMessage = message
}

func (m *mockErrorFormatter) FormatMissingConfig(err *ResolverError) string {
	return "MissingConfig: " + err.Error()
}

func (m *mockErrorFormatter) FormatComposition(err *ResolverError) string {
	return "ConfigComposition: " + err.Error()
}

func (m *mockErrorFormatter) PrintMissingConfig(err *ResolverError) {
	m.lastMessage = m.FormatMissingConfig(err)
}

func (m *mockErrorFormatter) PrintComposition(err *ResolverError) {
	m.lastMessage = m.FormatComposition(err)
}
