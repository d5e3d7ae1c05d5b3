// Classification of resolver errors into the handful of structural
// violations the resolver can report, generalized from the teacher's
// filesystem-error classifier into the resolver's much narrower error surface.
//
// Copyright (c) 2024 BkpDir Contributors
// Licensed under the MIT License
package errors

import "strings"

// ErrorPattern associates a set of message substrings with the category and
// severity they indicate.
type ErrorPattern struct {
	Name        string
	Patterns    []string
	Category    ErrorCategory
	Severity    ErrorSeverity
	Recoverable bool
}

// defaultCompositionPatterns mirrors the phrasing NewComposition callers use
// in pkg/resolver, so a *ResolverError can be refined into the specific
// structural violation it represents without threading a sub-kind through
// every call site.
var defaultCompositionPatterns = []ErrorPattern{
	{
		Name:        "duplicate_self",
		Patterns:    []string{"Duplicate _self_ defined in"},
		Category:    ErrorCategoryDuplicateSelf,
		Severity:    ErrorSeverityError,
		Recoverable: false,
	},
	{
		Name:        "dangling_self",
		Patterns:    []string{"self_name is not specified", "defaults list contains a _self_ item"},
		Category:    ErrorCategoryDanglingSelf,
		Severity:    ErrorSeverityError,
		Recoverable: false,
	},
	{
		Name:        "rename_conflict",
		Patterns:    []string{"Could not rename package"},
		Category:    ErrorCategoryRenameConflict,
		Severity:    ErrorSeverityError,
		Recoverable: false,
	},
	{
		Name:        "add_conflict",
		Patterns:    []string{"Could not add", "is already in the defaults list"},
		Category:    ErrorCategoryAddConflict,
		Severity:    ErrorSeverityError,
		Recoverable: false,
	},
}

// DefaultErrorClassifier classifies *ResolverError values by Kind, then
// refines ConfigComposition errors into a specific category by matching
// their message against defaultCompositionPatterns.
type DefaultErrorClassifier struct {
	compositionPatterns []ErrorPattern
}

// NewDefaultErrorClassifier creates a classifier using the built-in
// composition-error patterns.
func NewDefaultErrorClassifier() ErrorClassifier {
	return &DefaultErrorClassifier{compositionPatterns: defaultCompositionPatterns}
}

// ClassifyError returns the category of err. Errors that are not a
// *ResolverError classify as ErrorCategoryUnknown.
func (c *DefaultErrorClassifier) ClassifyError(err error) ErrorCategory {
	rerr, ok := err.(*ResolverError)
	if !ok {
		return ErrorCategoryUnknown
	}
	switch rerr.Kind {
	case KindMissingConfig:
		return ErrorCategoryMissingConfig
	case KindComposition:
		for _, pattern := range c.compositionPatterns {
			if matchesAny(rerr.Message, pattern.Patterns) {
				return pattern.Category
			}
		}
		return ErrorCategoryComposition
	default:
		return ErrorCategoryUnknown
	}
}

// IsRecoverable always reports false: the resolver fails fast and no error it
// raises is retried (spec note: "No error is retried").
func (c *DefaultErrorClassifier) IsRecoverable(err error) bool {
	return false
}

// GetSeverity returns the severity associated with err's category.
func (c *DefaultErrorClassifier) GetSeverity(err error) ErrorSeverity {
	rerr, ok := err.(*ResolverError)
	if !ok {
		return ErrorSeverityError
	}
	if rerr.Kind == KindMissingConfig {
		return ErrorSeverityWarning
	}
	for _, pattern := range c.compositionPatterns {
		if matchesAny(rerr.Message, pattern.Patterns) {
			return pattern.Severity
		}
	}
	return ErrorSeverityError
}

// matchesAny reports whether message contains every substring in patterns.
// Patterns with more than one substring (e.g. dangling_self) require all of
// them to appear, since no single substring uniquely identifies that message.
func matchesAny(message string, patterns []string) bool {
	for _, p := range patterns {
		if !strings.Contains(message, p) {
			return false
		}
	}
	return len(patterns) > 0
}

// Classify is a convenience wrapper returning the category for a
// *ResolverError directly, without going through the ErrorClassifier
// interface.
func Classify(err *ResolverError) ErrorCategory {
	return NewDefaultErrorClassifier().ClassifyError(err)
}

// ConfigurableErrorClassifier allows callers to extend or override the
// composition-error patterns used for classification, e.g. to recognize
// messages from a custom ConfigRepository implementation.
type ConfigurableErrorClassifier struct {
	patterns []ErrorPattern
}

// NewConfigurableErrorClassifier creates a classifier from a caller-supplied
// pattern list, appended after the built-in patterns.
func NewConfigurableErrorClassifier(patterns []ErrorPattern) ErrorClassifier {
	all := make([]ErrorPattern, 0, len(defaultCompositionPatterns)+len(patterns))
	all = append(all, defaultCompositionPatterns...)
	all = append(all, patterns...)
	return &DefaultErrorClassifier{compositionPatterns: all}
}
