// Error handling functions for processing and responding to resolver errors
// at the CLI boundary.
//
// Copyright (c) 2024 BkpDir Contributors
// Licensed under the MIT License
package errors

// HandleError provides centralized error handling for the two kinds of error
// the resolver produces. Any error that is not a *ResolverError is printed
// generically and reported as a failure.
func HandleError(err error, cfg ErrorConfig, formatter ErrorFormatter) int {
	if err == nil {
		return 0
	}

	rerr, ok := err.(*ResolverError)
	if !ok {
		formatter.PrintError(err.Error())
		return 1
	}

	return HandleResolverError(rerr, cfg, formatter)
}

// HandleResolverError formats and prints rerr, returning the exit code
// configured for its kind (or 1 if cfg has no entry for it).
func HandleResolverError(rerr *ResolverError, cfg ErrorConfig, formatter ErrorFormatter) int {
	switch rerr.Kind {
	case KindMissingConfig:
		formatter.PrintMissingConfig(rerr)
	case KindComposition:
		formatter.PrintComposition(rerr)
	default:
		formatter.PrintError(rerr.Error())
	}

	if cfg != nil {
		if code, ok := cfg.GetExitCodes()[rerr.Kind]; ok {
			return code
		}
	}
	return 1
}

// HandleErrorWithContext handles an error with supplementary operation/path
// context, filling in whatever the error itself left blank.
func HandleErrorWithContext(err error, errorCtx *ErrorContext, cfg ErrorConfig, formatter ErrorFormatter) int {
	if err == nil {
		return 0
	}

	if rerr, ok := err.(*ResolverError); ok {
		if rerr.Operation == "" && errorCtx != nil {
			rerr.Operation = errorCtx.Operation
		}
		if rerr.Path == "" && errorCtx != nil {
			rerr.Path = errorCtx.Path
		}
		return HandleResolverError(rerr, cfg, formatter)
	}

	contextual := &ResolverError{Kind: KindComposition, Message: err.Error(), Err: err}
	if errorCtx != nil {
		contextual.Operation = errorCtx.Operation
		contextual.Path = errorCtx.Path
	}
	return HandleResolverError(contextual, cfg, formatter)
}
