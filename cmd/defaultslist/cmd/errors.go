package cmd

import (
	"fmt"
	"io"
	"strings"

	errs "defaultslist/pkg/errors"
)

// cliErrorFormatter implements errs.ErrorFormatter against a cobra command's
// error writer.
type cliErrorFormatter struct {
	w io.Writer
}

func (f *cliErrorFormatter) FormatError(message string) string {
	return fmt.Sprintf("Error: %s", message)
}

func (f *cliErrorFormatter) PrintError(message string) {
	fmt.Fprintln(f.w, f.FormatError(message))
}

func (f *cliErrorFormatter) FormatMissingConfig(err *errs.ResolverError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s", err.GetMessage())
	for _, p := range err.SearchPath {
		fmt.Fprintf(&b, "\n  searched: %s", p)
	}
	return b.String()
}

func (f *cliErrorFormatter) FormatComposition(err *errs.ResolverError) string {
	return fmt.Sprintf("Error: %s", err.GetMessage())
}

func (f *cliErrorFormatter) PrintMissingConfig(err *errs.ResolverError) {
	fmt.Fprintln(f.w, f.FormatMissingConfig(err))
}

func (f *cliErrorFormatter) PrintComposition(err *errs.ResolverError) {
	fmt.Fprintln(f.w, f.FormatComposition(err))
}

// cliErrorConfig maps each resolver error kind to the CLI's exit code.
type cliErrorConfig struct{}

func (cliErrorConfig) GetExitCodes() map[errs.Kind]int {
	return map[errs.Kind]int{
		errs.KindMissingConfig: 2,
		errs.KindComposition:   3,
	}
}
