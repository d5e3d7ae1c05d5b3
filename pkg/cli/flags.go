package cli

import (
	"github.com/spf13/cobra"
)

// DefaultFlagManager provides standard flag management functionality.
type DefaultFlagManager struct{}

// NewFlagManager creates a new flag manager.
func NewFlagManager() FlagManager {
	return &DefaultFlagManager{}
}

// AddGlobalFlags adds common global flags to a command.
func (fm *DefaultFlagManager) AddGlobalFlags(cmd *cobra.Command) error {
	cmd.PersistentFlags().BoolP("help", "h", false, "Help for this command")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	return nil
}

// AddExplainFlag adds the explain flag with consistent naming.
func (fm *DefaultFlagManager) AddExplainFlag(cmd *cobra.Command, target *bool) error {
	cmd.Flags().BoolVarP(target, "explain", "e", false,
		"Print the resolve inputs (config, overrides, search roots) before resolving")
	return nil
}

// AddOverrideFlag adds the repeatable override flag ("group=name", "+group=name", "group@pkg=name", "group@p1:p2=name").
func (fm *DefaultFlagManager) AddOverrideFlag(cmd *cobra.Command, target *[]string) error {
	cmd.Flags().StringArrayVarP(target, "override", "o", nil,
		"Defaults-list override, may be repeated (e.g. db=mysql, +plugin=tracer, db@prod=mysql, db@prod:staging=mysql)")
	return nil
}

// AddSearchRootFlag adds the repeatable search-root flag.
func (fm *DefaultFlagManager) AddSearchRootFlag(cmd *cobra.Command, target *[]string) error {
	cmd.Flags().StringArrayVar(target, "search-root", nil,
		"Directory (or glob) to search for configuration documents, may be repeated")
	return nil
}

// FlagSet represents a set of flags to add to a command.
type FlagSet struct {
	Explain     *bool
	Overrides   *[]string
	SearchRoots *[]string
}

// AddFlags adds all configured flags to the command.
func (fm *DefaultFlagManager) AddFlags(cmd *cobra.Command, flagSet FlagSet) error {
	if flagSet.Explain != nil {
		if err := fm.AddExplainFlag(cmd, flagSet.Explain); err != nil {
			return err
		}
	}

	if flagSet.Overrides != nil {
		if err := fm.AddOverrideFlag(cmd, flagSet.Overrides); err != nil {
			return err
		}
	}

	if flagSet.SearchRoots != nil {
		if err := fm.AddSearchRootFlag(cmd, flagSet.SearchRoots); err != nil {
			return err
		}
	}

	return nil
}
