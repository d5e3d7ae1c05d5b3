// Package cmd implements the defaultslist command-line interface: a thin
// cobra wrapper, built on pkg/cli's App framework, around pkg/resolver,
// pkg/overrides, and pkg/configrepo.
//
// Copyright (c) 2024 BkpDir Contributors
// Licensed under the MIT License
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"defaultslist/internal/toolconfig"
	"defaultslist/pkg/cli"
)

var (
	toolConfigPath   string
	loadedToolConfig toolconfig.ToolConfig

	app = cli.NewApp(cli.AppInfo{
		Name:  "defaultslist",
		Short: "Resolve hierarchical defaults lists",
		Long: `defaultslist resolves a hierarchical defaults list the way a
config-composition system like Hydra does: given a primary config name and a
set of command-line overrides, it produces the flat, ordered, deduplicated
list of fully qualified configuration selections that make up a run.`,
		Build: cli.BuildInfo{
			Version:  "0.1.0",
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
		},
	})
)

func init() {
	app.RootCommand.SilenceUsage = true
	app.RootCommand.SilenceErrors = true
	app.RootCommand.PersistentFlags().StringVar(&toolConfigPath, "config", ".defaultslist.toml", "tool config file")
	cli.NewFlagManager().AddGlobalFlags(app.RootCommand)

	app.RootCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := toolconfig.Load(toolConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", toolConfigPath, err)
		}
		loadedToolConfig = cfg
		return nil
	}

	app.AddCommand(newResolveCommand())
	app.AddCommand(cli.NewVersionManager().CreateVersionCommand(app.Info.Build))
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	app.RootCommand.SetContext(ctx)
	if err := app.RootCommand.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
