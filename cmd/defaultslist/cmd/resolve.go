package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"defaultslist/pkg/cli"
	"defaultslist/pkg/configrepo"
	errs "defaultslist/pkg/errors"
	"defaultslist/pkg/overrides"
	"defaultslist/pkg/resolver"
)

func newResolveCommand() *cobra.Command {
	var overrideArgs []string
	var searchRoots []string
	var explain bool

	resolveCmd := &cobra.Command{
		Use:   "resolve [config-name] [overrides...]",
		Short: "Resolve a primary config's defaults list",
		Long: `resolve loads config-name and expands its defaults list,
applying any overrides (either passed with -o or as trailing positional
arguments) on top, and prints the resulting fully qualified selections.
config-name may be omitted if config_name is set in .defaultslist.toml.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var primary string
			var trailingOverrides []string
			if len(args) > 0 {
				primary = args[0]
				trailingOverrides = args[1:]
			} else {
				primary = loadedToolConfig.ConfigName
			}
			if primary == "" {
				return fmt.Errorf("resolve requires a config name (pass one, or set config_name in .defaultslist.toml)")
			}
			allOverrides := append(append([]string(nil), overrideArgs...), trailingOverrides...)

			roots, rootPaths := resolveSearchRoots(searchRoots, loadedToolConfig.SearchPaths)
			repo := configrepo.New(configrepo.DiscoveryConfig{
				DefaultRoots: roots,
				Extensions:   []string{".yaml", ".yml"},
			})

			cmdCtx := cli.CommandContext{
				Context:     cmd.Context(),
				Output:      cmd.OutOrStdout(),
				ErrorOutput: cmd.ErrOrStderr(),
				Explain:     explain,
			}

			op := cli.ExplainWrapper(
				fmt.Sprintf("config=%s overrides=%v search_roots=%v", primary, allOverrides, rootPaths),
				func(ctx cli.CommandContext) error {
					return runResolve(ctx, repo, primary, allOverrides, loadedToolConfig.OutputFormat)
				},
			)
			return cli.NewExplainManager().Execute(cmdCtx, op)
		},
	}

	flagMgr := cli.NewFlagManager()
	flagMgr.AddOverrideFlag(resolveCmd, &overrideArgs)
	flagMgr.AddSearchRootFlag(resolveCmd, &searchRoots)
	flagMgr.AddExplainFlag(resolveCmd, &explain)

	return resolveCmd
}

// resolveSearchRoots picks the search roots to use, in priority order
// (--search-root flag values, then .defaultslist.toml's search_paths, then
// the built-in "./conf" default), tagging each with the provider name
// surfaced in GetSources/MissingConfig diagnostics. It also returns the bare
// paths for the --explain preview.
func resolveSearchRoots(cliRoots, toolConfigRoots []string) (roots []configrepo.Root, paths []string) {
	switch {
	case len(cliRoots) > 0:
		for _, p := range cliRoots {
			roots = append(roots, configrepo.Root{Path: p, Provider: "command-line"})
		}
	case len(toolConfigRoots) > 0:
		for _, p := range toolConfigRoots {
			roots = append(roots, configrepo.Root{Path: p, Provider: "tool-config"})
		}
	default:
		roots = append(roots, configrepo.Root{Path: "./conf", Provider: "default"})
	}
	paths = make([]string, len(roots))
	for i, r := range roots {
		paths[i] = r.Path
	}
	return roots, paths
}

func runResolve(ctx cli.CommandContext, repo resolver.ConfigRepository, primary string, overrideArgs []string, outputFormat string) error {
	entries := []resolver.DefaultEntry{{ConfigName: primary}}

	overrideEntries, deletes, err := overrides.ParseAll(overrideArgs)
	if err != nil {
		formatter := &cliErrorFormatter{w: ctx.ErrorOutput}
		formatter.PrintError(err.Error())
		return err
	}
	entries = append(entries, overrideEntries...)
	entries = overrides.ApplyDeletes(entries, deletes)

	result, err := resolver.ExpandDefaults("", entries, repo)
	if err != nil {
		formatter := &cliErrorFormatter{w: ctx.ErrorOutput}
		if rerr, ok := err.(*errs.ResolverError); ok {
			errs.HandleResolverError(rerr, cliErrorConfig{}, formatter)
		} else {
			formatter.PrintError(err.Error())
		}
		return err
	}

	return renderResult(ctx.Output, result, outputFormat)
}

// renderResult prints result in the tool's configured output format: "lines"
// for one "path@package" selection per line, or "yaml" (the default) for the
// same selections marshaled as a YAML sequence.
func renderResult(w io.Writer, result []resolver.DefaultEntry, outputFormat string) error {
	lines := make([]string, len(result))
	for i, e := range result {
		lines[i] = formatEntry(e)
	}

	switch outputFormat {
	case "", "yaml":
		out, err := yaml.Marshal(lines)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "lines":
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

func formatEntry(e resolver.DefaultEntry) string {
	path := e.ConfigPath()
	if e.Package == "" {
		return path
	}
	return fmt.Sprintf("%s@%s", path, e.Package)
}

// ExitCode maps an error returned by Execute to the process exit code the
// resolver's two error kinds are configured for (see cliErrorConfig).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	rerr, ok := err.(*errs.ResolverError)
	if !ok {
		return 1
	}
	if code, ok := cliErrorConfig{}.GetExitCodes()[rerr.GetKind()]; ok {
		return code
	}
	return 1
}
