// Package configrepo is the filesystem-backed resolver.ConfigRepository: it
// turns a list of search roots into loaded resolver.LoadedDocument values,
// parsing each config file as YAML and surfacing resolver-compatible search
// path diagnostics when nothing matches.
//
// The root-discovery half (environment variable override, ~/ expansion,
// default search roots) generalizes the teacher's pkg/config/discovery.go
// PathDiscovery; the per-file lookup uses doublestar so a root may itself be
// a glob pattern (e.g. "./conf/**") and not just a literal directory.
//
// Copyright (c) 2024 BkpDir Contributors
// Licensed under the MIT License
package configrepo

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"defaultslist/pkg/resolver"
)

// Root is one configured search location together with the provider label
// reported through GetSources and MissingConfig diagnostics. Provider
// distinguishes where a root came from: a "command-line" root passed via
// --search-root, a "tool-config" root from .defaultslist.toml, or the
// built-in "default" root, mirroring the original's multi-line
// "Search path:" block that names each provider in turn.
type Root struct {
	Path     string
	Provider string
}

// DiscoveryConfig configures how search roots are derived, generalizing the
// teacher's DiscoveryConfig to a list-of-roots rather than a single file.
type DiscoveryConfig struct {
	// EnvVarName is the environment variable holding a colon-separated list
	// of search roots. When set and non-empty it replaces DefaultRoots,
	// reported under the "env" provider.
	EnvVarName string
	// DefaultRoots are the search roots used when EnvVarName is unset. A
	// Root with an empty Provider is reported as "filesystem".
	DefaultRoots []Root
	// Extensions are the file extensions tried, in order, for each
	// config_path (e.g. []string{".yaml", ".yml"}).
	Extensions []string
}

// NewDefaultDiscoveryConfig returns the conventional discovery configuration
// for appName: env var "<APPNAME>_CONFIG_PATH" and a "./conf" default root.
func NewDefaultDiscoveryConfig(appName string) DiscoveryConfig {
	return DiscoveryConfig{
		EnvVarName:   strings.ToUpper(appName) + "_CONFIG_PATH",
		DefaultRoots: []Root{{Path: "./conf", Provider: "default"}},
		Extensions:   []string{".yaml", ".yml"},
	}
}

// roots resolves the configured search roots, expanding "~/" and env-var
// overrides the way the teacher's PathDiscovery.ExpandPath does.
func (c DiscoveryConfig) roots() []Root {
	raw := c.DefaultRoots
	if c.EnvVarName != "" {
		if envVal := os.Getenv(c.EnvVarName); envVal != "" {
			parts := strings.Split(envVal, ":")
			raw = make([]Root, 0, len(parts))
			for _, p := range parts {
				raw = append(raw, Root{Path: strings.TrimSpace(p), Provider: "env"})
			}
		}
	}
	out := make([]Root, 0, len(raw))
	for _, r := range raw {
		provider := r.Provider
		if provider == "" {
			provider = "filesystem"
		}
		out = append(out, Root{Path: expandPath(r.Path), Provider: provider})
	}
	return out
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// FilesystemConfigRepository implements resolver.ConfigRepository by
// searching a list of roots for "<root>/<config_path><ext>", trying each
// configured extension, and parsing the first match as YAML.
type FilesystemConfigRepository struct {
	cfg DiscoveryConfig

	mu    sync.Mutex
	cache map[string]*resolver.LoadedDocument
}

// New builds a FilesystemConfigRepository over cfg's search roots.
func New(cfg DiscoveryConfig) *FilesystemConfigRepository {
	return &FilesystemConfigRepository{cfg: cfg, cache: make(map[string]*resolver.LoadedDocument)}
}

// yamlDefaultEntry is the on-disk shape of one defaults-list element. Self is
// a distinct field (rather than overloading Name with the "_self_" sentinel
// string) so a document author can't collide with it by accident.
type yamlDefaultEntry struct {
	Self     bool   `yaml:"self,omitempty"`
	Group    string `yaml:"group,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Package  string `yaml:"package,omitempty"`
	Package2 string `yaml:"package2,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	AddOnly  bool   `yaml:"add_only,omitempty"`
}

func (e yamlDefaultEntry) toEntry() resolver.DefaultEntry {
	name := e.Name
	if e.Self {
		name = "_self_"
	}
	return resolver.DefaultEntry{
		ConfigGroup: e.Group,
		ConfigName:  name,
		Package:     e.Package,
		Package2:    e.Package2,
		Optional:    e.Optional,
		IsAddOnly:   e.AddOnly,
	}
}

// yamlDocument is the on-disk shape of a whole config file.
type yamlDocument struct {
	Package  string              `yaml:"package"`
	Defaults []yamlDefaultEntry  `yaml:"defaults"`
	Values   map[string]any      `yaml:"values"`
}

// LoadConfig implements resolver.ConfigRepository. It returns (nil, nil) when
// no file matches path under any root, and a non-nil error for any I/O or
// parse failure on a file that was found.
func (r *FilesystemConfigRepository) LoadConfig(path string, isPrimaryConfig bool) (*resolver.LoadedDocument, error) {
	r.mu.Lock()
	if doc, ok := r.cache[path]; ok {
		r.mu.Unlock()
		return doc, nil
	}
	r.mu.Unlock()

	for _, root := range r.cfg.roots() {
		for _, ext := range r.cfg.Extensions {
			pattern := filepath.Join(root.Path, path+ext)
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				data, err := os.ReadFile(m)
				if err != nil {
					return nil, err
				}
				var raw yamlDocument
				if err := yaml.Unmarshal(data, &raw); err != nil {
					return nil, err
				}

				loaded := &resolver.LoadedDocument{Header: resolver.Header{Package: raw.Package}}
				for _, e := range raw.Defaults {
					loaded.DefaultsList = append(loaded.DefaultsList, e.toEntry())
				}

				r.mu.Lock()
				r.cache[path] = loaded
				r.mu.Unlock()
				return loaded, nil
			}
		}
	}
	return nil, nil
}

// GetSources implements resolver.ConfigRepository, reporting each configured
// search root under the provider name it was registered with (see Root).
func (r *FilesystemConfigRepository) GetSources() []resolver.Source {
	roots := r.cfg.roots()
	sources := make([]resolver.Source, 0, len(roots))
	for _, root := range roots {
		sources = append(sources, resolver.Source{Path: root.Path, Provider: root.Provider})
	}
	return sources
}
