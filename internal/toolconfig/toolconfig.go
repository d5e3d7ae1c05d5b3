// Package toolconfig loads the CLI's own tool configuration (search roots,
// default config name, output format) from .defaultslist.toml, kept distinct
// from the resolver domain's own config documents. It never participates in
// defaults-list resolution itself.
//
// Copyright (c) 2024 BkpDir Contributors
// Licensed under the MIT License
package toolconfig

import (
	"os"

	"github.com/BurntSushi/toml"
)

// ToolConfig is the on-disk shape of .defaultslist.toml.
type ToolConfig struct {
	// SearchPaths are config search roots, in priority order.
	SearchPaths []string `toml:"search_paths"`
	// ConfigName is the default primary config name used when `resolve` is
	// run without a positional argument.
	ConfigName string `toml:"config_name"`
	// OutputFormat selects how `resolve` prints its result: "yaml" or "lines".
	OutputFormat string `toml:"output_format"`
}

// Default returns the configuration used when no .defaultslist.toml is
// found. It sets no SearchPaths, so the resolve command falls back to its
// built-in "./conf" root.
func Default() ToolConfig {
	return ToolConfig{
		OutputFormat: "yaml",
	}
}

// Load reads path and merges it over Default(). A missing file is not an
// error: Default() is returned unchanged.
func Load(path string) (ToolConfig, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var onDisk ToolConfig
	if _, err := toml.DecodeFile(path, &onDisk); err != nil {
		return ToolConfig{}, err
	}

	if len(onDisk.SearchPaths) > 0 {
		cfg.SearchPaths = onDisk.SearchPaths
	}
	if onDisk.ConfigName != "" {
		cfg.ConfigName = onDisk.ConfigName
	}
	if onDisk.OutputFormat != "" {
		cfg.OutputFormat = onDisk.OutputFormat
	}
	return cfg, nil
}
