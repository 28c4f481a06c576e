// Package config loads the optional YAML document the sheetcli front end
// reads at startup: print formatting, logging verbosity, and grid-bound
// overrides for tests and constrained environments.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/halvorsen/spreadsheet/packages/spreadsheet"
)

// Config is the sheetcli front end's tunable settings. Every field has a
// package-level default applied by Load when the field is absent from the
// document (or the document itself is absent).
type Config struct {
	PrintDelimiter string `yaml:"printDelimiter"`
	LogLevel       string `yaml:"logLevel"`
	MaxRows        int    `yaml:"maxRows"`
	MaxCols        int    `yaml:"maxCols"`
}

// Default returns the configuration sheetcli uses when no file is given.
func Default() Config {
	return Config{
		PrintDelimiter: "\t",
		LogLevel:       "info",
		MaxRows:        spreadsheet.MaxRows,
		MaxCols:        spreadsheet.MaxCols,
	}
}

// Load reads and parses the YAML document at path, filling in Default()
// for any field the document omits. A missing path is not an error: Load
// returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	// Decode into a struct whose fields default to the zero value, then
	// only overwrite cfg where the document actually set something, so a
	// partial document still inherits the rest of Default().
	var parsed struct {
		PrintDelimiter *string `yaml:"printDelimiter"`
		LogLevel       *string `yaml:"logLevel"`
		MaxRows        *int    `yaml:"maxRows"`
		MaxCols        *int    `yaml:"maxCols"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if parsed.PrintDelimiter != nil {
		cfg.PrintDelimiter = *parsed.PrintDelimiter
	}
	if parsed.LogLevel != nil {
		cfg.LogLevel = *parsed.LogLevel
	}
	if parsed.MaxRows != nil {
		cfg.MaxRows = *parsed.MaxRows
	}
	if parsed.MaxCols != nil {
		cfg.MaxCols = *parsed.MaxCols
	}

	if cfg.MaxRows > spreadsheet.MaxRows {
		return Config{}, fmt.Errorf("config: maxRows %d exceeds the grid's hard cap %d", cfg.MaxRows, spreadsheet.MaxRows)
	}
	if cfg.MaxCols > spreadsheet.MaxCols {
		return Config{}, fmt.Errorf("config: maxCols %d exceeds the grid's hard cap %d", cfg.MaxCols, spreadsheet.MaxCols)
	}

	return cfg, nil
}
