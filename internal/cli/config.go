package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the generate command's flags for file-based runs. Flags
// set explicitly on the command line override config values.
type Config struct {
	// Settings is the path to the settings list (CUE or JSON).
	Settings string `yaml:"settings"`

	// Output is the path of the generated JSON database.
	Output string `yaml:"output"`

	// SkipLog is the path of the skip log.
	SkipLog string `yaml:"skip_log"`

	// Database is an optional SQLite path; empty disables SQLite output.
	Database string `yaml:"database"`

	// Table is an optional space-group table overriding the bundled one.
	Table string `yaml:"table"`

	// MaxIndex is the sampling window bound.
	MaxIndex int `yaml:"max_index"`
}

// DefaultConfig returns the generate defaults.
func DefaultConfig() Config {
	return Config{
		Output:   "reflection_conditions.json",
		SkipLog:  "skipped_symbols.log",
		MaxIndex: 8,
	}
}

// LoadConfig reads a YAML config file over the defaults. Unknown fields
// are rejected so typos surface instead of silently using defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.MaxIndex <= 0 {
		return cfg, fmt.Errorf("config %s: max_index must be positive", path)
	}
	return cfg, nil
}
