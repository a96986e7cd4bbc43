// Package config reads the optional blockweld.toml at the project root.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config selects which files take part in a merge. Include and Exclude are
// doublestar globs matched against paths relative to the root; Ignore lists
// directory names skipped entirely during the walk.
type Config struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
	Ignore  []string `toml:"ignore"`
}

// ReadConfig loads blockweld.toml from dir. A missing file yields the
// default config and no error; a present but unreadable or invalid file
// yields the default config and the error.
func ReadConfig(dir string) (*Config, error) {
	defaultConfig := &Config{
		Include: []string{"**/*.go"},
		Exclude: []string{},
		Ignore:  []string{},
	}

	fileName := filepath.Join(dir, "blockweld.toml")
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig, nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig, err
	}
	config := defaultConfig
	if err := toml.Unmarshal(file, &config); err != nil {
		return defaultConfig, err
	}
	if len(config.Include) == 0 {
		config.Include = []string{"**/*.go"}
	}
	return config, nil
}
