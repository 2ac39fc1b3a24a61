// Package config loads project-level defaults from apolo.yaml. Command-line
// flags override config values, which override built-in defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds the optional per-project settings.
type ProjectConfig struct {
	// RepoPath is the local git working tree releases are published into.
	RepoPath string `yaml:"repo_path"`

	// Schema is the default database schema name.
	Schema string `yaml:"schema"`

	// CommitMessage overrides the generated commit message.
	CommitMessage string `yaml:"commit_message,omitempty"`

	// Timeout bounds each external git invocation, e.g. "3m".
	Timeout string `yaml:"timeout,omitempty"`

	// KeepWorkspace leaves the extraction directory in place for debugging.
	KeepWorkspace bool `yaml:"keep_workspace,omitempty"`
}

const ConfigFileName = "apolo.yaml"

// Load reads apolo.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
