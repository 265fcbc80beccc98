// Package config handles loading and validating application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Tasks TasksConfig `yaml:"tasks"`
	Log   LogConfig   `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode         bool `yaml:"vim_mode"`
	ShowHints       bool `yaml:"show_hints"`
	NotifyOnAllDone bool `yaml:"notify_on_all_done"`
}

// TasksConfig controls where the starting task list comes from.
type TasksConfig struct {
	// SeedFile is an optional YAML task list read once at startup.
	SeedFile string `yaml:"seed_file,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"` // defaults to <config dir>/todo-tui.log
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:   true,
			ShowHints: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "todo-tui")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// DefaultPath returns the default configuration file path, or "" when the
// home directory cannot be resolved.
func DefaultPath() string {
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DefaultLogFile returns the log file used when none is configured.
func DefaultLogFile() string {
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo-tui.log")
}

// Load reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Template is the commented config written by `todo-tui init`.
const Template = `# todo-tui configuration
# Location: ~/.config/todo-tui/config.yaml

ui:
  # Vim-style keys: j/k to move, gg/G to jump, dd to remove, yy to copy
  vim_mode: true
  # Show key hints in the status bar
  show_hints: true
  # Send a desktop notification when every task is complete
  notify_on_all_done: false

tasks:
  # Optional YAML file with the starting list, e.g.
  #   tasks:
  #     - id: 0
  #       description: walk dog
  seed_file: ""

log:
  # trace, debug, info, warn, error
  level: info
  # Defaults to ~/.config/todo-tui/todo-tui.log
  file: ""
`

// WriteTemplate writes Template to path with owner-only permissions.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
