package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
)

// Validate checks the configuration for values that would fail at startup.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("log.level", c.Log.Level, logLevel),
		criterio.Run("tasks.seed_file", c.Tasks.SeedFile, isFileIfSet),
	)
}

func logLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("unknown level %q", level)
	}
	return nil
}

// isFileIfSet validates that a path, when given, is an existing regular file.
func isFileIfSet(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}
