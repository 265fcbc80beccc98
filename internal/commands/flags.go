// Package commands wires the todo-tui command line.
package commands

import (
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/todo"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	SeedFile   string

	// Config is loaded by Load and available to the commands that call it
	Config *config.Config

	// Store is seeded by Load
	Store *todo.Store

	closer func()
}

// Load runs Setup once for commands that need the config and the task
// store. init never calls it, so a broken config file can be overwritten.
func (f *Flags) Load() error {
	if f.Store != nil {
		return nil
	}

	closer, err := Setup(f)
	if err != nil {
		return err
	}
	f.closer = closer
	return nil
}

// Close releases the log file opened by Load.
func (f *Flags) Close() {
	if f.closer != nil {
		f.closer()
		f.closer = nil
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return config.DefaultPath()
}

// Seed returns the starting task list: the seed file from the flag or the
// config, or the built-in list.
func (f *Flags) Seed() ([]todo.Task, error) {
	path := f.SeedFile
	if path == "" && f.Config != nil {
		path = f.Config.Tasks.SeedFile
	}
	if path == "" {
		return todo.DefaultSeed(), nil
	}
	return todo.LoadSeed(path)
}
