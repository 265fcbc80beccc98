package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/hy4ri/todo-tui/internal/todo"
)

// Setup loads and validates the config, installs the global logger and
// seeds the task store. Flags override the config file. The returned
// closer releases the log file.
func Setup(flags *Flags) (func(), error) {
	noop := func() {}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return noop, fmt.Errorf("load config: %w", err)
	}

	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		cfg.Log.File = flags.LogFile
	}
	if flags.SeedFile != "" {
		cfg.Tasks.SeedFile = flags.SeedFile
	}

	if err := cfg.Validate(); err != nil {
		return noop, fmt.Errorf("invalid config: %w", err)
	}

	// Always log to a file; use explicit path or default to <config dir>/todo-tui.log
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = config.DefaultLogFile()
	}

	logger, closer, err := logging.New(cfg.Log.Level, logFile)
	if err != nil {
		return noop, fmt.Errorf("setup logger: %w", err)
	}
	log.Logger = logger
	flags.Config = cfg

	seed, err := flags.Seed()
	if err != nil {
		closer()
		return noop, fmt.Errorf("load seed: %w", err)
	}

	store, err := todo.NewStore(seed)
	if err != nil {
		closer()
		return noop, fmt.Errorf("seed tasks: %w", err)
	}
	flags.Store = store

	log.Debug().
		Str("config", flags.ConfigPath).
		Str("seed", cfg.Tasks.SeedFile).
		Int("tasks", store.Len()).
		Msg("setup complete")

	return closer, nil
}
