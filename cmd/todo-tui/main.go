// Package main is the entry point for the todo-tui application.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/urfave/cli/v3"

	"github.com/hy4ri/todo-tui/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// Fall back to runtime/debug.BuildInfo for `go install module@version`.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	if err := run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "todo-tui",
		Usage:     "A terminal to-do list",
		UsageText: "todo-tui [global options] [command [command options]]",
		Description: `Keeps a list of tasks for the session: add, edit, remove,
complete and search them with the keyboard.

Run 'todo-tui' with no arguments to open the list.
Run 'todo-tui init' to write a config file.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error); overrides the config",
				Sources:     cli.EnvVars("TODO_TUI_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <config dir>/todo-tui.log)",
				Sources:     cli.EnvVars("TODO_TUI_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODO_TUI_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "seed",
				Usage:       "YAML file with the starting task list",
				Sources:     cli.EnvVars("TODO_TUI_SEED"),
				Destination: &flags.SeedFile,
			},
		},
		// Config and store are loaded by the commands that use them, not in
		// Before, so init still works when the config file is broken.
		After: func(ctx context.Context, c *cli.Command) error {
			flags.Close()
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = commands.NewInitCmd(flags, os.Stdin, os.Stdout).Register(app)
	app = commands.NewListCmd(flags, os.Stdout).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'todo-tui --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app.Run(ctx, args)
}
