package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hy4ri/todo-tui/internal/config"
)

type InitCmd struct {
	flags *Flags
	in    io.Reader
	out   io.Writer

	// flags
	force bool
}

// NewInitCmd creates a new init command reading confirmations from in.
func NewInitCmd(flags *Flags, in io.Reader, out io.Writer) *InitCmd {
	return &InitCmd{flags: flags, in: in, out: out}
}

// Register adds the init command to the application
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a template config file",
		UsageText: "todo-tui init [--force]",
		Description: `Writes a commented config file to the --config path
(default ~/.config/todo-tui/config.yaml).

Asks before overwriting an existing file unless --force is set.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InitCmd) run(_ context.Context, _ *cli.Command) error {
	path := cmd.flags.ConfigPath
	if path == "" {
		return fmt.Errorf("no config path: set --config")
	}

	if _, err := os.Stat(path); err == nil && !cmd.force {
		fmt.Fprintf(cmd.out, "Config file already exists: %s\n", path)
		fmt.Fprint(cmd.out, "Overwrite? [y/N]: ")

		var response string
		_, _ = fmt.Fscanln(cmd.in, &response)

		if response != "y" && response != "Y" {
			fmt.Fprintln(cmd.out, "Aborted.")
			return nil
		}
	}

	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Config file created: %s\n", path)
	return nil
}
