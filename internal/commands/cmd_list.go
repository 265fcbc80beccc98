package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

type ListCmd struct {
	flags *Flags
	out   io.Writer

	// flags
	search     string
	jsonOutput bool
}

// NewListCmd creates a new list command writing to out.
func NewListCmd(flags *Flags, out io.Writer) *ListCmd {
	return &ListCmd{flags: flags, out: out}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "Print the starting task list",
		UsageText: "todo-tui list [--search query] [--json]",
		Description: `Prints the seeded tasks, one "[x] id description" line each.

--search applies the same case-insensitive filter as the search box.
Use --json for machine-readable output.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "only tasks whose description contains this text",
				Destination: &cmd.search,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as a JSON array",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(_ context.Context, _ *cli.Command) error {
	if err := cmd.flags.Load(); err != nil {
		return err
	}

	tasks := cmd.flags.Store.Filter(cmd.search)

	if cmd.jsonOutput {
		enc := json.NewEncoder(cmd.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("encode tasks: %w", err)
		}
		return nil
	}

	if len(tasks) == 0 {
		fmt.Fprintln(cmd.out, "No tasks to display")
		return nil
	}

	for _, t := range tasks {
		fmt.Fprintln(cmd.out, t.String())
	}
	return nil
}
