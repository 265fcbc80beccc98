package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hy4ri/todo-tui/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	// flags
	search string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"s"},
			Usage:       "start with this search filter",
			Destination: &cmd.search,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if err := cmd.flags.Load(); err != nil {
		return err
	}

	app := tui.NewApp(cmd.flags.Store, cmd.flags.Config, cmd.search)

	log.Info().
		Int("tasks", cmd.flags.Store.Len()).
		Str("search", cmd.search).
		Msg("starting tui")

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
