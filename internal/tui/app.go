// Package tui provides the terminal user interface for the to-do list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/logic"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application. State lives in
// state.State; logic.Handler mutates it and ui.Renderer draws it.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates the application over store. initialQuery pre-fills the
// search box.
func NewApp(store *todo.Store, cfg *config.Config, initialQuery string) *App {
	s := state.New(store, cfg)
	s.SearchQuery = initialQuery

	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
