package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	store, err := todo.NewStore(todo.DefaultSeed())
	require.NoError(t, err)

	app := NewApp(store, config.DefaultConfig(), "beaker")
	app.Init()

	assert.Equal(t, "Loading...", app.View())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := model.View()

	assert.Contains(t, view, "feed Beaker")
	assert.Contains(t, view, "give Beaker a treat")
	assert.NotContains(t, view, "walk dog")
	assert.Contains(t, view, "1–2 of 2")
}
