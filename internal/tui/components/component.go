// Package components provides the UI building blocks of the to-do list:
// the task list, the description dialog, the search box and the help view.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a sub-model that handles a specific part of the UI.
// Components never touch the task store; they report user intent as
// messages and render whatever data they were last given.
type Component interface {
	// Init initializes the component and returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns an updated component and command.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component to a string.
	View() string

	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}

// Focusable is an optional interface for components that can receive focus.
type Focusable interface {
	Component
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// DataReceiver is an optional interface for components that render
// externally owned data.
type DataReceiver[T any] interface {
	SetData(data T)
}
