package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/components"
)

// View represents the current view/screen.
type View int

const (
	ViewList View = iota
	ViewHelp
)

// Focus represents which input currently receives keys on the list view.
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
)

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Store  *todo.Store
	Config *config.Config

	// Dialog controller for add/edit
	Dialog *Dialog

	// View state
	CurrentView View
	Focus       Focus

	// Selection holds ids reported by the task list. The tasks themselves
	// are always re-derived through SelectedTasks.
	Selection []int

	// Search state
	SearchQuery string

	// UI state
	Err       error
	StatusMsg string
	Width     int
	Height    int
	ShowHints bool

	// Key handling
	Keymap   KeymapData
	KeyState *KeyState
	Help     help.Model

	// UI Components
	TaskListComp *components.TaskListModel
	ModalComp    *components.ModalModel
	SearchComp   *components.SearchModel
	HelpComp     *components.HelpModel
}

// New creates the state for a session over store.
func New(store *todo.Store, cfg *config.Config) *State {
	return &State{
		Store:        store,
		Config:       cfg,
		Dialog:       NewDialog(store),
		CurrentView:  ViewList,
		Focus:        FocusList,
		ShowHints:    cfg.UI.ShowHints,
		Keymap:       DefaultKeymap(cfg.UI.VimMode),
		KeyState:     &KeyState{},
		Help:         help.New(),
		TaskListComp: components.NewTaskList(),
		ModalComp:    components.NewModal(),
		SearchComp:   components.NewSearch(),
		HelpComp:     components.NewHelp(),
	}
}

// VisibleTasks returns the store filtered by the current search query.
func (s *State) VisibleTasks() []todo.Task {
	return s.Store.Filter(s.SearchQuery)
}

// SelectedTasks resolves the selection against the store.
func (s *State) SelectedTasks() []todo.Task {
	return s.Store.Lookup(s.Selection)
}

// SingleSelected returns the task Edit and Remove act on. It reports false
// unless exactly one selected id still exists.
func (s *State) SingleSelected() (todo.Task, bool) {
	selected := s.SelectedTasks()
	if len(selected) != 1 {
		return todo.Task{}, false
	}
	return selected[0], true
}

// HasSelection reports whether any selected id still exists.
func (s *State) HasSelection() bool {
	return len(s.SelectedTasks()) > 0
}
