package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/hy4ri/todo-tui/internal/tui/components"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/rs/zerolog"
)

// Handler applies messages to the state.
type Handler struct {
	*state.State
	log zerolog.Logger

	// Side effects, replaced in tests.
	sendNotification func(title, message string) error
	writeClipboard   func(text string) error
}

// NewHandler creates a Handler over s.
func NewHandler(s *state.State) *Handler {
	return &Handler{
		State:            s,
		log:              logging.Component("tui"),
		sendNotification: desktopNotify,
		writeClipboard:   clipboardWrite,
	}
}

// Update handles a message and returns the follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		if h.CurrentView != state.ViewList || h.Dialog.Visible() {
			return nil
		}
		_, cmd := h.TaskListComp.Update(msg)
		return cmd

	case tea.WindowSizeMsg:
		h.handleWindowSizeMsg(msg)
		return nil

	case errMsg:
		h.Err = msg.err
		h.StatusMsg = ""
		return nil

	case statusMsg:
		h.StatusMsg = msg.msg
		h.Err = nil
		return nil

	case components.SelectionChangedMsg:
		h.Selection = msg.IDs
		h.refresh()
		return nil

	case components.ToggleCompleteMsg:
		return h.handleToggleComplete(msg.ID)

	case components.AddRequestMsg:
		return h.handleAdd()

	case components.DialogSubmitMsg:
		return h.handleDialogSubmit()

	case components.DialogCancelMsg:
		h.Dialog.Cancel()
		return h.refresh()

	case components.SearchChangedMsg:
		h.SearchQuery = msg.Query
		h.refresh()
		return nil

	case components.SearchDoneMsg:
		h.focusList()
		return nil

	case components.CloseHelpMsg:
		h.CurrentView = state.ViewList
		return nil
	}

	// Cursor blink and other input internals.
	if h.Dialog.Visible() {
		_, cmd := h.ModalComp.Update(msg)
		return cmd
	}
	if h.Focus == state.FocusSearch {
		_, cmd := h.SearchComp.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	h.Width = msg.Width
	h.Height = msg.Height
	h.Help.Width = msg.Width

	w, listHeight := h.ListSize()
	h.TaskListComp.SetSize(w, listHeight)
	h.SearchComp.SetSize(w, searchHeight)
	h.ModalComp.SetSize(msg.Width, msg.Height)
	h.HelpComp.SetSize(msg.Width, msg.Height)
}

// Layout rows outside the task list: header, search label and box, status bar.
const (
	headerHeight    = 2
	searchHeight    = 4
	statusBarHeight = 1
	framePadding    = 4
)

// ListSize returns the width and height available to the task list.
func (h *Handler) ListSize() (int, int) {
	w := h.Width - framePadding
	if w < 10 {
		w = 10
	}
	height := h.Height - headerHeight - searchHeight - statusBarHeight - framePadding
	if height < 3 {
		height = 3
	}
	return w, height
}
