package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/tui/components"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// The dialog is modal: it takes every key while open. The draft is
	// copied before returning so a queued submit always sees it.
	if h.Dialog.Visible() {
		_, cmd := h.ModalComp.Update(msg)
		h.Dialog.UpdateDraft(h.ModalComp.Value())
		return cmd
	}

	if h.CurrentView == state.ViewHelp {
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	}

	if h.Focus == state.FocusSearch {
		_, cmd := h.SearchComp.Update(msg)
		return cmd
	}

	return h.handleListKeyMsg(msg)
}

// handleListKeyMsg maps keys on the list view to actions.
func (h *Handler) handleListKeyMsg(msg tea.KeyMsg) tea.Cmd {
	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok || action == "" {
		return nil
	}

	// Any real action clears a stale status line.
	h.StatusMsg = ""
	h.Err = nil

	list := h.TaskListComp

	switch action {
	case "up":
		list.MoveCursor(-1)
	case "down":
		list.MoveCursor(1)
	case "top":
		list.CursorTop()
	case "bottom":
		list.CursorBottom()
	case "half_up":
		list.MoveCursor(-list.HalfPage())
	case "half_down":
		list.MoveCursor(list.HalfPage())
	case "select":
		return list.ToggleSelected()
	case "clear":
		return list.ClearSelection()
	case "complete":
		return list.Activate()
	case "add":
		return h.handleAdd()
	case "edit":
		return h.handleEdit()
	case "remove":
		return h.handleRemove()
	case "copy":
		return h.handleCopy()
	case "search":
		return h.focusSearch()
	case "help":
		h.HelpComp.SetItems(h.Keymap.HelpItems())
		h.CurrentView = state.ViewHelp
	case "toggle_hints":
		h.ShowHints = !h.ShowHints
	case "quit":
		return tea.Quit
	}

	return nil
}

func (h *Handler) focusSearch() tea.Cmd {
	h.Focus = state.FocusSearch
	h.KeyState.Reset()
	return shiftFocus(h.TaskListComp, h.SearchComp)
}

func (h *Handler) focusList() {
	h.Focus = state.FocusList
	shiftFocus(h.SearchComp, h.TaskListComp)
}

func shiftFocus(from, to components.Focusable) tea.Cmd {
	from.Blur()
	return to.Focus()
}
