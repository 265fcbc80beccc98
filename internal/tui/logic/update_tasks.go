package logic

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/todo"
)

// handleAdd opens the dialog with an empty draft.
func (h *Handler) handleAdd() tea.Cmd {
	h.Dialog.OpenForAdd()
	h.KeyState.Reset()
	return h.refresh()
}

// handleEdit opens the dialog on the selected task.
func (h *Handler) handleEdit() tea.Cmd {
	task, ok := h.SingleSelected()
	if !ok {
		h.StatusMsg = h.selectionHint("edit")
		return nil
	}

	h.Dialog.OpenForEdit(task)
	h.KeyState.Reset()
	return h.refresh()
}

// handleRemove deletes the selected task.
func (h *Handler) handleRemove() tea.Cmd {
	task, ok := h.SingleSelected()
	if !ok {
		h.StatusMsg = h.selectionHint("remove")
		return nil
	}

	if err := h.Store.Remove(task.ID); err != nil {
		return h.storeErr(err)
	}

	h.refresh()
	return func() tea.Msg {
		return statusMsg{msg: fmt.Sprintf("Removed %q", task.Description)}
	}
}

// handleToggleComplete flips a task's completion and fires the all-done
// notification when the last open task is checked off.
func (h *Handler) handleToggleComplete(id int) tea.Cmd {
	if err := h.Store.ToggleComplete(id); err != nil {
		return h.storeErr(err)
	}
	h.refresh()

	task, _ := h.Store.Get(id)
	if task.Complete && h.allDone() && h.Config.UI.NotifyOnAllDone {
		return h.notifyAllDoneCmd()
	}
	return nil
}

// handleDialogSubmit commits the draft. The dialog closes whether or not
// the store changed.
func (h *Handler) handleDialogSubmit() tea.Cmd {
	mode := h.Dialog.Mode()
	changed := h.Dialog.Submit()
	h.refresh()

	if !changed {
		return nil
	}
	return func() tea.Msg {
		return statusMsg{msg: fmt.Sprintf("Task %s", pastTense(mode.String()))}
	}
}

// handleCopy copies the selected descriptions, one per line.
func (h *Handler) handleCopy() tea.Cmd {
	selected := h.SelectedTasks()
	if len(selected) == 0 {
		return nil
	}

	lines := make([]string, 0, len(selected))
	for _, t := range selected {
		lines = append(lines, t.Description)
	}
	content := strings.Join(lines, "\n")

	write := h.writeClipboard
	log := h.log
	return func() tea.Msg {
		if err := write(content); err != nil {
			log.Warn().Err(err).Msg("clipboard write failed")
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		if len(lines) == 1 {
			return statusMsg{msg: "Copied: " + lines[0]}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %d tasks", len(lines))}
	}
}

// storeErr turns a store failure into a status-bar error. Stale ids are
// expected after concurrent edits through the dialog and never crash.
func (h *Handler) storeErr(err error) tea.Cmd {
	if todo.IsNotFound(err) {
		h.log.Debug().Err(err).Msg("stale task id")
	} else {
		h.log.Error().Err(err).Msg("store operation failed")
	}
	h.refresh()
	return func() tea.Msg { return errMsg{err: err} }
}

// selectionHint explains why an action that needs one task did nothing.
func (h *Handler) selectionHint(action string) string {
	if h.HasSelection() {
		return "Select a single task to " + action
	}
	return "Select a task to " + action
}

func (h *Handler) allDone() bool {
	n := h.Store.Len()
	return n > 0 && h.Store.CountComplete() == n
}

func pastTense(mode string) string {
	if mode == "EDIT" {
		return "updated"
	}
	return "added"
}
