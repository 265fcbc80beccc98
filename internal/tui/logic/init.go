package logic

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }

// Init syncs every component with the store and returns the initial
// command.
func (h *Handler) Init() tea.Cmd {
	h.HelpComp.SetItems(h.Keymap.HelpItems())
	h.SearchComp.SetValue(h.SearchQuery)
	h.refresh()
	return nil
}

// refresh pushes the current store contents, search filter and selection
// into the components. Every mutation ends with a refresh.
func (h *Handler) refresh() tea.Cmd {
	h.pruneSelection()

	h.TaskListComp.SetData(h.VisibleTasks())
	h.TaskListComp.SetSelected(h.Selection)
	h.Keymap.SetSelectionCount(len(h.SelectedTasks()))

	snap := h.Dialog.Snapshot()
	return h.ModalComp.SetState(snap.Visible, snap.Mode, snap.Draft)
}

// pruneSelection drops ids that no longer exist in the store.
func (h *Handler) pruneSelection() {
	if len(h.Selection) == 0 {
		return
	}

	kept := make([]int, 0, len(h.Selection))
	for _, id := range h.Selection {
		if _, ok := h.Store.Get(id); ok {
			kept = append(kept, id)
		}
	}
	h.Selection = kept
}
