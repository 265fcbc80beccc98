package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// Renderer draws the state. It never mutates the store.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	if r.CurrentView == state.ViewHelp {
		return r.HelpComp.View()
	}

	content := r.renderMainView()

	if r.Dialog.Visible() {
		content = r.renderOverlay(r.ModalComp.View())
	}

	return content
}

// renderMainView renders the header, search box, task list and status bar.
func (r *Renderer) renderMainView() string {
	header := r.renderHeader()
	search := r.SearchComp.View()
	list := styles.ListFrame.Render(r.TaskListComp.View())
	statusBar := r.renderStatusBar()

	body := lipgloss.JoinVertical(lipgloss.Left, header, search, list)

	// Pin the status bar to the bottom row.
	bodyHeight := r.Height - lipgloss.Height(statusBar)
	if bodyHeight > 0 {
		body = lipgloss.Place(r.Width, bodyHeight, lipgloss.Left, lipgloss.Top, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

// renderHeader renders the title and the Add/Edit/Remove buttons. Edit and
// Remove are greyed out unless exactly one task is selected.
func (r *Renderer) renderHeader() string {
	title := styles.Title.Render("Tasks")

	_, active := r.SingleSelected()
	edit := styles.ButtonDisabled.Render("Edit")
	remove := styles.ButtonDisabled.Render("Remove")
	if active {
		edit = styles.Button.Render("Edit")
		remove = styles.ButtonError.Render("Remove")
	}
	add := styles.ButtonSuccess.Render("Add")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, add, " ", edit, " ", remove)

	gap := r.Width - lipgloss.Width(title) - lipgloss.Width(buttons)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + buttons + "\n"
}

// renderStatusBar renders the status line with key hints on the right.
func (r *Renderer) renderStatusBar() string {
	left := ""
	if r.Err != nil {
		errStr := strings.ReplaceAll(r.Err.Error(), "\n", " ")
		left = styles.StatusBarError.Render("Error: " + errStr)
	} else if r.StatusMsg != "" {
		msgStr := strings.ReplaceAll(r.StatusMsg, "\n", " ")
		left = styles.StatusBarSuccess.Render(msgStr)
	}

	var right string
	if r.ShowHints {
		right = r.Help.ShortHelpView(r.Keymap.ShortHelp()) + " " +
			styles.StatusBarKey.Render("F1") + styles.StatusBarText.Render(":hide")
	} else {
		right = styles.StatusBarKey.Render("F1") + styles.StatusBarText.Render(":keys")
	}

	// Calculate spacing
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	// Ensure left doesn't overwhelm right
	if leftWidth+rightWidth+padding > r.Width {
		right = ""
		rightWidth = 0
	}

	gap := r.Width - leftWidth - rightWidth - padding
	if gap < 1 {
		gap = 1
	}

	return styles.StatusBar.Width(r.Width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderOverlay centers a dialog on the screen.
func (r *Renderer) renderOverlay(overlay string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
	)
}
