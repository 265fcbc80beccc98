package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

const (
	modalPlaceholder = "give Beaker a treat"
	modalCharLimit   = 256
	modalMinWidth    = 30
	modalMaxWidth    = 60
)

// Modal focus positions, cycled with tab.
const (
	modalFocusInput = iota
	modalFocusCancel
	modalFocusSubmit
	modalFocusCount
)

// ModalModel renders the add/edit dialog: a header, one text field and
// Cancel/Submit buttons. It holds no task data of its own. The owner reads
// Value after every key it forwards, so the draft never lags the field.
type ModalModel struct {
	input         textinput.Model
	visible       bool
	mode          string
	focusIndex    int
	width, height int
}

// NewModal creates a hidden ModalModel.
func NewModal() *ModalModel {
	ti := textinput.New()
	ti.Placeholder = modalPlaceholder
	ti.CharLimit = modalCharLimit
	ti.Prompt = ""

	return &ModalModel{
		input: ti,
		mode:  "ADD",
	}
}

// Init implements Component.
func (m *ModalModel) Init() tea.Cmd {
	return nil
}

// SetState syncs the modal with the dialog controller. Opening the modal
// loads draft into the field and focuses it.
func (m *ModalModel) SetState(visible bool, mode, draft string) tea.Cmd {
	opening := visible && !m.visible
	m.visible = visible
	m.mode = mode

	if !visible {
		m.input.Blur()
		m.input.SetValue("")
		return nil
	}

	if m.input.Value() != draft {
		m.input.SetValue(draft)
		m.input.CursorEnd()
	}

	if opening {
		m.focusIndex = modalFocusInput
		return m.input.Focus()
	}
	return nil
}

// Visible reports whether the modal is shown.
func (m *ModalModel) Visible() bool {
	return m.visible
}

// Title returns the header, e.g. "EDIT Task - Enter task description".
func (m *ModalModel) Title() string {
	return m.mode + " Task - Enter task description"
}

// Value returns the text currently in the field.
func (m *ModalModel) Value() string {
	return m.input.Value()
}

// Update implements Component.
func (m *ModalModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return DialogCancelMsg{} }
	case "tab", "down":
		m.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.cycleFocus(-1)
		return m, nil
	case "enter":
		if m.focusIndex == modalFocusCancel {
			return m, func() tea.Msg { return DialogCancelMsg{} }
		}
		return m, func() tea.Msg { return DialogSubmitMsg{} }
	}

	if m.focusIndex != modalFocusInput {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m *ModalModel) cycleFocus(delta int) {
	m.focusIndex = (m.focusIndex + delta + modalFocusCount) % modalFocusCount
	if m.focusIndex == modalFocusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// View implements Component.
func (m *ModalModel) View() string {
	if !m.visible {
		return ""
	}

	width := m.boxWidth()
	m.input.Width = width - 4

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(m.Title()))
	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Description"))
	b.WriteString("\n")

	inputStyle := styles.Input
	if m.focusIndex == modalFocusInput {
		inputStyle = styles.InputFocused
	}
	b.WriteString(inputStyle.Width(width).Render(m.input.View()))
	b.WriteString("\n\n")

	cancel := styles.ButtonOutlined.Render("Cancel")
	if m.focusIndex == modalFocusCancel {
		cancel = styles.ButtonFocused.Render(cancel)
	}
	submit := styles.Button.Render("Submit")
	if m.focusIndex == modalFocusSubmit {
		submit = styles.ButtonFocused.Render(submit)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, cancel, "  ", submit)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, buttons))

	return styles.Dialog.Render(b.String())
}

func (m *ModalModel) boxWidth() int {
	w := m.width / 2
	if w < modalMinWidth {
		w = modalMinWidth
	}
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	return w
}

// SetSize implements Component.
func (m *ModalModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
