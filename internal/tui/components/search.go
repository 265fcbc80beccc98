package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

const searchPlaceholder = "beaker"

var _ Focusable = (*SearchModel)(nil)

// SearchModel is the single-line search box above the task list.
type SearchModel struct {
	input textinput.Model
	width int
}

// NewSearch creates an empty, unfocused SearchModel.
func NewSearch() *SearchModel {
	ti := textinput.New()
	ti.Placeholder = searchPlaceholder
	ti.Prompt = "/ "
	ti.CharLimit = 128

	return &SearchModel{input: ti}
}

// Init implements Component.
func (s *SearchModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Enter and esc hand focus back to the list;
// everything else edits the query.
func (s *SearchModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc", "tab":
			return s, func() tea.Msg { return SearchDoneMsg{} }
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if after := s.input.Value(); after != before {
		changed := func() tea.Msg { return SearchChangedMsg{Query: after} }
		return s, tea.Batch(cmd, changed)
	}
	return s, cmd
}

// View implements Component.
func (s *SearchModel) View() string {
	style := styles.Input
	if s.input.Focused() {
		style = styles.InputFocused
	}

	label := styles.InputLabel.Render("Search")
	if s.width > 4 {
		s.input.Width = s.width - 6
		style = style.Width(s.width - 2)
	}
	return label + "\n" + style.Render(s.input.View())
}

// SetSize implements Component.
func (s *SearchModel) SetSize(width, height int) {
	s.width = width
}

// Focus moves the cursor into the search box.
func (s *SearchModel) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes focus.
func (s *SearchModel) Blur() {
	s.input.Blur()
}

// Focused returns focus state.
func (s *SearchModel) Focused() bool {
	return s.input.Focused()
}

// Value returns the current query.
func (s *SearchModel) Value() string {
	return s.input.Value()
}

// SetValue replaces the query without emitting a change.
func (s *SearchModel) SetValue(q string) {
	s.input.SetValue(q)
}
