package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

const (
	helpColumnWidth = 34
	helpColumnGap   = 2
)

// helpSection is one titled group of key bindings.
type helpSection struct {
	title string
	rows  [][2]string
}

// HelpModel renders the key binding overlay. Sections sit side by side
// when the terminal is wide enough and stack otherwise.
type HelpModel struct {
	width, height int
	sections      []helpSection
}

// NewHelp creates an empty HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseHelpMsg{} }
		}
	}
	return h, nil
}

// SetItems loads key/description pairs, usually from
// KeymapData.HelpItems. A pair with only a key starts a new section;
// blank pairs are separators and are dropped.
func (h *HelpModel) SetItems(items [][]string) {
	h.sections = nil
	for _, item := range items {
		if len(item) < 2 {
			continue
		}
		k, desc := item[0], item[1]
		switch {
		case k == "" && desc == "":
			continue
		case desc == "":
			h.sections = append(h.sections, helpSection{title: k})
		default:
			if len(h.sections) == 0 {
				h.sections = append(h.sections, helpSection{})
			}
			last := &h.sections[len(h.sections)-1]
			last.rows = append(last.rows, [2]string{k, desc})
		}
	}
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.sections) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	columns := make([]string, 0, len(h.sections))
	for _, s := range h.sections {
		columns = append(columns, renderHelpSection(s))
	}

	var body string
	if h.width >= len(columns)*(helpColumnWidth+helpColumnGap) {
		pad := lipgloss.NewStyle().Width(helpColumnWidth).MarginRight(helpColumnGap)
		for i := range columns {
			columns[i] = pad.Render(columns[i])
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	} else {
		body = strings.Join(columns, "\n\n")
	}

	footer := styles.HelpDesc.Render("esc, ? or q to close")

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Keyboard Shortcuts"),
		"",
		body,
		"",
		lipgloss.PlaceHorizontal(h.width, lipgloss.Center, footer),
	)
}

func renderHelpSection(s helpSection) string {
	keyWidth := 0
	for _, r := range s.rows {
		keyWidth = max(keyWidth, lipgloss.Width(r[0]))
	}
	keyStyle := styles.HelpKey.Width(keyWidth).Align(lipgloss.Right).MarginRight(2)

	lines := make([]string, 0, len(s.rows)+1)
	if s.title != "" {
		lines = append(lines, styles.SectionHeader.Render(" "+s.title+" "))
	}
	for _, r := range s.rows {
		lines = append(lines, keyStyle.Render(r[0])+styles.HelpDesc.Render(r[1]))
	}
	return strings.Join(lines, "\n")
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}
