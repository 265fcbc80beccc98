// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// LightGray matches the outline used around the search box and list
	LightGray = lipgloss.AdaptiveColor{Light: "#D3D3D3", Dark: "#4A4A4A"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
	PrimaryColor = lipgloss.AdaptiveColor{Light: "#1976D2", Dark: "#64B5F6"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	// NOTE: No margins - they break viewport scroll sync line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)
)

// Task styles
var (
	// TaskItem is the base style for a task row
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(1)

	// TaskCursor is the style for the row under the cursor
	TaskCursor = lipgloss.NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// TaskMarked is the selection marker
	TaskMarked = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	// TaskCompleted strikes through a completed description
	TaskCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// ListFrame surrounds the task list
	ListFrame = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(LightGray).
			Padding(0, 1)

	// ListHeader is the column header row
	ListHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)

	// ListFooter shows the displayed row range
	ListFooter = lipgloss.NewStyle().
			Foreground(Subtle).
			Align(lipgloss.Right)

	// EmptyState is for the "no tasks" message
	EmptyState = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)
)

// Checkbox styles
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
	SelectionMark     = "●"
)

// Button styles mirror the contained, bold, rounded buttons of the header.
var (
	button = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF"))

	// Button is the default (primary) action
	Button = button.Background(PrimaryColor)

	// ButtonSuccess is for Add
	ButtonSuccess = button.Background(SuccessColor)

	// ButtonError is for Remove
	ButtonError = button.Background(ErrorColor)

	// ButtonDisabled is any button whose action is unavailable
	ButtonDisabled = lipgloss.NewStyle().
			Padding(0, 1).
			Faint(true).
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#333333"})

	// ButtonOutlined is the secondary dialog action
	ButtonOutlined = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(PrimaryColor)

	// ButtonFocused underlines the button that enter will press
	ButtonFocused = lipgloss.NewStyle().
			Underline(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarKey highlights a key in the hints
	StatusBarKey = lipgloss.NewStyle().
			Foreground(Highlight).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarText is for hint descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// SectionHeader groups help entries
	// NOTE: No margins here - they add extra lines that break viewport scroll sync.
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)
)

// Input styles
var (
	// Input is the style for text inputs
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(LightGray).
		Padding(0, 1)

	// InputFocused is for focused inputs
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// InputLabel is for input labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)
)
