package components

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
	"github.com/hy4ri/todo-tui/internal/tui/utils"
)

const (
	emptyMessage = "No tasks to display"
	addTaskLabel = "Add task +"

	// header and footer lines around the viewport
	listChrome = 2
)

// TaskListModel manages a scrollable, multi-select list of tasks.
// It renders the rows it was last given and reports selection and
// completion changes as messages.
type TaskListModel struct {
	tasks         []todo.Task
	selected      map[int]bool
	cursor        int
	width, height int
	focused       bool
	viewportReady bool
	viewport      viewport.Model
}

// NewTaskList creates a new TaskListModel.
func NewTaskList() *TaskListModel {
	return &TaskListModel{
		tasks:    []todo.Task{},
		selected: map[int]bool{},
		focused:  true,
	}
}

// Init implements Component.
func (t *TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (t *TaskListModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return t, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			t.MoveCursor(-1)
		case tea.MouseButtonWheelDown:
			t.MoveCursor(1)
		}
	}
	return t, nil
}

// View implements Component.
func (t *TaskListModel) View() string {
	if len(t.tasks) == 0 {
		return t.renderEmpty()
	}

	var b strings.Builder
	b.WriteString(styles.ListHeader.Render(utils.PadRight("   Done  ID  Description", t.innerWidth())))
	b.WriteString("\n")

	lines := make([]string, 0, len(t.tasks))
	for i := range t.tasks {
		lines = append(lines, t.renderTask(i))
	}
	content := strings.Join(lines, "\n")

	if t.viewportReady {
		t.viewport.SetContent(content)
		t.syncViewportToCursor()
		b.WriteString(t.viewport.View())
	} else {
		b.WriteString(content)
	}

	b.WriteString("\n")
	b.WriteString(styles.ListFooter.Width(t.innerWidth()).Render(t.Footer()))

	return b.String()
}

// SetSize implements Component.
func (t *TaskListModel) SetSize(width, height int) {
	t.width = width
	t.height = height

	vpHeight := height - listChrome
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !t.viewportReady {
		t.viewport = viewport.New(width, vpHeight)
		t.viewport.Style = lipgloss.NewStyle()
		t.viewport.MouseWheelEnabled = true
		t.viewportReady = true
	} else {
		t.viewport.Width = width
		t.viewport.Height = vpHeight
	}
}

var (
	_ Focusable                 = (*TaskListModel)(nil)
	_ DataReceiver[[]todo.Task] = (*TaskListModel)(nil)
)

// Focus sets focus on the task list.
func (t *TaskListModel) Focus() tea.Cmd {
	t.focused = true
	return nil
}

// Blur removes focus.
func (t *TaskListModel) Blur() {
	t.focused = false
}

// Focused returns focus state.
func (t *TaskListModel) Focused() bool {
	return t.focused
}

// SetData implements DataReceiver.
func (t *TaskListModel) SetData(tasks []todo.Task) {
	t.SetTasks(tasks)
}

// SetTasks replaces the displayed rows. The cursor is clamped to the new
// row count.
func (t *TaskListModel) SetTasks(tasks []todo.Task) {
	t.tasks = tasks
	if t.cursor >= len(tasks) {
		t.cursor = len(tasks) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// Tasks returns the displayed rows.
func (t *TaskListModel) Tasks() []todo.Task {
	return t.tasks
}

// SetSelected replaces the highlighted ids.
func (t *TaskListModel) SetSelected(ids []int) {
	t.selected = make(map[int]bool, len(ids))
	for _, id := range ids {
		t.selected[id] = true
	}
}

// IsSelected reports whether the row with id is highlighted.
func (t *TaskListModel) IsSelected(id int) bool {
	return t.selected[id]
}

// Cursor returns the current cursor position.
func (t *TaskListModel) Cursor() int {
	return t.cursor
}

// SetCursor sets the cursor position.
func (t *TaskListModel) SetCursor(pos int) {
	if pos >= 0 && pos < len(t.tasks) {
		t.cursor = pos
	}
}

// CurrentTask returns the task under the cursor.
func (t *TaskListModel) CurrentTask() (todo.Task, bool) {
	if t.cursor >= 0 && t.cursor < len(t.tasks) {
		return t.tasks[t.cursor], true
	}
	return todo.Task{}, false
}

// MoveCursor moves the cursor by delta, clamped to the rows.
func (t *TaskListModel) MoveCursor(delta int) {
	t.cursor += delta
	if t.cursor >= len(t.tasks) {
		t.cursor = len(t.tasks) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// CursorTop moves the cursor to the first row.
func (t *TaskListModel) CursorTop() {
	t.cursor = 0
}

// CursorBottom moves the cursor to the last row.
func (t *TaskListModel) CursorBottom() {
	if len(t.tasks) > 0 {
		t.cursor = len(t.tasks) - 1
	}
}

// HalfPage returns half the visible row count, at least one.
func (t *TaskListModel) HalfPage() int {
	if !t.viewportReady || t.viewport.Height < 2 {
		return 1
	}
	return t.viewport.Height / 2
}

// ToggleSelected flips the highlight on the row under the cursor and
// reports the new selection in display order.
func (t *TaskListModel) ToggleSelected() tea.Cmd {
	task, ok := t.CurrentTask()
	if !ok {
		return nil
	}

	if t.selected[task.ID] {
		delete(t.selected, task.ID)
	} else {
		t.selected[task.ID] = true
	}

	return t.selectionCmd()
}

// ClearSelection removes every highlight.
func (t *TaskListModel) ClearSelection() tea.Cmd {
	if len(t.selected) == 0 {
		return nil
	}
	t.selected = map[int]bool{}
	return t.selectionCmd()
}

// SelectedIDs returns the highlighted ids that are currently displayed, in
// display order.
func (t *TaskListModel) SelectedIDs() []int {
	ids := make([]int, 0, len(t.selected))
	for _, task := range t.tasks {
		if t.selected[task.ID] {
			ids = append(ids, task.ID)
		}
	}
	return ids
}

func (t *TaskListModel) selectionCmd() tea.Cmd {
	ids := t.SelectedIDs()

	// Keep highlights on rows hidden by the search filter.
	var hidden []int
	for id := range t.selected {
		if !slices.Contains(ids, id) {
			hidden = append(hidden, id)
		}
	}
	slices.Sort(hidden)
	ids = append(ids, hidden...)

	return func() tea.Msg {
		return SelectionChangedMsg{IDs: ids}
	}
}

// Activate toggles completion of the row under the cursor, or presses
// "Add task +" when there are no rows.
func (t *TaskListModel) Activate() tea.Cmd {
	if len(t.tasks) == 0 {
		return func() tea.Msg { return AddRequestMsg{} }
	}
	return t.ToggleCompleteAtCursor()
}

// ToggleCompleteAtCursor reports a completion toggle for the row under the
// cursor.
func (t *TaskListModel) ToggleCompleteAtCursor() tea.Cmd {
	task, ok := t.CurrentTask()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return ToggleCompleteMsg{ID: task.ID}
	}
}

// Footer returns the displayed row range, e.g. "1–5 of 12". It is empty
// when there are no rows.
func (t *TaskListModel) Footer() string {
	total := len(t.tasks)
	if total == 0 {
		return ""
	}

	first, last := 1, total
	if t.viewportReady && t.viewport.Height > 0 {
		first = t.viewport.YOffset + 1
		last = t.viewport.YOffset + t.viewport.Height
		if last > total {
			last = total
		}
	}
	return utils.RowRange(first, last, total)
}

func (t *TaskListModel) innerWidth() int {
	if t.width <= 0 {
		return 40
	}
	return t.width
}

func (t *TaskListModel) renderEmpty() string {
	var b strings.Builder
	b.WriteString(styles.EmptyState.Render(emptyMessage))
	b.WriteString("\n\n")

	btn := styles.ButtonOutlined.Render(addTaskLabel)
	if t.focused {
		btn = styles.ButtonFocused.Render(btn)
	}
	b.WriteString(btn)

	return lipgloss.Place(t.innerWidth(), max(t.height, 3), lipgloss.Center, lipgloss.Center, b.String())
}

// renderTask renders a single task line.
func (t *TaskListModel) renderTask(i int) string {
	task := t.tasks[i]

	cursor := "  "
	if i == t.cursor && t.focused {
		cursor = "> "
	}

	mark := " "
	if t.selected[task.ID] {
		mark = styles.TaskMarked.Render(styles.SelectionMark)
	}

	checkbox := styles.CheckboxUnchecked
	if task.Complete {
		checkbox = styles.CheckboxChecked
	}

	id := utils.PadRight(strconv.Itoa(task.ID), 3)
	prefix := cursor + mark + " " + checkbox + "  " + id + " "

	descWidth := t.innerWidth() - lipgloss.Width(prefix) - 2
	desc := utils.TruncateString(task.Description, descWidth)
	if task.Complete {
		desc = styles.TaskCompleted.Render(desc)
	}

	style := styles.TaskItem
	if i == t.cursor && t.focused {
		style = styles.TaskCursor
	}

	return style.Render(prefix + desc)
}

// syncViewportToCursor ensures the viewport shows the cursor line.
func (t *TaskListModel) syncViewportToCursor() {
	vpHeight := t.viewport.Height
	if vpHeight <= 0 {
		return
	}

	currentTop := t.viewport.YOffset
	currentBottom := currentTop + vpHeight - 1

	if t.cursor < currentTop {
		t.viewport.SetYOffset(t.cursor)
	} else if t.cursor > currentBottom {
		t.viewport.SetYOffset(t.cursor - vpHeight + 1)
	}
}
