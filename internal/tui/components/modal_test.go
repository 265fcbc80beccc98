package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens any batch into its messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestModal_SetState(t *testing.T) {
	m := NewModal()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())

	m.SetState(true, "EDIT", "walk dog")
	assert.True(t, m.Visible())
	assert.Equal(t, "walk dog", m.Value())
	assert.Equal(t, "EDIT Task - Enter task description", m.Title())
	assert.Contains(t, m.View(), "EDIT Task - Enter task description")

	m.SetState(false, "EDIT", "")
	assert.False(t, m.Visible())
	assert.Empty(t, m.Value())
}

func TestModal_Typing(t *testing.T) {
	m := NewModal()
	m.SetState(true, "ADD", "")

	for _, r := range "wash" {
		_, cmd := m.Update(runes(string(r)))
		for _, msg := range collect(cmd) {
			assert.NotIsType(t, DialogSubmitMsg{}, msg)
			assert.NotIsType(t, DialogCancelMsg{}, msg)
		}
	}
	assert.Equal(t, "wash", m.Value())

	t.Run("reopening resets the field", func(t *testing.T) {
		m.SetState(false, "ADD", "")
		m.SetState(true, "EDIT", "walk dog")
		assert.Equal(t, "walk dog", m.Value())
	})
}

func TestModal_Buttons(t *testing.T) {
	t.Run("enter submits from the field", func(t *testing.T) {
		m := NewModal()
		m.SetState(true, "ADD", "x")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, []tea.Msg{DialogSubmitMsg{}}, collect(cmd))
	})

	t.Run("enter on cancel cancels", func(t *testing.T) {
		m := NewModal()
		m.SetState(true, "ADD", "x")

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, []tea.Msg{DialogCancelMsg{}}, collect(cmd))
	})

	t.Run("esc cancels", func(t *testing.T) {
		m := NewModal()
		m.SetState(true, "ADD", "")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, []tea.Msg{DialogCancelMsg{}}, collect(cmd))
	})

	t.Run("typing on a button does nothing", func(t *testing.T) {
		m := NewModal()
		m.SetState(true, "ADD", "x")

		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		_, cmd := m.Update(runes("z"))
		assert.Nil(t, cmd)
		assert.Equal(t, "x", m.Value())
	})

	t.Run("hidden modal ignores input", func(t *testing.T) {
		m := NewModal()
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
	})
}
