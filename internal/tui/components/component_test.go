package components

import (
	"testing"

	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/stretchr/testify/assert"
)

func TestFocusable(t *testing.T) {
	for name, c := range map[string]Focusable{
		"tasklist": NewTaskList(),
		"search":   NewSearch(),
	} {
		t.Run(name, func(t *testing.T) {
			c.Focus()
			assert.True(t, c.Focused())

			c.Blur()
			assert.False(t, c.Focused())
		})
	}
}

func TestDataReceiver(t *testing.T) {
	list := NewTaskList()
	list.SetSize(80, 10)

	var recv DataReceiver[[]todo.Task] = list
	recv.SetData([]todo.Task{{ID: 3, Description: "water the plants"}})

	assert.Equal(t, []todo.Task{{ID: 3, Description: "water the plants"}}, list.Tasks())
	assert.Contains(t, list.View(), "water the plants")
}
