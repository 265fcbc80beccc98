package state

import (
	"testing"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Selection(t *testing.T) {
	store, err := todo.NewStore(todo.DefaultSeed())
	require.NoError(t, err)

	s := New(store, config.DefaultConfig())
	assert.False(t, s.HasSelection())

	s.Selection = []int{4, 1}
	assert.True(t, s.HasSelection())
	assert.Equal(t, []int{1, 4}, ids(s.SelectedTasks()), "store order, not selection order")
	_, ok := s.SingleSelected()
	assert.False(t, ok, "two selected tasks are not a single selection")

	require.NoError(t, store.Remove(4))
	only, ok := s.SingleSelected()
	require.True(t, ok, "a stale id does not count")
	assert.Equal(t, 1, only.ID)

	require.NoError(t, store.Update(1, "feed Beaker again"))
	only, _ = s.SingleSelected()
	assert.Equal(t, "feed Beaker again", only.Description, "tasks are re-derived on read")

	require.NoError(t, store.Remove(1))
	assert.False(t, s.HasSelection())
}

func ids(tasks []todo.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestState_VisibleTasks(t *testing.T) {
	store, err := todo.NewStore(todo.DefaultSeed())
	require.NoError(t, err)

	s := New(store, config.DefaultConfig())
	assert.Len(t, s.VisibleTasks(), 5)

	s.SearchQuery = "Beaker"
	assert.Len(t, s.VisibleTasks(), 2)
}
