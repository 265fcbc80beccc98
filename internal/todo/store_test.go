package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, seed ...Task) *Store {
	t.Helper()
	s, err := NewStore(seed)
	require.NoError(t, err)
	return s
}

func TestStore_Create(t *testing.T) {
	t.Run("empty store starts at zero", func(t *testing.T) {
		s := newStore(t)

		got := s.Create("first")
		assert.Equal(t, 0, got.ID)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("id is one past the max", func(t *testing.T) {
		s := newStore(t,
			Task{ID: 4, Description: "a"},
			Task{ID: 9, Description: "b"},
			Task{ID: 2, Description: "c"},
		)

		got := s.Create("d")
		assert.Equal(t, 10, got.ID)
		assert.Equal(t, 4, s.Len())
	})

	t.Run("trims and appends incomplete", func(t *testing.T) {
		s := newStore(t, Task{ID: 0, Description: "walk dog"})

		got := s.Create("  wash car  ")
		assert.Equal(t, Task{ID: 1, Description: "wash car", Complete: false}, got)

		tasks := s.Tasks()
		require.Len(t, tasks, 2)
		assert.Equal(t, "walk dog", tasks[0].Description)
		assert.Equal(t, got, tasks[1])
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		s := newStore(t)

		got := s.Create("   ")
		assert.Equal(t, "", got.Description)
	})

	t.Run("ids stay unique after removal of the max", func(t *testing.T) {
		s := newStore(t, Task{ID: 0}, Task{ID: 1}, Task{ID: 2})
		require.NoError(t, s.Remove(2))

		got := s.Create("again")
		assert.Equal(t, 2, got.ID)

		seen := map[int]bool{}
		for _, tk := range s.Tasks() {
			assert.False(t, seen[tk.ID], "duplicate id %d", tk.ID)
			seen[tk.ID] = true
		}
	})
}

func TestStore_Update(t *testing.T) {
	t.Run("replaces description and keeps the rest", func(t *testing.T) {
		s := newStore(t, Task{ID: 0, Description: "old", Complete: true})

		require.NoError(t, s.Update(0, "  new  "))

		got, ok := s.Get(0)
		require.True(t, ok)
		assert.Equal(t, Task{ID: 0, Description: "new", Complete: true}, got)
	})

	t.Run("missing id leaves the collection unchanged", func(t *testing.T) {
		s := newStore(t,
			Task{ID: 0, Description: "a"},
			Task{ID: 1, Description: "b"},
			Task{ID: 2, Description: "c"},
		)
		before := s.Tasks()

		err := s.Update(5, "new text")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.True(t, IsNotFound(err))
		assert.Equal(t, before, s.Tasks())
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes and keeps order", func(t *testing.T) {
		s := newStore(t,
			Task{ID: 0, Description: "a"},
			Task{ID: 1, Description: "b"},
			Task{ID: 2, Description: "c"},
		)

		require.NoError(t, s.Remove(1))

		assert.Equal(t, 2, s.Len())
		_, ok := s.Get(1)
		assert.False(t, ok)
		assert.Equal(t, []Task{
			{ID: 0, Description: "a"},
			{ID: 2, Description: "c"},
		}, s.Tasks())
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		s := newStore(t, Task{ID: 0, Description: "a"})
		before := s.Tasks()

		err := s.Remove(7)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, before, s.Tasks())
	})
}

func TestStore_ToggleComplete(t *testing.T) {
	t.Run("toggle twice restores", func(t *testing.T) {
		s := newStore(t, Task{ID: 0, Description: "walk dog"})

		require.NoError(t, s.ToggleComplete(0))
		assert.Equal(t, []Task{{ID: 0, Description: "walk dog", Complete: true}}, s.Tasks())

		require.NoError(t, s.ToggleComplete(0))
		assert.Equal(t, []Task{{ID: 0, Description: "walk dog", Complete: false}}, s.Tasks())
	})

	t.Run("other tasks are untouched", func(t *testing.T) {
		s := newStore(t, Task{ID: 0, Description: "a"}, Task{ID: 1, Description: "b"})

		require.NoError(t, s.ToggleComplete(1))

		a, _ := s.Get(0)
		assert.False(t, a.Complete)
	})

	t.Run("earlier snapshots do not change", func(t *testing.T) {
		s := newStore(t, Task{ID: 0, Description: "a"})
		snapshot := s.Tasks()

		require.NoError(t, s.ToggleComplete(0))
		assert.False(t, snapshot[0].Complete)
	})

	t.Run("missing id", func(t *testing.T) {
		s := newStore(t, Task{ID: 0})

		assert.ErrorIs(t, s.ToggleComplete(3), ErrNotFound)
		assert.Equal(t, 0, s.CountComplete())
	})
}

func TestStore_Filter(t *testing.T) {
	s := newStore(t,
		Task{ID: 0, Description: "walk dog"},
		Task{ID: 1, Description: "feed Beaker"},
		Task{ID: 2, Description: "give beaker a treat"},
	)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "empty returns all in order", query: "", want: []int{0, 1, 2}},
		{name: "case insensitive", query: "BEAK", want: []int{1, 2}},
		{name: "substring", query: "dog", want: []int{0}},
		{name: "no match", query: "cat", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Filter(tt.query)

			ids := make([]int, 0, len(got))
			for _, tk := range got {
				ids = append(ids, tk.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	t.Run("does not mutate the store", func(t *testing.T) {
		got := s.Filter("")
		got[0].Description = "changed"

		first, _ := s.Get(0)
		assert.Equal(t, "walk dog", first.Description)
	})
}

func TestStore_Lookup(t *testing.T) {
	s := newStore(t,
		Task{ID: 0, Description: "a"},
		Task{ID: 1, Description: "b"},
		Task{ID: 2, Description: "c"},
	)

	t.Run("store order not selection order", func(t *testing.T) {
		got := s.Lookup([]int{2, 0})
		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].ID)
		assert.Equal(t, 2, got[1].ID)
	})

	t.Run("reflects later mutations", func(t *testing.T) {
		require.NoError(t, s.Update(1, "renamed"))

		got := s.Lookup([]int{1})
		require.Len(t, got, 1)
		assert.Equal(t, "renamed", got[0].Description)
	})

	t.Run("drops removed ids", func(t *testing.T) {
		require.NoError(t, s.Remove(2))
		assert.Empty(t, s.Lookup([]int{2}))
	})

	t.Run("empty selection", func(t *testing.T) {
		assert.Nil(t, s.Lookup(nil))
	})
}

func TestNewStore(t *testing.T) {
	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := NewStore([]Task{{ID: 1}, {ID: 1}})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("trims seed descriptions", func(t *testing.T) {
		s := newStore(t, Task{ID: 0, Description: "  padded "})

		got, _ := s.Get(0)
		assert.Equal(t, "padded", got.Description)
	})

	t.Run("default seed is valid", func(t *testing.T) {
		s, err := NewStore(DefaultSeed())
		require.NoError(t, err)
		assert.Equal(t, len(DefaultSeed()), s.Len())
	})
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "[ ] 3 walk dog", Task{ID: 3, Description: "walk dog"}.String())
	assert.Equal(t, "[x] 0 done", Task{ID: 0, Description: "done", Complete: true}.String())
}
