package todo

import (
	"fmt"
	"strings"

	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/rs/zerolog"
)

// Store holds the ordered task collection.
//
// Order is insertion order. Mutations replace records rather than editing
// them in place, so a Task value handed out earlier never changes under the
// caller.
type Store struct {
	tasks []Task
	log   zerolog.Logger
}

// NewStore creates a store seeded with the given tasks. Seed descriptions
// are trimmed and seed ids must be unique.
func NewStore(seed []Task) (*Store, error) {
	s := &Store{
		tasks: make([]Task, 0, len(seed)),
		log:   logging.Component("store"),
	}

	seen := make(map[int]bool, len(seed))
	for _, t := range seed {
		if seen[t.ID] {
			return nil, fmt.Errorf("seed task %d: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = true

		t.Description = strings.TrimSpace(t.Description)
		s.tasks = append(s.tasks, t)
	}

	return s, nil
}

// nextID returns one more than the largest id, or 0 for an empty store.
func (s *Store) nextID() int {
	if len(s.tasks) == 0 {
		return 0
	}

	maxID := s.tasks[0].ID
	for _, t := range s.tasks[1:] {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Create appends a new incomplete task and returns it.
func (s *Store) Create(description string) Task {
	t := Task{
		ID:          s.nextID(),
		Description: strings.TrimSpace(description),
	}
	s.tasks = append(s.tasks, t)

	s.log.Debug().Int("id", t.ID).Msg("task created")
	return t
}

// Update replaces the description of the task with the given id.
func (s *Store) Update(id int, description string) error {
	i := s.indexOf(id)
	if i == -1 {
		return notFound("update", id)
	}

	updated := s.tasks[i]
	updated.Description = strings.TrimSpace(description)
	s.tasks[i] = updated

	s.log.Debug().Int("id", id).Msg("task updated")
	return nil
}

// Remove deletes the task with the given id. Survivors keep their order.
func (s *Store) Remove(id int) error {
	i := s.indexOf(id)
	if i == -1 {
		return notFound("remove", id)
	}

	remaining := make([]Task, 0, len(s.tasks)-1)
	remaining = append(remaining, s.tasks[:i]...)
	remaining = append(remaining, s.tasks[i+1:]...)
	s.tasks = remaining

	s.log.Debug().Int("id", id).Msg("task removed")
	return nil
}

// ToggleComplete flips the completion flag of the task with the given id.
func (s *Store) ToggleComplete(id int) error {
	i := s.indexOf(id)
	if i == -1 {
		return notFound("toggle", id)
	}

	toggled := s.tasks[i]
	toggled.Complete = !toggled.Complete
	s.tasks[i] = toggled

	s.log.Debug().Int("id", id).Bool("complete", toggled.Complete).Msg("task toggled")
	return nil
}

// Filter returns the tasks whose description contains query, ignoring case.
// An empty query returns every task.
func (s *Store) Filter(query string) []Task {
	if query == "" {
		return s.Tasks()
	}

	q := strings.ToLower(query)
	matches := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Description), q) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Tasks returns a copy of the collection.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	i := s.indexOf(id)
	if i == -1 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Lookup resolves a set of ids to the tasks that currently exist, in store
// order. Ids with no matching task are skipped.
func (s *Store) Lookup(ids []int) []Task {
	if len(ids) == 0 {
		return nil
	}

	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var found []Task
	for _, t := range s.tasks {
		if want[t.ID] {
			found = append(found, t)
		}
	}
	return found
}

// CountComplete returns how many tasks are marked complete.
func (s *Store) CountComplete() int {
	n := 0
	for _, t := range s.tasks {
		if t.Complete {
			n++
		}
	}
	return n
}
