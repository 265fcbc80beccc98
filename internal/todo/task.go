// Package todo holds the in-memory task collection behind the to-do list.
package todo

import "fmt"

// Task represents a single to-do item.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Complete    bool   `json:"complete" yaml:"complete"`
}

// String renders the task the way the list command prints it.
func (t Task) String() string {
	check := "[ ]"
	if t.Complete {
		check = "[x]"
	}
	return fmt.Sprintf("%s %d %s", check, t.ID, t.Description)
}
