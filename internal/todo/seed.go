package todo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFile is the on-disk layout of a seed list.
type SeedFile struct {
	Tasks []Task `yaml:"tasks"`
}

// DefaultSeed returns the list the app starts with when no seed file is set.
func DefaultSeed() []Task {
	return []Task{
		{ID: 0, Description: "walk dog"},
		{ID: 1, Description: "feed Beaker"},
		{ID: 2, Description: "give Beaker a treat"},
		{ID: 3, Description: "water the plants", Complete: true},
		{ID: 4, Description: "take out the recycling"},
	}
}

// LoadSeed reads a seed list from a YAML file. The file is only read; the
// collection is never written back.
func LoadSeed(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	return f.Tasks, nil
}
