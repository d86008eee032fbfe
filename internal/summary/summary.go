// Package summary writes a machine-readable record of one generator run.
package summary

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"svheader/internal/speaker"
)

// Summary describes a generated header.
type Summary struct {
	Output    string    `yaml:"output"`
	Dimension int       `yaml:"dimension"`
	Count     int       `yaml:"count"`
	Speakers  []Speaker `yaml:"speakers"`
}

// Speaker is one entry of the descriptor list.
type Speaker struct {
	ID         int     `yaml:"id"`
	Name       string  `yaml:"name"`
	Identifier string  `yaml:"identifier"`
	Norm       float64 `yaml:"norm"`
}

// New builds the summary of t written to output.
func New(output string, t speaker.Table) Summary {
	s := Summary{
		Output:    output,
		Dimension: t.Dimension,
		Count:     t.Len(),
		Speakers:  make([]Speaker, 0, t.Len()),
	}
	for _, rec := range t.Records {
		s.Speakers = append(s.Speakers, Speaker{
			ID:         rec.ID,
			Name:       rec.Name,
			Identifier: rec.Identifier,
			Norm:       rec.Vector.Norm(),
		})
	}
	return s
}

// WriteFile writes s as YAML to path.
func WriteFile(path string, s Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to format summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
