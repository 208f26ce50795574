package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tbranch/foreman/internal/workorder"
)

// Preset is a named, saved filter combination. Empty fields mean "All".
type Preset struct {
	Name        string `yaml:"name"`
	Term        string `yaml:"term"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
	Department  string `yaml:"department"`
	CreatedFrom string `yaml:"created_from"` // YYYY-MM-DD
	CreatedTo   string `yaml:"created_to"`   // YYYY-MM-DD
}

type presetsFile struct {
	Presets []Preset `yaml:"presets"`
}

const presetDateLayout = "2006-01-02"

// LoadPresets reads saved filter presets. A missing file is not an
// error: it returns an empty list.
func LoadPresets(path string) ([]Preset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var raw presetsFile
	if err := yaml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	for i, p := range raw.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("preset %d has no name", i+1)
		}
		if _, err := p.Criteria(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return raw.Presets, nil
}

// Criteria converts the preset into a structured filter. The end date is
// pushed to the end of its day so single-day ranges stay inclusive.
func (p Preset) Criteria() (workorder.Criteria, error) {
	c := workorder.Criteria{
		Status:     workorder.Status(strings.TrimSpace(p.Status)),
		Priority:   workorder.Priority(strings.TrimSpace(p.Priority)),
		Department: strings.TrimSpace(p.Department),
	}
	if raw := strings.TrimSpace(p.CreatedFrom); raw != "" {
		from, err := time.Parse(presetDateLayout, raw)
		if err != nil {
			return workorder.Criteria{}, fmt.Errorf("parse created_from: %w", err)
		}
		c.CreatedFrom = from
	}
	if raw := strings.TrimSpace(p.CreatedTo); raw != "" {
		to, err := time.Parse(presetDateLayout, raw)
		if err != nil {
			return workorder.Criteria{}, fmt.Errorf("parse created_to: %w", err)
		}
		c.CreatedTo = to.Add(24*time.Hour - time.Nanosecond)
	}
	return c, nil
}
