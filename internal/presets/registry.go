package presets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mbrooker/maze-maker/internal/config"
)

// ErrUnknownPreset is returned when no preset has the requested ID.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named maze and cylinder shape loaded from JSON.
type Preset struct {
	ID            string  `json:"id"`            // Unique identifier (e.g., "mug")
	Name          string  `json:"name"`          // Display name
	Rows          int     `json:"rows"`          // Logical maze rows
	Cols          int     `json:"cols"`          // Logical maze columns
	Height        float64 `json:"height"`        // Cylinder height
	Circumference float64 `json:"circumference"` // Cylinder circumference
}

// Apply copies the preset's shape onto cfg, leaving other settings unchanged.
func (p Preset) Apply(cfg config.Config) config.Config {
	cfg.Rows = p.Rows
	cfg.Cols = p.Cols
	cfg.Height = p.Height
	cfg.Circumference = p.Circumference
	return cfg
}

// Registry holds loaded presets.
type Registry struct {
	presets []Preset
}

// NewRegistry creates a registry from loaded presets.
func NewRegistry(presets []Preset) *Registry {
	return &Registry{presets: presets}
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := Load[[]Preset]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// Get returns the preset with the given ID.
func (r *Registry) Get(id string) (Preset, error) {
	for _, p := range r.presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%q: %w", id, ErrUnknownPreset)
}

// IDs returns all preset IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.presets))
	for _, p := range r.presets {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.presets)
}
