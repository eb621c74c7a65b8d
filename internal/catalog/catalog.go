// Package catalog holds the construction phase and building component
// reference table used for bulk task generation. The table is injected as
// configuration so call sites look phases and components up by id instead
// of repeating literals.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Phase is a named stage of construction with a typical duration.
type Phase struct {
	ID                  int    `yaml:"id"`
	Name                string `yaml:"name"`
	Sequence            int    `yaml:"sequence"`
	Description         string `yaml:"description"`
	TypicalDurationDays int    `yaml:"typical_duration_days"`
}

// Component is a billable work item belonging to one phase.
type Component struct {
	ID                 int     `yaml:"id"`
	Name               string  `yaml:"name"`
	Category           string  `yaml:"category"`
	Unit               string  `yaml:"unit"`
	TypicalCostPerUnit float64 `yaml:"typical_cost_per_unit"`
	PhaseID            int     `yaml:"phase_id"`
}

// Catalog is an immutable phase/component lookup table.
type Catalog struct {
	phases      []Phase
	components  []Component
	phaseByID   map[int]Phase
	compByPhase map[int][]Component
}

type catalogFile struct {
	Phases     []Phase     `yaml:"phases"`
	Components []Component `yaml:"components"`
}

// New builds a Catalog from explicit phase and component lists. Phases are
// ordered by sequence regardless of input order.
func New(phases []Phase, components []Component) (*Catalog, error) {
	if len(phases) == 0 {
		return nil, fmt.Errorf("catalog: at least one phase is required")
	}

	c := &Catalog{
		phases:      make([]Phase, len(phases)),
		components:  make([]Component, len(components)),
		phaseByID:   make(map[int]Phase, len(phases)),
		compByPhase: make(map[int][]Component),
	}
	copy(c.phases, phases)
	copy(c.components, components)
	sort.Slice(c.phases, func(i, j int) bool { return c.phases[i].Sequence < c.phases[j].Sequence })

	for _, p := range c.phases {
		if _, dup := c.phaseByID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate phase id %d", p.ID)
		}
		c.phaseByID[p.ID] = p
	}
	for _, comp := range c.components {
		if _, ok := c.phaseByID[comp.PhaseID]; !ok {
			return nil, fmt.Errorf("catalog: component %q references unknown phase %d", comp.Name, comp.PhaseID)
		}
		c.compByPhase[comp.PhaseID] = append(c.compByPhase[comp.PhaseID], comp)
	}
	return c, nil
}

// Load reads a YAML catalog file from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return New(f.Phases, f.Components)
}

// Phases returns all phases in sequence order.
func (c *Catalog) Phases() []Phase {
	out := make([]Phase, len(c.phases))
	copy(out, c.phases)
	return out
}

// Components returns all components.
func (c *Catalog) Components() []Component {
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

// PhaseByID looks a phase up by id.
func (c *Catalog) PhaseByID(id int) (Phase, bool) {
	p, ok := c.phaseByID[id]
	return p, ok
}

// ComponentsForPhase returns the components whose phase_id matches.
func (c *Catalog) ComponentsForPhase(phaseID int) []Component {
	return c.compByPhase[phaseID]
}

// TaskTemplate is one generated (phase, component) pair.
type TaskTemplate struct {
	Name         string
	Description  string
	PhaseID      int
	ComponentID  int
	DurationDays int
	Priority     string
	Status       string
}

// TaskTemplates expands the catalog into one template per (phase, component)
// pair, phases in sequence order. Duration comes from the phase, priority is
// high for the first three phases in the sequence and medium after that.
// No precedence links are produced between templates.
func (c *Catalog) TaskTemplates() []TaskTemplate {
	var out []TaskTemplate
	for _, p := range c.phases {
		priority := "medium"
		if p.Sequence <= 3 {
			priority = "high"
		}
		for _, comp := range c.compByPhase[p.ID] {
			out = append(out, TaskTemplate{
				Name:         fmt.Sprintf("%s - %s", p.Name, comp.Name),
				Description:  comp.Category + " work: " + comp.Name,
				PhaseID:      p.ID,
				ComponentID:  comp.ID,
				DurationDays: p.TypicalDurationDays,
				Priority:     priority,
				Status:       "pending",
			})
		}
	}
	return out
}
