package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"siteops/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cat := catalog.Default()

	phases := cat.Phases()
	require.Len(t, phases, 9)
	assert.Equal(t, "Site Preparation", phases[0].Name)
	assert.Equal(t, "Testing & Commissioning", phases[8].Name)

	// Фазы возвращаются в порядке выполнения
	for i := 1; i < len(phases); i++ {
		assert.Greater(t, phases[i].Sequence, phases[i-1].Sequence)
	}

	assert.Len(t, cat.Components(), 10)
}

func TestDefault_FoundationComponents(t *testing.T) {
	cat := catalog.Default()

	foundation, ok := cat.PhaseByID(2)
	require.True(t, ok)
	assert.Equal(t, "Foundation", foundation.Name)
	assert.Equal(t, 21, foundation.TypicalDurationDays)

	comps := cat.ComponentsForPhase(2)
	require.Len(t, comps, 2)
	names := []string{comps[0].Name, comps[1].Name}
	assert.Contains(t, names, "Excavation")
	assert.Contains(t, names, "RCC Foundation")
}

func TestTaskTemplates(t *testing.T) {
	cat := catalog.Default()

	templates := cat.TaskTemplates()
	// Одна заготовка на каждую пару (фаза, компонент)
	require.Len(t, templates, 10)

	first := templates[0]
	assert.Equal(t, "Foundation - Excavation", first.Name)
	assert.Equal(t, 2, first.PhaseID)
	assert.Equal(t, 21, first.DurationDays)
	assert.Equal(t, "high", first.Priority)
	assert.Equal(t, "pending", first.Status)

	// Поздние фазы получают средний приоритет
	last := templates[len(templates)-1]
	assert.Equal(t, "medium", last.Priority)
}

func TestNew_RejectsDuplicatePhaseID(t *testing.T) {
	_, err := catalog.New([]catalog.Phase{
		{ID: 1, Name: "A", Sequence: 1},
		{ID: 1, Name: "B", Sequence: 2},
	}, nil)
	assert.ErrorContains(t, err, "duplicate phase id")
}

func TestNew_RejectsUnknownPhaseReference(t *testing.T) {
	_, err := catalog.New(
		[]catalog.Phase{{ID: 1, Name: "A", Sequence: 1}},
		[]catalog.Component{{ID: 10, Name: "Widget", PhaseID: 99}},
	)
	assert.ErrorContains(t, err, "unknown phase")
}

func TestNew_RequiresPhases(t *testing.T) {
	_, err := catalog.New(nil, nil)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	content := `
phases:
  - id: 1
    name: Demolition
    sequence: 1
    typical_duration_days: 4
components:
  - id: 1
    name: Debris Removal
    category: Sitework
    unit: load
    typical_cost_per_unit: 1500
    phase_id: 1
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)

	require.Len(t, cat.Phases(), 1)
	assert.Equal(t, "Demolition", cat.Phases()[0].Name)
	require.Len(t, cat.ComponentsForPhase(1), 1)
	assert.Equal(t, 1500.0, cat.ComponentsForPhase(1)[0].TypicalCostPerUnit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
