package planning_test

import (
	"testing"
	"time"

	"siteops/internal/model"
	"siteops/internal/planning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAlerts_DelayedTaskIsCritical(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{
			Name:              "Roof Slab",
			Status:            model.TaskStatusInProgress,
			PercentComplete:   60,
			PlannedFinishDate: datePtr(2026, 5, 15),
		},
	}

	alerts := planning.BuildAlerts(tasks, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, planning.AlertCritical, alerts[0].Level)
	assert.Contains(t, alerts[0].Message, "Roof Slab")
	assert.Contains(t, alerts[0].Message, "2026-05-15")
}

func TestBuildAlerts_NotStartedTaskIsWarning(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{
			Name:             "Electrical Wiring",
			Status:           model.TaskStatusPending,
			PlannedStartDate: datePtr(2026, 5, 20),
			PlannedFinishDate: datePtr(2026, 6, 10),
		},
	}

	alerts := planning.BuildAlerts(tasks, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, planning.AlertWarning, alerts[0].Level)
	assert.Contains(t, alerts[0].Message, "Electrical Wiring")
}

func TestBuildAlerts_CompletedTaskRaisesNothing(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{
			Name:              "Excavation",
			Status:            model.TaskStatusCompleted,
			PercentComplete:   100,
			PlannedFinishDate: datePtr(2026, 4, 1),
		},
	}

	alerts := planning.BuildAlerts(tasks, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, planning.AlertInfo, alerts[0].Level)
}

func TestBuildAlerts_OnTrackProject(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{
			Name:              "Finishing",
			Status:            model.TaskStatusPending,
			PlannedStartDate:  datePtr(2026, 7, 1),
			PlannedFinishDate: datePtr(2026, 7, 25),
		},
	}

	alerts := planning.BuildAlerts(tasks, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, planning.AlertInfo, alerts[0].Level)
	assert.Equal(t, "No alerts. Project is on track.", alerts[0].Message)
}
