package planning

import (
	"fmt"
	"time"

	"siteops/internal/model"
)

// Alert levels, most severe first.
const (
	AlertCritical = "CRITICAL"
	AlertWarning  = "WARNING"
	AlertInfo     = "INFO"
)

type Alert struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// BuildAlerts checks every task of a project against now: an incomplete
// task past its planned finish raises CRITICAL, one past its planned start
// raises WARNING. A single INFO entry is returned when nothing is wrong.
func BuildAlerts(tasks []model.Task, now time.Time) []Alert {
	var alerts []Alert
	for _, t := range tasks {
		if t.PercentComplete >= 100 {
			continue
		}
		if t.PlannedFinishDate != nil && now.After(*t.PlannedFinishDate) {
			alerts = append(alerts, Alert{
				Level:   AlertCritical,
				Message: fmt.Sprintf("Task '%s' is delayed past planned finish %s", t.Name, t.PlannedFinishDate.Format("2006-01-02")),
			})
		}
		if t.PlannedStartDate != nil && now.After(*t.PlannedStartDate) && t.Status == model.TaskStatusPending {
			alerts = append(alerts, Alert{
				Level:   AlertWarning,
				Message: fmt.Sprintf("Task '%s' should have started on %s", t.Name, t.PlannedStartDate.Format("2006-01-02")),
			})
		}
	}
	if len(alerts) == 0 {
		alerts = append(alerts, Alert{Level: AlertInfo, Message: "No alerts. Project is on track."})
	}
	return alerts
}
