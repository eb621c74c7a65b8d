// Package planning derives read-only planning figures from a project's
// tasks: effort/timeline summaries, the dependency-driven schedule, and
// deadline alerts. Everything is recomputed from scratch on each call;
// there is no cache to invalidate.
package planning

import (
	"time"

	"siteops/internal/model"
)

// Summary is the aggregate returned by the project planning endpoint.
type Summary struct {
	TotalTasks           int        `json:"total_tasks"`
	TotalEffortDays      int        `json:"total_effort_days"`
	SequentialEffortDays int        `json:"sequential_effort_days"`
	EarliestStart        *time.Time `json:"earliest_start"`
	LatestFinish         *time.Time `json:"latest_finish"`
	ParallelismFactor    float64    `json:"parallelism_factor"`
}

// BuildSummary computes the planning aggregate over all tasks of a project.
//
// sequential_effort_days is currently the same Σ duration_days as
// total_effort_days, which pins parallelism_factor at 1.0. That matches the
// shipped behavior and is kept deliberately until product decides whether
// the ratio should compare against the critical path instead (which
// ComputeSchedule can already provide). TestBuildSummary_ParallelismFactor
// guards against anyone changing this quietly.
func BuildSummary(tasks []model.Task) Summary {
	s := Summary{TotalTasks: len(tasks)}

	for _, t := range tasks {
		s.TotalEffortDays += t.DurationDays

		if t.PlannedStartDate != nil {
			if s.EarliestStart == nil || t.PlannedStartDate.Before(*s.EarliestStart) {
				start := *t.PlannedStartDate
				s.EarliestStart = &start
			}
		}
		if t.PlannedFinishDate != nil {
			if s.LatestFinish == nil || t.PlannedFinishDate.After(*s.LatestFinish) {
				finish := *t.PlannedFinishDate
				s.LatestFinish = &finish
			}
		}
	}

	s.SequentialEffortDays = s.TotalEffortDays

	if s.SequentialEffortDays > 0 {
		s.ParallelismFactor = float64(s.TotalEffortDays) / float64(s.SequentialEffortDays)
	} else {
		s.ParallelismFactor = 1.0
	}
	return s
}
