package planning

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"siteops/internal/model"
)

// ErrDependencyCycle is returned when the precedence edges of a project do
// not form a DAG.
var ErrDependencyCycle = errors.New("task dependency graph has a cycle")

// TaskSchedule holds the computed CPM dates for one task.
type TaskSchedule struct {
	TaskID         uuid.UUID `json:"task_id"`
	EarlyStart     time.Time `json:"early_start"`
	EarlyFinish    time.Time `json:"early_finish"`
	LateStart      time.Time `json:"late_start"`
	LateFinish     time.Time `json:"late_finish"`
	TotalFloatDays int       `json:"total_float_days"`
	IsCritical     bool      `json:"is_critical"`
}

// ProjectSchedule is the project-level result of a CPM pass.
type ProjectSchedule struct {
	StartDate           time.Time   `json:"start_date"`
	FinishDate          time.Time   `json:"finish_date"`
	CriticalPathTaskIDs []uuid.UUID `json:"critical_path_task_ids"`
}

// ComputeSchedule runs a critical-path computation over the project's
// precedence edges: topological order, a forward pass assigning early
// start/finish, a backward pass assigning late start/finish, then float and
// critical flags. Task durations are floored at one day. Edges referencing
// tasks outside the task set are ignored.
func ComputeSchedule(start time.Time, tasks []model.Task, deps []model.TaskDependency) (ProjectSchedule, map[uuid.UUID]TaskSchedule, error) {
	taskByID := make(map[uuid.UUID]*model.Task, len(tasks))
	for i := range tasks {
		taskByID[tasks[i].ID] = &tasks[i]
	}

	successors := make(map[uuid.UUID][]uuid.UUID)
	predecessors := make(map[uuid.UUID][]uuid.UUID)
	for _, d := range deps {
		if _, ok := taskByID[d.PredecessorID]; !ok {
			continue
		}
		if _, ok := taskByID[d.SuccessorID]; !ok {
			continue
		}
		successors[d.PredecessorID] = append(successors[d.PredecessorID], d.SuccessorID)
		predecessors[d.SuccessorID] = append(predecessors[d.SuccessorID], d.PredecessorID)
	}

	order, err := topologicalOrder(taskByID, successors)
	if err != nil {
		return ProjectSchedule{}, nil, err
	}

	duration := func(id uuid.UUID) int {
		d := taskByID[id].DurationDays
		if d < 1 {
			d = 1
		}
		return d
	}

	// Forward pass
	es := make(map[uuid.UUID]time.Time, len(order))
	ef := make(map[uuid.UUID]time.Time, len(order))
	for _, id := range order {
		begin := start
		for _, p := range predecessors[id] {
			if ef[p].After(begin) {
				begin = ef[p]
			}
		}
		es[id] = begin
		ef[id] = begin.AddDate(0, 0, duration(id))
	}

	finish := start
	for _, f := range ef {
		if f.After(finish) {
			finish = f
		}
	}

	// Backward pass
	ls := make(map[uuid.UUID]time.Time, len(order))
	lf := make(map[uuid.UUID]time.Time, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		end := finish
		for _, s := range successors[id] {
			if ls[s].Before(end) {
				end = ls[s]
			}
		}
		lf[id] = end
		ls[id] = end.AddDate(0, 0, -duration(id))
	}

	schedule := make(map[uuid.UUID]TaskSchedule, len(order))
	result := ProjectSchedule{StartDate: start, FinishDate: finish}
	for _, id := range order {
		floatDays := int(ls[id].Sub(es[id]).Hours() / 24)
		ts := TaskSchedule{
			TaskID:         id,
			EarlyStart:     es[id],
			EarlyFinish:    ef[id],
			LateStart:      ls[id],
			LateFinish:     lf[id],
			TotalFloatDays: floatDays,
			IsCritical:     floatDays == 0,
		}
		if ts.IsCritical {
			result.CriticalPathTaskIDs = append(result.CriticalPathTaskIDs, id)
		}
		schedule[id] = ts
	}
	return result, schedule, nil
}

// topologicalOrder is Kahn's algorithm over the successor adjacency.
func topologicalOrder(tasks map[uuid.UUID]*model.Task, successors map[uuid.UUID][]uuid.UUID) ([]uuid.UUID, error) {
	indegree := make(map[uuid.UUID]int, len(tasks))
	for id := range tasks {
		indegree[id] = 0
	}
	for _, succs := range successors {
		for _, v := range succs {
			indegree[v]++
		}
	}

	var queue []uuid.UUID
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]uuid.UUID, 0, len(tasks))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range successors[u] {
			indegree[v]--
			if indegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) != len(tasks) {
		return nil, ErrDependencyCycle
	}
	return order, nil
}
