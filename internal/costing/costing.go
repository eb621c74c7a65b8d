// Package costing computes derived cost fields for tasks from their
// material and labor line items, and rolls task costs up to project level.
// All functions are pure; persisting the results is the caller's job.
package costing

import (
	"fmt"

	"siteops/internal/model"
)

// ValidationError describes a rejected line item.
type ValidationError struct {
	Field  string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line item %d: %s %s", e.Index, e.Field, e.Reason)
}

// ValidateMaterials rejects negative quantities and unit costs.
func ValidateMaterials(items []model.TaskMaterial) error {
	for i, m := range items {
		if m.Quantity < 0 {
			return &ValidationError{Field: "quantity", Index: i, Reason: "must not be negative"}
		}
		if m.UnitCost < 0 {
			return &ValidationError{Field: "unit_cost", Index: i, Reason: "must not be negative"}
		}
	}
	return nil
}

// ValidateLabor checks each labor line against its variant: daily items
// need a positive day count, hourly and skill_based items a positive hour
// count. Workers below one and negative rates are rejected for every type.
func ValidateLabor(items []model.TaskLabor) error {
	for i, l := range items {
		if l.Workers < 1 {
			return &ValidationError{Field: "workers", Index: i, Reason: "must be at least 1"}
		}
		if l.Rate < 0 {
			return &ValidationError{Field: "rate", Index: i, Reason: "must not be negative"}
		}
		switch l.Type {
		case model.LaborTypeDaily:
			if l.Days <= 0 {
				return &ValidationError{Field: "days", Index: i, Reason: "required for daily labor"}
			}
		case model.LaborTypeHourly, model.LaborTypeSkillBased:
			if l.Hours <= 0 {
				return &ValidationError{Field: "hours", Index: i, Reason: "required for " + l.Type + " labor"}
			}
		default:
			return &ValidationError{Field: "type", Index: i, Reason: fmt.Sprintf("unknown labor type %q", l.Type)}
		}
	}
	return nil
}

// MaterialCost sums quantity × unit cost over all material lines.
func MaterialCost(items []model.TaskMaterial) float64 {
	var total float64
	for _, m := range items {
		total += m.Quantity * m.UnitCost
	}
	return total
}

// LaborCost sums the per-line contribution: workers × days × rate for
// daily labor, workers × hours × rate for hourly and skill_based labor.
// The generic rate field serves every variant.
func LaborCost(items []model.TaskLabor) float64 {
	var total float64
	for _, l := range items {
		switch l.Type {
		case model.LaborTypeDaily:
			total += float64(l.Workers) * float64(l.Days) * l.Rate
		case model.LaborTypeHourly, model.LaborTypeSkillBased:
			total += float64(l.Workers) * l.Hours * l.Rate
		}
	}
	return total
}

// Recalculate refreshes the derived cost fields of task from its current
// line items, keeping total_cost = material_cost + labor_cost.
func Recalculate(task *model.Task) {
	task.MaterialCost = MaterialCost(task.Materials)
	task.LaborCost = LaborCost(task.Labor)
	task.TotalCost = task.MaterialCost + task.LaborCost
}

// ProjectCostSummary aggregates planned and actual task costs for one
// project. Planned cost is advisory with respect to the project budget:
// the two are reported side by side, never reconciled.
type ProjectCostSummary struct {
	PlannedCost float64 `json:"planned_cost"`
	ActualCost  float64 `json:"actual_cost"`
	Variance    float64 `json:"variance"`
	CPI         float64 `json:"cpi"`
}

// Summarize rolls task costs up: planned = Σ total_cost, actual =
// Σ actual_cost, variance = actual - planned, CPI = planned/actual
// (0 when no actuals are recorded yet).
func Summarize(tasks []model.Task) ProjectCostSummary {
	var s ProjectCostSummary
	for _, t := range tasks {
		s.PlannedCost += t.TotalCost
		s.ActualCost += t.ActualCost
	}
	s.Variance = s.ActualCost - s.PlannedCost
	if s.ActualCost > 0 {
		s.CPI = s.PlannedCost / s.ActualCost
	}
	return s
}
