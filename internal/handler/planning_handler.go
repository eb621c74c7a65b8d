package handler

import (
	"errors"
	"net/http"
	"time"

	"siteops/internal/costing"
	"siteops/internal/model"
	"siteops/internal/planning"
	"siteops/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlanningHandler struct {
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	depRepo     repository.DependencyRepositoryInterface
}

func NewPlanningHandler(
	projectRepo repository.ProjectRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	depRepo repository.DependencyRepositoryInterface,
) *PlanningHandler {
	return &PlanningHandler{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		depRepo:     depRepo,
	}
}

// PlanningSummaryItem представляет задачу в сводке планирования
type PlanningSummaryItem struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	DurationDays      int     `json:"duration_days"`
	PlannedStartDate  *string `json:"planned_start_date"`
	PlannedFinishDate *string `json:"planned_finish_date"`
	Status            string  `json:"status"`
	TotalCost         float64 `json:"total_cost"`
}

// PlanningSummaryResponse представляет сводку планирования проекта
type PlanningSummaryResponse struct {
	Project  string                `json:"project"`
	Planning planning.Summary      `json:"planning"`
	Tasks    []PlanningSummaryItem `json:"tasks"`
}

func (h *PlanningHandler) loadProjectTasks(c *gin.Context) (*model.Project, []model.Task, bool) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return nil, nil, false
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return nil, nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return nil, nil, false
	}

	tasks, err := h.taskRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return nil, nil, false
	}
	return project, tasks, true
}

// GetSummary возвращает агрегированную сводку планирования проекта
// @Summary      Project planning summary
// @Tags         Planning
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} PlanningSummaryResponse
// @Router       /projects/{id}/planning [get]
func (h *PlanningHandler) GetSummary(c *gin.Context) {
	project, tasks, ok := h.loadProjectTasks(c)
	if !ok {
		return
	}

	items := make([]PlanningSummaryItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, PlanningSummaryItem{
			ID:                t.ID.String(),
			Name:              t.Name,
			DurationDays:      t.DurationDays,
			PlannedStartDate:  formatDate(t.PlannedStartDate),
			PlannedFinishDate: formatDate(t.PlannedFinishDate),
			Status:            t.Status,
			TotalCost:         t.TotalCost,
		})
	}

	c.JSON(http.StatusOK, PlanningSummaryResponse{
		Project:  project.Name,
		Planning: planning.BuildSummary(tasks),
		Tasks:    items,
	})
}

// ScheduleResponse представляет результат расчета критического пути
type ScheduleResponse struct {
	Project  string                  `json:"project"`
	Schedule planning.ProjectSchedule `json:"schedule"`
	Tasks    []planning.TaskSchedule  `json:"tasks"`
}

// GetSchedule рассчитывает критический путь проекта. При persist=true
// плановые даты задач перезаписываются рассчитанными ранними датами.
// @Summary      Compute project schedule (critical path)
// @Tags         Planning
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Param        persist query bool false "Persist computed dates onto tasks"
// @Success      200 {object} ScheduleResponse
// @Router       /projects/{id}/schedule [get]
func (h *PlanningHandler) GetSchedule(c *gin.Context) {
	project, tasks, ok := h.loadProjectTasks(c)
	if !ok {
		return
	}

	deps, err := h.depRepo.GetByProjectID(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dependencies"})
		return
	}

	start := time.Now().Truncate(24 * time.Hour)
	if project.StartDate != nil {
		start = *project.StartDate
	}

	schedule, perTask, err := planning.ComputeSchedule(start, tasks, deps)
	if err != nil {
		if errors.Is(err, planning.ErrDependencyCycle) {
			c.JSON(http.StatusConflict, gin.H{"error": "Task dependencies contain a cycle"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute schedule"})
		return
	}

	// Сохраняем рассчитанные даты по запросу
	if c.Query("persist") == "true" {
		for i := range tasks {
			ts, found := perTask[tasks[i].ID]
			if !found {
				continue
			}
			es := ts.EarlyStart
			ef := ts.EarlyFinish
			tasks[i].PlannedStartDate = &es
			tasks[i].PlannedFinishDate = &ef
			if err := h.taskRepo.Update(c.Request.Context(), &tasks[i]); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist schedule"})
				return
			}
		}
	}

	// Задачи возвращаем в топологически стабильном порядке списка проекта
	items := make([]planning.TaskSchedule, 0, len(tasks))
	for _, t := range tasks {
		if ts, found := perTask[t.ID]; found {
			items = append(items, ts)
		}
	}

	c.JSON(http.StatusOK, ScheduleResponse{
		Project:  project.Name,
		Schedule: schedule,
		Tasks:    items,
	})
}

// GetAlerts возвращает предупреждения по срокам проекта
// @Summary      Project deadline alerts
// @Tags         Planning
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} map[string]interface{}
// @Router       /projects/{id}/alerts [get]
func (h *PlanningHandler) GetAlerts(c *gin.Context) {
	project, tasks, ok := h.loadProjectTasks(c)
	if !ok {
		return
	}

	alerts := planning.BuildAlerts(tasks, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"project": project.Name,
		"alerts":  alerts,
	})
}

// GetCosts возвращает сводку стоимости проекта
// @Summary      Project cost rollup
// @Tags         Planning
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} map[string]interface{}
// @Router       /projects/{id}/costs [get]
func (h *PlanningHandler) GetCosts(c *gin.Context) {
	project, tasks, ok := h.loadProjectTasks(c)
	if !ok {
		return
	}

	summary := costing.Summarize(tasks)
	c.JSON(http.StatusOK, gin.H{
		"project": project.Name,
		"budget":  project.Budget,
		"costs":   summary,
	})
}
