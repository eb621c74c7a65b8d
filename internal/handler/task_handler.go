package handler

import (
	"errors"
	"net/http"

	"siteops/internal/costing"
	"siteops/internal/model"
	"siteops/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskRepo    repository.TaskRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	depRepo     repository.DependencyRepositoryInterface
}

func NewTaskHandler(
	taskRepo repository.TaskRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	depRepo repository.DependencyRepositoryInterface,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		depRepo:     depRepo,
	}
}

// MaterialLineRequest представляет строку сметы материалов
type MaterialLineRequest struct {
	MaterialID string  `json:"material_id" binding:"required,uuid"`
	Quantity   float64 `json:"quantity"`
	UnitCost   float64 `json:"unit_cost"`
}

// LaborLineRequest представляет строку трудозатрат
type LaborLineRequest struct {
	Type    string  `json:"type" binding:"required"`
	Workers int     `json:"workers"`
	Rate    float64 `json:"rate"`
	Days    int     `json:"days"`
	Hours   float64 `json:"hours"`
}

// TaskRequest представляет запрос на создание задачи
type TaskRequest struct {
	ProjectID         string                `json:"project_id" binding:"required,uuid"`
	ParentTaskID      *string               `json:"parent_task_id" binding:"omitempty,uuid"`
	Name              string                `json:"name" binding:"required"`
	Description       string                `json:"description"`
	PhaseID           int                   `json:"phase_id"`
	ComponentID       int                   `json:"component_id"`
	DurationDays      int                   `json:"duration_days"`
	PlannedStartDate  *string               `json:"planned_start_date"`
	PlannedFinishDate *string               `json:"planned_finish_date"`
	Status            string                `json:"status"`
	Priority          string                `json:"priority"`
	Materials         []MaterialLineRequest `json:"materials"`
	Labor             []LaborLineRequest    `json:"labor"`
}

// TaskUpdateRequest представляет частичное обновление задачи. Если в
// запросе присутствуют materials или labor, строки заменяются целиком и
// стоимости пересчитываются.
type TaskUpdateRequest struct {
	Name              *string                `json:"name"`
	Description       *string                `json:"description"`
	ParentTaskID      *string                `json:"parent_task_id"`
	PhaseID           *int                   `json:"phase_id"`
	ComponentID       *int                   `json:"component_id"`
	DurationDays      *int                   `json:"duration_days"`
	PlannedStartDate  *string                `json:"planned_start_date"`
	PlannedFinishDate *string                `json:"planned_finish_date"`
	ActualStartDate   *string                `json:"actual_start_date"`
	ActualFinishDate  *string                `json:"actual_finish_date"`
	PercentComplete   *float64               `json:"percent_complete"`
	Status            *string                `json:"status"`
	Priority          *string                `json:"priority"`
	ActualCost        *float64               `json:"actual_cost"`
	Materials         *[]MaterialLineRequest `json:"materials"`
	Labor             *[]LaborLineRequest    `json:"labor"`
}

// MaterialLineResponse представляет строку сметы материалов в ответе
type MaterialLineResponse struct {
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	UnitCost   float64 `json:"unit_cost"`
}

// LaborLineResponse представляет строку трудозатрат в ответе
type LaborLineResponse struct {
	Type    string  `json:"type"`
	Workers int     `json:"workers"`
	Rate    float64 `json:"rate"`
	Days    int     `json:"days,omitempty"`
	Hours   float64 `json:"hours,omitempty"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID                string                 `json:"id"`
	ProjectID         string                 `json:"project_id"`
	ParentTaskID      *string                `json:"parent_task_id,omitempty"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	PhaseID           int                    `json:"phase_id,omitempty"`
	ComponentID       int                    `json:"component_id,omitempty"`
	DurationDays      int                    `json:"duration_days"`
	PlannedStartDate  *string                `json:"planned_start_date,omitempty"`
	PlannedFinishDate *string                `json:"planned_finish_date,omitempty"`
	ActualStartDate   *string                `json:"actual_start_date,omitempty"`
	ActualFinishDate  *string                `json:"actual_finish_date,omitempty"`
	PercentComplete   float64                `json:"percent_complete"`
	Status            string                 `json:"status"`
	Priority          string                 `json:"priority"`
	MaterialCost      float64                `json:"material_cost"`
	LaborCost         float64                `json:"labor_cost"`
	TotalCost         float64                `json:"total_cost"`
	ActualCost        float64                `json:"actual_cost"`
	Materials         []MaterialLineResponse `json:"materials,omitempty"`
	Labor             []LaborLineResponse    `json:"labor,omitempty"`
}

func taskToResponse(t *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:                t.ID.String(),
		ProjectID:         t.ProjectID.String(),
		Name:              t.Name,
		Description:       t.Description,
		PhaseID:           t.PhaseID,
		ComponentID:       t.ComponentID,
		DurationDays:      t.DurationDays,
		PlannedStartDate:  formatDate(t.PlannedStartDate),
		PlannedFinishDate: formatDate(t.PlannedFinishDate),
		ActualStartDate:   formatDate(t.ActualStartDate),
		ActualFinishDate:  formatDate(t.ActualFinishDate),
		PercentComplete:   t.PercentComplete,
		Status:            t.Status,
		Priority:          t.Priority,
		MaterialCost:      t.MaterialCost,
		LaborCost:         t.LaborCost,
		TotalCost:         t.TotalCost,
		ActualCost:        t.ActualCost,
	}
	if t.ParentTaskID != nil {
		parent := t.ParentTaskID.String()
		resp.ParentTaskID = &parent
	}
	for _, m := range t.Materials {
		resp.Materials = append(resp.Materials, MaterialLineResponse{
			MaterialID: m.MaterialID.String(),
			Quantity:   m.Quantity,
			UnitCost:   m.UnitCost,
		})
	}
	for _, l := range t.Labor {
		resp.Labor = append(resp.Labor, LaborLineResponse{
			Type:    l.Type,
			Workers: l.Workers,
			Rate:    l.Rate,
			Days:    l.Days,
			Hours:   l.Hours,
		})
	}
	return resp
}

func materialLinesFromRequest(lines []MaterialLineRequest) ([]model.TaskMaterial, error) {
	items := make([]model.TaskMaterial, 0, len(lines))
	for _, l := range lines {
		materialID, err := uuid.Parse(l.MaterialID)
		if err != nil {
			return nil, errors.New("invalid material_id format")
		}
		items = append(items, model.TaskMaterial{
			MaterialID: materialID,
			Quantity:   l.Quantity,
			UnitCost:   l.UnitCost,
		})
	}
	return items, nil
}

func laborLinesFromRequest(lines []LaborLineRequest) []model.TaskLabor {
	items := make([]model.TaskLabor, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.TaskLabor{
			Type:    l.Type,
			Workers: l.Workers,
			Rate:    l.Rate,
			Days:    l.Days,
			Hours:   l.Hours,
		})
	}
	return items
}

// Create создает новую задачу и вычисляет ее стоимость
// @Summary      Create a task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body TaskRequest true "Task data"
// @Success      201 {object} TaskResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	// Парсим запрос
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	// Проверяем существование проекта
	if _, err := h.projectRepo.GetByID(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	if req.DurationDays == 0 {
		req.DurationDays = 1
	}
	if req.DurationDays < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_days must be at least 1"})
		return
	}
	if req.Status == "" {
		req.Status = model.TaskStatusPending
	}
	if !model.IsValidTaskStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task status"})
		return
	}
	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}
	if !model.IsValidTaskPriority(req.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task priority"})
		return
	}

	plannedStart, err := parseDate(req.PlannedStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planned_start_date format, expected YYYY-MM-DD"})
		return
	}
	plannedFinish, err := parseDate(req.PlannedFinishDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planned_finish_date format, expected YYYY-MM-DD"})
		return
	}

	var parentTaskID *uuid.UUID
	if req.ParentTaskID != nil {
		parent, err := uuid.Parse(*req.ParentTaskID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent_task_id format"})
			return
		}
		parentTaskID = &parent
	}

	// Собираем и проверяем строки сметы
	materials, err := materialLinesFromRequest(req.Materials)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	labor := laborLinesFromRequest(req.Labor)

	if err := costing.ValidateMaterials(materials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := costing.ValidateLabor(labor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := &model.Task{
		ID:                uuid.New(),
		ProjectID:         projectID,
		ParentTaskID:      parentTaskID,
		Name:              req.Name,
		Description:       req.Description,
		PhaseID:           req.PhaseID,
		ComponentID:       req.ComponentID,
		DurationDays:      req.DurationDays,
		PlannedStartDate:  plannedStart,
		PlannedFinishDate: plannedFinish,
		Status:            req.Status,
		Priority:          req.Priority,
	}
	for i := range materials {
		materials[i].ID = uuid.New()
		materials[i].TaskID = task.ID
		materials[i].Position = i
	}
	for i := range labor {
		labor[i].ID = uuid.New()
		labor[i].TaskID = task.ID
		labor[i].Position = i
	}
	task.Materials = materials
	task.Labor = labor

	// Вычисляем стоимость до сохранения
	costing.Recalculate(task)

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, taskToResponse(task))
}

// GetByID возвращает задачу по ID
// @Summary      Get a task
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} TaskResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	c.JSON(http.StatusOK, taskToResponse(task))
}

// GetByProjectID возвращает все задачи проекта
// @Summary      List project tasks
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {array} TaskResponse
// @Router       /projects/{id}/tasks [get]
func (h *TaskHandler) GetByProjectID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	if _, err := h.projectRepo.GetByID(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	tasks, err := h.taskRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		response = append(response, taskToResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Update обновляет задачу; при наличии materials или labor в запросе
// строки сметы заменяются и стоимости пересчитываются
// @Summary      Update a task
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID"
// @Param        request body TaskUpdateRequest true "Fields to update"
// @Success      200 {object} TaskResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}

	// Применяем скалярные поля
	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Task name cannot be empty"})
			return
		}
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.ParentTaskID != nil {
		if *req.ParentTaskID == "" {
			task.ParentTaskID = nil
		} else {
			parent, err := uuid.Parse(*req.ParentTaskID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent_task_id format"})
				return
			}
			task.ParentTaskID = &parent
		}
	}
	if req.PhaseID != nil {
		task.PhaseID = *req.PhaseID
	}
	if req.ComponentID != nil {
		task.ComponentID = *req.ComponentID
	}
	if req.DurationDays != nil {
		if *req.DurationDays < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration_days must be at least 1"})
			return
		}
		task.DurationDays = *req.DurationDays
	}
	if req.PercentComplete != nil {
		if *req.PercentComplete < 0 || *req.PercentComplete > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percent_complete must be between 0 and 100"})
			return
		}
		task.PercentComplete = *req.PercentComplete
	}
	if req.Status != nil {
		if !model.IsValidTaskStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task status"})
			return
		}
		task.Status = *req.Status
	}
	if req.Priority != nil {
		if !model.IsValidTaskPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task priority"})
			return
		}
		task.Priority = *req.Priority
	}
	if req.ActualCost != nil {
		if *req.ActualCost < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "actual_cost must not be negative"})
			return
		}
		task.ActualCost = *req.ActualCost
	}

	if req.PlannedStartDate != nil {
		t, err := parseDate(req.PlannedStartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planned_start_date format, expected YYYY-MM-DD"})
			return
		}
		task.PlannedStartDate = t
	}
	if req.PlannedFinishDate != nil {
		t, err := parseDate(req.PlannedFinishDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid planned_finish_date format, expected YYYY-MM-DD"})
			return
		}
		task.PlannedFinishDate = t
	}
	if req.ActualStartDate != nil {
		t, err := parseDate(req.ActualStartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid actual_start_date format, expected YYYY-MM-DD"})
			return
		}
		task.ActualStartDate = t
	}
	if req.ActualFinishDate != nil {
		t, err := parseDate(req.ActualFinishDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid actual_finish_date format, expected YYYY-MM-DD"})
			return
		}
		task.ActualFinishDate = t
	}

	// Если строки сметы присутствуют в запросе, заменяем их целиком и
	// пересчитываем стоимости
	if req.Materials != nil || req.Labor != nil {
		materials := task.Materials
		labor := task.Labor
		if req.Materials != nil {
			materials, err = materialLinesFromRequest(*req.Materials)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		if req.Labor != nil {
			labor = laborLinesFromRequest(*req.Labor)
		}

		if err := costing.ValidateMaterials(materials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := costing.ValidateLabor(labor); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		task.Materials = materials
		task.Labor = labor
		costing.Recalculate(task)

		if err := h.taskRepo.ReplaceLineItems(c.Request.Context(), task, materials, labor); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}
		c.JSON(http.StatusOK, taskToResponse(task))
		return
	}

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, taskToResponse(task))
}

// Delete удаляет задачу. Ссылки parent_task_id других задач не проверяются.
// @Summary      Delete a task
// @Tags         Tasks
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Success      200 {object} map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully", "id": taskID.String()})
}

// DependencyRequest представляет запрос на добавление ребра предшествования
type DependencyRequest struct {
	PredecessorID string `json:"predecessor_id" binding:"required,uuid"`
}

// AddDependency добавляет ребро предшествования predecessor -> task
// @Summary      Add a task dependency
// @Tags         Tasks
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Successor task ID"
// @Param        request body DependencyRequest true "Predecessor"
// @Success      201 {object} map[string]string
// @Router       /tasks/{id}/dependencies [post]
func (h *TaskHandler) AddDependency(c *gin.Context) {
	successorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req DependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	predecessorID, err := uuid.Parse(req.PredecessorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid predecessor_id format"})
		return
	}
	if predecessorID == successorID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A task cannot depend on itself"})
		return
	}

	// Обе задачи должны существовать и принадлежать одному проекту
	successor, err := h.taskRepo.GetByID(c.Request.Context(), successorID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}
	predecessor, err := h.taskRepo.GetByID(c.Request.Context(), predecessorID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Predecessor task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return
	}
	if successor.ProjectID != predecessor.ProjectID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tasks belong to different projects"})
		return
	}

	dep := &model.TaskDependency{
		ID:            uuid.New(),
		ProjectID:     successor.ProjectID,
		PredecessorID: predecessorID,
		SuccessorID:   successorID,
	}
	if err := h.depRepo.Create(c.Request.Context(), dep); err != nil {
		if errors.Is(err, repository.ErrDependencyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Dependency already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dependency"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             dep.ID.String(),
		"predecessor_id": predecessorID.String(),
		"successor_id":   successorID.String(),
	})
}

// RemoveDependency удаляет ребро предшествования
// @Summary      Remove a task dependency
// @Tags         Tasks
// @Security     BearerAuth
// @Param        id path string true "Successor task ID"
// @Param        predecessor_id path string true "Predecessor task ID"
// @Success      200 {object} map[string]string
// @Router       /tasks/{id}/dependencies/{predecessor_id} [delete]
func (h *TaskHandler) RemoveDependency(c *gin.Context) {
	successorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}
	predecessorID, err := uuid.Parse(c.Param("predecessor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid predecessor ID format"})
		return
	}

	if err := h.depRepo.Delete(c.Request.Context(), successorID, predecessorID); err != nil {
		if errors.Is(err, repository.ErrDependencyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dependency not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dependency"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dependency removed"})
}

// GetProjectDependencies возвращает все ребра предшествования проекта
// @Summary      List project dependencies
// @Tags         Tasks
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {array} map[string]string
// @Router       /projects/{id}/dependencies [get]
func (h *TaskHandler) GetProjectDependencies(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	deps, err := h.depRepo.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dependencies"})
		return
	}

	response := make([]gin.H, 0, len(deps))
	for _, d := range deps {
		response = append(response, gin.H{
			"id":             d.ID.String(),
			"predecessor_id": d.PredecessorID.String(),
			"successor_id":   d.SuccessorID.String(),
		})
	}
	c.JSON(http.StatusOK, response)
}
