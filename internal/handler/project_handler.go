package handler

import (
	"errors"
	"log"
	"net/http"

	"siteops/internal/catalog"
	"siteops/internal/middleware"
	"siteops/internal/model"
	"siteops/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectRepo repository.ProjectRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	catalog     *catalog.Catalog
}

func NewProjectHandler(
	projectRepo repository.ProjectRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	cat *catalog.Catalog,
) *ProjectHandler {
	return &ProjectHandler{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		catalog:     cat,
	}
}

// ProjectRequest представляет запрос на создание проекта
type ProjectRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	LocationAddress  string  `json:"location_address"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Budget           float64 `json:"budget" binding:"omitempty,min=0"`
	StartDate        *string `json:"start_date"`
	TargetCompletion *string `json:"target_completion"`
	AutoGenerate     bool    `json:"auto_generate"`
}

// ProjectUpdateRequest представляет частичное обновление проекта
type ProjectUpdateRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	LocationAddress  *string  `json:"location_address"`
	City             *string  `json:"city"`
	State            *string  `json:"state"`
	Budget           *float64 `json:"budget"`
	Status           *string  `json:"status"`
	StartDate        *string  `json:"start_date"`
	TargetCompletion *string  `json:"target_completion"`
}

// ProjectResponse представляет ответ с данными проекта
type ProjectResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	LocationAddress  string  `json:"location_address,omitempty"`
	City             string  `json:"city,omitempty"`
	State            string  `json:"state,omitempty"`
	Budget           float64 `json:"budget"`
	Status           string  `json:"status"`
	StartDate        *string `json:"start_date,omitempty"`
	TargetCompletion *string `json:"target_completion,omitempty"`
	GeneratedTasks   int     `json:"generated_tasks,omitempty"`
}

func projectToResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		Description:      p.Description,
		LocationAddress:  p.LocationAddress,
		City:             p.City,
		State:            p.State,
		Budget:           p.Budget,
		Status:           p.Status,
		StartDate:        formatDate(p.StartDate),
		TargetCompletion: formatDate(p.TargetCompletion),
	}
}

// Create создает новый проект и, при auto_generate, задачи по каталогу
// @Summary      Create a project
// @Tags         Projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body ProjectRequest true "Project data"
// @Success      201 {object} ProjectResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	// Получаем ID текущего пользователя из контекста
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	builderID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	// Парсим запрос
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date format, expected YYYY-MM-DD"})
		return
	}
	targetCompletion, err := parseDate(req.TargetCompletion)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target_completion format, expected YYYY-MM-DD"})
		return
	}

	project := &model.Project{
		ID:               uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		LocationAddress:  req.LocationAddress,
		City:             req.City,
		State:            req.State,
		Budget:           req.Budget,
		Status:           model.ProjectStatusPlanning,
		StartDate:        startDate,
		TargetCompletion: targetCompletion,
		BuilderID:        builderID,
	}

	if err := h.projectRepo.Create(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	response := projectToResponse(project)

	// Генерируем задачи по каталогу фаз и компонентов. Цикл работает по
	// принципу best effort: при сбое уже созданные задачи остаются,
	// отката нет.
	if req.AutoGenerate {
		created, err := h.generateTasks(c, project)
		response.GeneratedTasks = created
		if err != nil {
			log.Printf("⚠️  Task auto-generation stopped after %d tasks: %v", created, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":           "Task auto-generation failed partway",
				"project":         response,
				"generated_tasks": created,
			})
			return
		}
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProjectHandler) generateTasks(c *gin.Context, project *model.Project) (int, error) {
	created := 0
	for _, tpl := range h.catalog.TaskTemplates() {
		task := &model.Task{
			ID:           uuid.New(),
			ProjectID:    project.ID,
			Name:         tpl.Name,
			Description:  tpl.Description,
			PhaseID:      tpl.PhaseID,
			ComponentID:  tpl.ComponentID,
			DurationDays: tpl.DurationDays,
			Priority:     tpl.Priority,
			Status:       tpl.Status,
		}
		if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// GetAll возвращает проекты текущего пользователя
// @Summary      List projects
// @Tags         Projects
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ProjectResponse
// @Router       /projects [get]
func (h *ProjectHandler) GetAll(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	builderID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	projects, err := h.projectRepo.GetByBuilderID(c.Request.Context(), builderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		response = append(response, projectToResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetByID возвращает проект по ID
// @Summary      Get a project
// @Tags         Projects
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200 {object} ProjectResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	c.JSON(http.StatusOK, projectToResponse(project))
}

// Update обновляет поля проекта
// @Summary      Update a project
// @Tags         Projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID"
// @Param        request body ProjectUpdateRequest true "Fields to update"
// @Success      200 {object} ProjectResponse
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projectRepo.GetByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	// Применяем только переданные поля
	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Project name cannot be empty"})
			return
		}
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.LocationAddress != nil {
		project.LocationAddress = *req.LocationAddress
	}
	if req.City != nil {
		project.City = *req.City
	}
	if req.State != nil {
		project.State = *req.State
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Budget must be a positive number"})
			return
		}
		project.Budget = *req.Budget
	}
	if req.Status != nil {
		if !model.IsValidProjectStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project status"})
			return
		}
		project.Status = *req.Status
	}
	if req.StartDate != nil {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date format, expected YYYY-MM-DD"})
			return
		}
		project.StartDate = startDate
	}
	if req.TargetCompletion != nil {
		target, err := parseDate(req.TargetCompletion)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target_completion format, expected YYYY-MM-DD"})
			return
		}
		project.TargetCompletion = target
	}

	if err := h.projectRepo.Update(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, projectToResponse(project))
}

// Delete удаляет проект
// @Summary      Delete a project
// @Tags         Projects
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200 {object} map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	if err := h.projectRepo.Delete(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully", "id": projectID.String()})
}
