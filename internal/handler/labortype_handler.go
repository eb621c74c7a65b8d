package handler

import (
	"errors"
	"net/http"

	"siteops/internal/model"
	"siteops/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LaborTypeHandler struct {
	laborTypeRepo repository.LaborTypeRepositoryInterface
}

func NewLaborTypeHandler(laborTypeRepo repository.LaborTypeRepositoryInterface) *LaborTypeHandler {
	return &LaborTypeHandler{laborTypeRepo: laborTypeRepo}
}

// LaborTypeRequest представляет запрос на создание вида работ
type LaborTypeRequest struct {
	Name             string   `json:"name" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	SkillLevel       string   `json:"skill_level" binding:"required"`
	HourlyRate       float64  `json:"hourly_rate"`
	DailyRate        float64  `json:"daily_rate"`
	JobRate          *float64 `json:"job_rate"`
	Unit             string   `json:"unit"`
	Description      string   `json:"description"`
	ApplicablePhases string   `json:"applicable_phases"`
}

// LaborTypeResponse представляет ответ с данными вида работ
type LaborTypeResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	SkillLevel       string   `json:"skill_level"`
	HourlyRate       float64  `json:"hourly_rate"`
	DailyRate        float64  `json:"daily_rate"`
	JobRate          *float64 `json:"job_rate,omitempty"`
	Unit             string   `json:"unit,omitempty"`
	Description      string   `json:"description,omitempty"`
	ApplicablePhases string   `json:"applicable_phases,omitempty"`
}

func laborTypeToResponse(lt *model.LaborType) LaborTypeResponse {
	return LaborTypeResponse{
		ID:               lt.ID.String(),
		Name:             lt.Name,
		Category:         lt.Category,
		SkillLevel:       lt.SkillLevel,
		HourlyRate:       lt.HourlyRate,
		DailyRate:        lt.DailyRate,
		JobRate:          lt.JobRate,
		Unit:             lt.Unit,
		Description:      lt.Description,
		ApplicablePhases: lt.ApplicablePhases,
	}
}

// Create создает новый вид работ
// @Summary      Create a labor type
// @Tags         Labor
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body LaborTypeRequest true "Labor type data"
// @Success      201 {object} LaborTypeResponse
// @Router       /labor-types [post]
func (h *LaborTypeHandler) Create(c *gin.Context) {
	var req LaborTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.HourlyRate < 0 || req.DailyRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rates must not be negative"})
		return
	}

	laborType := &model.LaborType{
		ID:               uuid.New(),
		Name:             req.Name,
		Category:         req.Category,
		SkillLevel:       req.SkillLevel,
		HourlyRate:       req.HourlyRate,
		DailyRate:        req.DailyRate,
		JobRate:          req.JobRate,
		Unit:             req.Unit,
		Description:      req.Description,
		ApplicablePhases: req.ApplicablePhases,
	}
	if err := h.laborTypeRepo.Create(c.Request.Context(), laborType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create labor type"})
		return
	}

	c.JSON(http.StatusCreated, laborTypeToResponse(laborType))
}

// GetAll возвращает список видов работ с фильтрами
// @Summary      List labor types
// @Tags         Labor
// @Security     BearerAuth
// @Produce      json
// @Param        category query string false "Filter by category"
// @Param        skill_level query string false "Filter by skill level"
// @Success      200 {array} LaborTypeResponse
// @Router       /labor-types [get]
func (h *LaborTypeHandler) GetAll(c *gin.Context) {
	laborTypes, err := h.laborTypeRepo.GetAll(c.Request.Context(), c.Query("category"), c.Query("skill_level"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve labor types"})
		return
	}

	response := make([]LaborTypeResponse, 0, len(laborTypes))
	for i := range laborTypes {
		response = append(response, laborTypeToResponse(&laborTypes[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetByID возвращает вид работ по ID
// @Summary      Get a labor type
// @Tags         Labor
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Labor type ID"
// @Success      200 {object} LaborTypeResponse
// @Router       /labor-types/{id} [get]
func (h *LaborTypeHandler) GetByID(c *gin.Context) {
	laborTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid labor type ID format"})
		return
	}

	laborType, err := h.laborTypeRepo.GetByID(c.Request.Context(), laborTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrLaborTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Labor type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve labor type"})
		return
	}

	c.JSON(http.StatusOK, laborTypeToResponse(laborType))
}

// LaborTypeUpdateRequest представляет частичное обновление вида работ
type LaborTypeUpdateRequest struct {
	Name             *string  `json:"name"`
	Category         *string  `json:"category"`
	SkillLevel       *string  `json:"skill_level"`
	HourlyRate       *float64 `json:"hourly_rate"`
	DailyRate        *float64 `json:"daily_rate"`
	JobRate          *float64 `json:"job_rate"`
	Unit             *string  `json:"unit"`
	Description      *string  `json:"description"`
	ApplicablePhases *string  `json:"applicable_phases"`
}

// Update обновляет вид работ
// @Summary      Update a labor type
// @Tags         Labor
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Labor type ID"
// @Param        request body LaborTypeUpdateRequest true "Fields to update"
// @Success      200 {object} LaborTypeResponse
// @Router       /labor-types/{id} [put]
func (h *LaborTypeHandler) Update(c *gin.Context) {
	laborTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid labor type ID format"})
		return
	}

	var req LaborTypeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	laborType, err := h.laborTypeRepo.GetByID(c.Request.Context(), laborTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrLaborTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Labor type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve labor type"})
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Labor type name cannot be empty"})
			return
		}
		laborType.Name = *req.Name
	}
	if req.Category != nil {
		laborType.Category = *req.Category
	}
	if req.SkillLevel != nil {
		laborType.SkillLevel = *req.SkillLevel
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rates must not be negative"})
			return
		}
		laborType.HourlyRate = *req.HourlyRate
	}
	if req.DailyRate != nil {
		if *req.DailyRate < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rates must not be negative"})
			return
		}
		laborType.DailyRate = *req.DailyRate
	}
	if req.JobRate != nil {
		laborType.JobRate = req.JobRate
	}
	if req.Unit != nil {
		laborType.Unit = *req.Unit
	}
	if req.Description != nil {
		laborType.Description = *req.Description
	}
	if req.ApplicablePhases != nil {
		laborType.ApplicablePhases = *req.ApplicablePhases
	}

	if err := h.laborTypeRepo.Update(c.Request.Context(), laborType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update labor type"})
		return
	}

	c.JSON(http.StatusOK, laborTypeToResponse(laborType))
}

// Delete удаляет вид работ
// @Summary      Delete a labor type
// @Tags         Labor
// @Security     BearerAuth
// @Param        id path string true "Labor type ID"
// @Success      200 {object} map[string]string
// @Router       /labor-types/{id} [delete]
func (h *LaborTypeHandler) Delete(c *gin.Context) {
	laborTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid labor type ID format"})
		return
	}

	if err := h.laborTypeRepo.Delete(c.Request.Context(), laborTypeID); err != nil {
		if errors.Is(err, repository.ErrLaborTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Labor type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete labor type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Labor type deleted", "id": laborTypeID.String()})
}
