package handler

import (
	"errors"
	"net/http"
	"strconv"

	"siteops/internal/model"
	"siteops/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaterialHandler struct {
	materialRepo repository.MaterialRepositoryInterface
}

func NewMaterialHandler(materialRepo repository.MaterialRepositoryInterface) *MaterialHandler {
	return &MaterialHandler{materialRepo: materialRepo}
}

// MaterialRequest представляет запрос на создание материала
type MaterialRequest struct {
	Name            string  `json:"name" binding:"required"`
	CategoryID      string  `json:"category_id" binding:"required,uuid"`
	Unit            string  `json:"unit" binding:"required"`
	BaseCostPerUnit float64 `json:"base_cost_per_unit"`
	Properties      string  `json:"properties"`
}

// MaterialUpdateRequest представляет частичное обновление материала
type MaterialUpdateRequest struct {
	Name            *string  `json:"name"`
	CategoryID      *string  `json:"category_id"`
	Unit            *string  `json:"unit"`
	BaseCostPerUnit *float64 `json:"base_cost_per_unit"`
	Properties      *string  `json:"properties"`
}

// MaterialResponse представляет ответ с данными материала
type MaterialResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CategoryID      string  `json:"category_id"`
	Unit            string  `json:"unit"`
	BaseCostPerUnit float64 `json:"base_cost_per_unit"`
	Properties      string  `json:"properties,omitempty"`
	IsActive        bool    `json:"is_active"`
}

func materialToResponse(m *model.Material) MaterialResponse {
	return MaterialResponse{
		ID:              m.ID.String(),
		Name:            m.Name,
		CategoryID:      m.CategoryID.String(),
		Unit:            m.Unit,
		BaseCostPerUnit: m.BaseCostPerUnit,
		Properties:      m.Properties,
		IsActive:        m.IsActive,
	}
}

// Create создает новый материал
// @Summary      Create a material
// @Tags         Materials
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body MaterialRequest true "Material data"
// @Success      201 {object} MaterialResponse
// @Router       /materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.BaseCostPerUnit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "base_cost_per_unit must not be negative"})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id format"})
		return
	}
	if _, err := h.materialRepo.GetCategoryByID(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		return
	}

	material := &model.Material{
		ID:              uuid.New(),
		Name:            req.Name,
		CategoryID:      categoryID,
		Unit:            req.Unit,
		BaseCostPerUnit: req.BaseCostPerUnit,
		Properties:      req.Properties,
		IsActive:        true,
	}
	if err := h.materialRepo.Create(c.Request.Context(), material); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
		return
	}

	c.JSON(http.StatusCreated, materialToResponse(material))
}

// GetAll возвращает список активных материалов с пагинацией
// @Summary      List materials
// @Tags         Materials
// @Security     BearerAuth
// @Produce      json
// @Param        category_id query string false "Filter by category"
// @Param        limit query int false "Page size (default 50)"
// @Param        offset query int false "Offset"
// @Success      200 {array} MaterialResponse
// @Router       /materials [get]
func (h *MaterialHandler) GetAll(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id format"})
			return
		}
		categoryID = &id
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	materials, err := h.materialRepo.GetAll(c.Request.Context(), categoryID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve materials"})
		return
	}

	response := make([]MaterialResponse, 0, len(materials))
	for i := range materials {
		response = append(response, materialToResponse(&materials[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetByID возвращает материал по ID
// @Summary      Get a material
// @Tags         Materials
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Material ID"
// @Success      200 {object} MaterialResponse
// @Router       /materials/{id} [get]
func (h *MaterialHandler) GetByID(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID format"})
		return
	}

	material, err := h.materialRepo.GetByID(c.Request.Context(), materialID)
	if err != nil {
		if errors.Is(err, repository.ErrMaterialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve material"})
		return
	}

	c.JSON(http.StatusOK, materialToResponse(material))
}

// Update обновляет материал
// @Summary      Update a material
// @Tags         Materials
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Material ID"
// @Param        request body MaterialUpdateRequest true "Fields to update"
// @Success      200 {object} MaterialResponse
// @Router       /materials/{id} [put]
func (h *MaterialHandler) Update(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID format"})
		return
	}

	var req MaterialUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	material, err := h.materialRepo.GetByID(c.Request.Context(), materialID)
	if err != nil {
		if errors.Is(err, repository.ErrMaterialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve material"})
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Material name cannot be empty"})
			return
		}
		material.Name = *req.Name
	}
	if req.Unit != nil {
		material.Unit = *req.Unit
	}
	if req.BaseCostPerUnit != nil {
		if *req.BaseCostPerUnit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "base_cost_per_unit must not be negative"})
			return
		}
		material.BaseCostPerUnit = *req.BaseCostPerUnit
	}
	if req.Properties != nil {
		material.Properties = *req.Properties
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id format"})
			return
		}
		if _, err := h.materialRepo.GetCategoryByID(c.Request.Context(), categoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			return
		}
		material.CategoryID = categoryID
	}

	if err := h.materialRepo.Update(c.Request.Context(), material); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update material"})
		return
	}

	c.JSON(http.StatusOK, materialToResponse(material))
}

// Delete деактивирует материал (мягкое удаление)
// @Summary      Deactivate a material
// @Tags         Materials
// @Security     BearerAuth
// @Param        id path string true "Material ID"
// @Success      200 {object} map[string]string
// @Router       /materials/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID format"})
		return
	}

	if err := h.materialRepo.Deactivate(c.Request.Context(), materialID); err != nil {
		if errors.Is(err, repository.ErrMaterialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate material"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deactivated", "id": materialID.String()})
}

// GetCategories возвращает список категорий материалов
// @Summary      List material categories
// @Tags         Materials
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} model.MaterialCategory
// @Router       /materials/categories [get]
func (h *MaterialHandler) GetCategories(c *gin.Context) {
	categories, err := h.materialRepo.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}
