package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"siteops/internal/model"
	"siteops/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SupplierHandler struct {
	supplierRepo repository.SupplierRepositoryInterface
	materialRepo repository.MaterialRepositoryInterface
}

func NewSupplierHandler(
	supplierRepo repository.SupplierRepositoryInterface,
	materialRepo repository.MaterialRepositoryInterface,
) *SupplierHandler {
	return &SupplierHandler{supplierRepo: supplierRepo, materialRepo: materialRepo}
}

// SupplierRequest представляет запрос на создание поставщика
type SupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Phone         string  `json:"phone"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Rating        float64 `json:"rating"`
}

// SupplierResponse представляет ответ с данными поставщика
type SupplierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contact_person,omitempty"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	City          string  `json:"city,omitempty"`
	State         string  `json:"state,omitempty"`
	Rating        float64 `json:"rating"`
}

func supplierToResponse(s *model.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		City:          s.City,
		State:         s.State,
		Rating:        s.Rating,
	}
}

// Create создает нового поставщика
// @Summary      Create a supplier
// @Tags         Suppliers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body SupplierRequest true "Supplier data"
// @Success      201 {object} SupplierResponse
// @Router       /suppliers [post]
func (h *SupplierHandler) Create(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 0 and 5"})
		return
	}

	supplier := &model.Supplier{
		ID:            uuid.New(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		City:          req.City,
		State:         req.State,
		Rating:        req.Rating,
	}
	if err := h.supplierRepo.Create(c.Request.Context(), supplier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		return
	}

	c.JSON(http.StatusCreated, supplierToResponse(supplier))
}

// GetAll возвращает список поставщиков с фильтрами
// @Summary      List suppliers
// @Tags         Suppliers
// @Security     BearerAuth
// @Produce      json
// @Param        city query string false "Filter by city"
// @Param        state query string false "Filter by state"
// @Param        min_rating query number false "Minimum rating"
// @Success      200 {array} SupplierResponse
// @Router       /suppliers [get]
func (h *SupplierHandler) GetAll(c *gin.Context) {
	minRating := 0.0
	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_rating"})
			return
		}
		minRating = v
	}

	suppliers, err := h.supplierRepo.GetAll(c.Request.Context(), c.Query("city"), c.Query("state"), minRating)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve suppliers"})
		return
	}

	response := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		response = append(response, supplierToResponse(&suppliers[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetByID возвращает поставщика по ID
// @Summary      Get a supplier
// @Tags         Suppliers
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Supplier ID"
// @Success      200 {object} SupplierResponse
// @Router       /suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier ID format"})
		return
	}

	supplier, err := h.supplierRepo.GetByID(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supplier"})
		return
	}

	c.JSON(http.StatusOK, supplierToResponse(supplier))
}

// SupplierUpdateRequest представляет частичное обновление поставщика
type SupplierUpdateRequest struct {
	Name          *string  `json:"name"`
	ContactPerson *string  `json:"contact_person"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	Phone         *string  `json:"phone"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	Rating        *float64 `json:"rating"`
}

// Update обновляет данные поставщика
// @Summary      Update a supplier
// @Tags         Suppliers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID"
// @Param        request body SupplierUpdateRequest true "Fields to update"
// @Success      200 {object} SupplierResponse
// @Router       /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier ID format"})
		return
	}

	var req SupplierUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	supplier, err := h.supplierRepo.GetByID(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supplier"})
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier name cannot be empty"})
			return
		}
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.City != nil {
		supplier.City = *req.City
	}
	if req.State != nil {
		supplier.State = *req.State
	}
	if req.Rating != nil {
		if *req.Rating < 0 || *req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 0 and 5"})
			return
		}
		supplier.Rating = *req.Rating
	}

	if err := h.supplierRepo.Update(c.Request.Context(), supplier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}

	c.JSON(http.StatusOK, supplierToResponse(supplier))
}

// Delete удаляет поставщика
// @Summary      Delete a supplier
// @Tags         Suppliers
// @Security     BearerAuth
// @Param        id path string true "Supplier ID"
// @Success      200 {object} map[string]string
// @Router       /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier ID format"})
		return
	}

	if err := h.supplierRepo.Delete(c.Request.Context(), supplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted", "id": supplierID.String()})
}

// PriceRequest представляет запись цены материала у поставщика
type PriceRequest struct {
	MaterialID string  `json:"material_id" binding:"required,uuid"`
	UnitCost   float64 `json:"unit_cost" binding:"required"`
	CostDate   *string `json:"cost_date"`
}

// AddPrice добавляет запись в историю цен поставщика
// @Summary      Record a material price
// @Tags         Suppliers
// @Security     BearerAuth
// @Accept       json
// @Param        id path string true "Supplier ID"
// @Param        request body PriceRequest true "Price record"
// @Success      201 {object} map[string]string
// @Router       /suppliers/{id}/prices [post]
func (h *SupplierHandler) AddPrice(c *gin.Context) {
	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier ID format"})
		return
	}

	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.UnitCost < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_cost must not be negative"})
		return
	}

	materialID, err := uuid.Parse(req.MaterialID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material_id format"})
		return
	}

	if _, err := h.supplierRepo.GetByID(c.Request.Context(), supplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve supplier"})
		return
	}
	if _, err := h.materialRepo.GetByID(c.Request.Context(), materialID); err != nil {
		if errors.Is(err, repository.ErrMaterialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve material"})
		return
	}

	costDate := time.Now()
	if req.CostDate != nil {
		parsed, err := parseDate(req.CostDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cost_date format, expected YYYY-MM-DD"})
			return
		}
		if parsed != nil {
			costDate = *parsed
		}
	}

	price := &model.MaterialPrice{
		ID:         uuid.New(),
		MaterialID: materialID,
		SupplierID: supplierID,
		UnitCost:   req.UnitCost,
		CostDate:   costDate,
	}
	if err := h.supplierRepo.AddPrice(c.Request.Context(), price); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record price"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": price.ID.String()})
}

// GetMaterialPrices возвращает историю цен материала по всем поставщикам
// @Summary      Material price history
// @Tags         Suppliers
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Material ID"
// @Success      200 {array} map[string]interface{}
// @Router       /materials/{id}/prices [get]
func (h *SupplierHandler) GetMaterialPrices(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material ID format"})
		return
	}

	prices, err := h.supplierRepo.GetPricesByMaterial(c.Request.Context(), materialID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve prices"})
		return
	}

	response := make([]gin.H, 0, len(prices))
	for _, p := range prices {
		response = append(response, gin.H{
			"id":            p.ID.String(),
			"supplier_id":   p.SupplierID.String(),
			"supplier_name": p.Supplier.Name,
			"unit_cost":     p.UnitCost,
			"cost_date":     p.CostDate.Format(dateLayout),
		})
	}
	c.JSON(http.StatusOK, response)
}
