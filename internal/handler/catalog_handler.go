package handler

import (
	"net/http"
	"strconv"

	"siteops/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetPhases возвращает фазы строительства в порядке выполнения
// @Summary      List construction phases
// @Tags         Catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} catalog.Phase
// @Router       /catalog/phases [get]
func (h *CatalogHandler) GetPhases(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Phases())
}

// GetComponents возвращает компоненты, опционально по фазе
// @Summary      List construction components
// @Tags         Catalog
// @Security     BearerAuth
// @Produce      json
// @Param        phase_id query int false "Filter by phase"
// @Success      200 {array} catalog.Component
// @Router       /catalog/components [get]
func (h *CatalogHandler) GetComponents(c *gin.Context) {
	if raw := c.Query("phase_id"); raw != "" {
		phaseID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phase_id"})
			return
		}
		if _, ok := h.catalog.PhaseByID(phaseID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Phase not found"})
			return
		}
		c.JSON(http.StatusOK, h.catalog.ComponentsForPhase(phaseID))
		return
	}
	c.JSON(http.StatusOK, h.catalog.Components())
}
