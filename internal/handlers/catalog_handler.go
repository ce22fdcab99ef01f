package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/httpresp"
	"github.com/fadebook/barber-booking/internal/models"
)

type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

func (h *CatalogHandler) ListBarbershops(c *gin.Context) {
	var shops []models.Barbershop
	if err := h.db.Order("name ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Failed to list barbershops.")
		return
	}

	httpresp.List(c, shops)
}

// GetBarbershop returns the shop with its services (cheapest first)
// and the barbers currently taking bookings.
func (h *CatalogHandler) GetBarbershop(c *gin.Context) {
	id := c.Param("id")

	var shop models.Barbershop
	if err := h.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("price ASC")
		}).
		Preload("Barbers", "is_available = ?", true).
		Preload("Barbers.User").
		First(&shop, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbershop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Failed to load barbershop.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
