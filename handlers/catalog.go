package handlers

import (
	"net/http"

	artistRepo "fabulous/database/repository/artist"
	serviceRepo "fabulous/database/repository/service"
	"fabulous/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only service and artist catalog.
type CatalogHandler struct {
	Services serviceRepo.ServiceRepository
	Artists  artistRepo.ArtistRepository
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(services serviceRepo.ServiceRepository, artists artistRepo.ArtistRepository) *CatalogHandler {
	return &CatalogHandler{Services: services, Artists: artists}
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Services.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Services.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service", err.Error())
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListArtistsHandler handles GET /api/artists.
func (h *CatalogHandler) ListArtistsHandler(c *gin.Context) {
	artists, err := h.Artists.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list artists", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": artists})
}
