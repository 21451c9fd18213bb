package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fabulous/models"
	"fabulous/services/booking"
	"fabulous/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// availabilityCacheTTL is short on purpose: availability is a snapshot
// and new bookings must become visible quickly.
const availabilityCacheTTL = 30 * time.Second

// AvailabilityHandler exposes the slot-availability engine over HTTP.
type AvailabilityHandler struct {
	Svc booking.AvailabilityService
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc booking.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// GetAvailabilityHandler handles GET /api/appointments/availability.
// Browse mode: all bookable slots for an artist, date and service.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	artistID := c.Query("artist_id")
	date := c.Query("date")
	serviceID := c.Query("service_id")
	excludeID := c.Query("exclude_appointment_id")

	if artistID == "" || date == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artist_id, date, and service_id are required"})
		return
	}

	cacheKey := availabilityCacheKey(artistID, date, serviceID, excludeID)
	if cached, err := utils.GetCacheClient().Get(c.Request.Context(), cacheKey).Result(); err == nil {
		var result models.AvailabilityResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	result, err := h.Svc.GetAvailability(c.Request.Context(), booking.AvailabilityQuery{
		ArtistID:             artistID,
		Date:                 date,
		ServiceID:            serviceID,
		ExcludeAppointmentID: excludeID,
	})
	if err != nil {
		var dateErr *booking.DateValidationError
		switch {
		case errors.As(err, &dateErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": dateErr.Reason})
		case errors.Is(err, booking.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to get availability", err.Error())
		}
		return
	}

	if data, err := json.Marshal(result); err == nil {
		if err := utils.GetCacheClient().Set(c.Request.Context(), cacheKey, data, availabilityCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache availability", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

// CheckAvailabilityHandler handles POST /api/appointments/check-availability.
// Point-check mode: an invalid date comes back as {available:false, reason}
// with status 200, not as an error status like browse mode. Clients rely
// on the difference.
func (h *AvailabilityHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req models.AvailabilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.CheckSlot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func availabilityCacheKey(artistID, date, serviceID, excludeID string) string {
	return fmt.Sprintf("avail:%s:%s:%s:%s", artistID, date, serviceID, excludeID)
}

// invalidateAvailability drops every cached availability response for
// an artist/date pair. Called after any appointment write.
func invalidateAvailability(ctx context.Context, artistID, date string) {
	client := utils.GetCacheClient()
	pattern := fmt.Sprintf("avail:%s:%s:*", artistID, date)
	keys, err := client.Keys(ctx, pattern).Result()
	if err != nil {
		utils.GetLogger().Warn("availability cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
	}
}
