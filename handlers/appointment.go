package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "fabulous/database/repository/appointment"
	artistRepo "fabulous/database/repository/artist"
	"fabulous/models"
	"fabulous/services/booking"
	"fabulous/services/notification"
	"fabulous/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
	models.StatusCompleted: true,
	models.StatusCancelled: true,
}

// AppointmentHandler exposes the appointment booking flow.
type AppointmentHandler struct {
	Repo          appointmentRepo.AppointmentRepository
	Artists       artistRepo.ArtistRepository
	Availability  booking.AvailabilityService
	Notifications notification.NotificationService
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(
	repo appointmentRepo.AppointmentRepository,
	artists artistRepo.ArtistRepository,
	availability booking.AvailabilityService,
	notifications notification.NotificationService,
) *AppointmentHandler {
	return &AppointmentHandler{
		Repo:          repo,
		Artists:       artists,
		Availability:  availability,
		Notifications: notifications,
	}
}

// CreateAppointmentHandler handles POST /api/appointments. Validation
// here uses the submission policy (180-day horizon, fixed 09:00–19:00
// window), which is deliberately not the availability gate's policy.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := booking.ValidateAppointmentRequest(req, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artist, err := h.Artists.GetByID(c.Request.Context(), req.ArtistID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create appointment", err.Error())
		return
	}
	if artist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	// Advisory re-check right before the insert. The unique active-slot
	// index remains the actual double-booking guard.
	check, err := h.Availability.CheckSlot(c.Request.Context(), models.AvailabilityCheckRequest{
		ArtistID:  req.ArtistID,
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		if errors.Is(err, booking.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create appointment", err.Error())
		return
	}
	if !check.Available {
		c.JSON(http.StatusConflict, gin.H{"error": check.Reason})
		return
	}

	appt := models.Appointment{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ServiceID:       req.ServiceID,
		ArtistID:        req.ArtistID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          models.StatusPending,
		Notes:           req.Notes,
		UserKey:         req.UserKey,
	}
	if err := h.Repo.Create(c.Request.Context(), &appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": booking.ReasonSlotConflict})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create appointment", err.Error())
		return
	}

	invalidateAvailability(c.Request.Context(), appt.ArtistID, appt.AppointmentDate)
	c.JSON(http.StatusCreated, gin.H{"success": true, "appointment": appt})
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListAppointmentsHandler handles GET /api/appointments (admin).
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	filter := appointmentRepo.Filter{
		ArtistID: c.Query("artist_id"),
		Date:     c.Query("date"),
		Status:   c.Query("status"),
		UserKey:  c.Query("user_key"),
	}
	appts, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "count": len(appts)})
}

// UpdateStatusHandler handles PATCH /api/appointments/:id/status (admin).
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var req models.AppointmentStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !validStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status, must be one of pending, confirmed, completed, cancelled"})
		return
	}

	id := c.Param("id")
	if err := h.Repo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update appointment", err.Error())
		return
	}

	appt, err := h.Repo.GetByID(c.Request.Context(), id)
	if err == nil {
		if nerr := h.Notifications.NotifyStatusChange(c.Request.Context(), *appt); nerr != nil {
			utils.GetLogger().Warn("status-change notification failed",
				zap.String("appointmentId", id), zap.Error(nerr))
		}
		invalidateAvailability(c.Request.Context(), appt.ArtistID, appt.AppointmentDate)
		c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CancelAppointmentHandler handles DELETE /api/appointments/:id.
// Cancelling is a status transition; records are never removed.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Cancel(c.Request.Context(), id); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel appointment", err.Error())
		return
	}

	if appt, err := h.Repo.GetByID(c.Request.Context(), id); err == nil {
		if nerr := h.Notifications.NotifyStatusChange(c.Request.Context(), *appt); nerr != nil {
			utils.GetLogger().Warn("cancellation notification failed",
				zap.String("appointmentId", id), zap.Error(nerr))
		}
		invalidateAvailability(c.Request.Context(), appt.ArtistID, appt.AppointmentDate)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
