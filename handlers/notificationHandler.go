package handlers

import (
	"errors"
	"net/http"

	"fabulous/services/notification"
	"fabulous/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationHandler serves a customer's in-app notifications.
type NotificationHandler struct {
	Svc notification.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// ListNotificationsHandler handles GET /api/notifications?user_key=.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	userKey := c.Query("user_key")
	if userKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_key is required"})
		return
	}

	notifications, err := h.Svc.ListForUser(c.Request.Context(), userKey)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationReadHandler handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update notification", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
