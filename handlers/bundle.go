package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Availability endpoints.
	GetAvailabilityHandler   gin.HandlerFunc
	CheckAvailabilityHandler gin.HandlerFunc

	// Appointment endpoints.
	CreateAppointmentHandler       gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	CancelAppointmentHandler       gin.HandlerFunc

	// Catalog endpoints.
	ListServicesHandler gin.HandlerFunc
	GetServiceHandler   gin.HandlerFunc
	ListArtistsHandler  gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc

	// Admin endpoints.
	AdminLoginHandler gin.HandlerFunc
}
