package routes

import (
	"net/http"
	"time"

	"fabulous/handlers"
	"fabulous/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the booking and availability endpoints.
// The availability routes are declared before /:id so the static segments win.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("/availability", hb.GetAvailabilityHandler)
		api.POST("/check-availability", hb.CheckAvailabilityHandler)

		api.POST("", hb.CreateAppointmentHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)

		// Admin-only appointment management.
		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", hb.ListAppointmentsHandler)
		admin.PATCH("/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterCatalogRoutes registers the public service/artist catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/artists", hb.ListArtistsHandler)
	}
}

// RegisterNotificationRoutes registers customer notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("", hb.ListNotificationsHandler)
		api.PATCH("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterAdminRoutes registers the admin session endpoint.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.AdminLoginHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Fabulous Nails & Spa API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
