package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fabulous/config"
	"fabulous/cron"
	"fabulous/database"
	appointmentRepo "fabulous/database/repository/appointment"
	artistRepo "fabulous/database/repository/artist"
	notificationRepo "fabulous/database/repository/notification"
	serviceRepo "fabulous/database/repository/service"
	"fabulous/handlers"
	"fabulous/middleware"
	"fabulous/routes"
	"fabulous/services/booking"
	"fabulous/services/notification"
	"fabulous/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()
	artRepo := artistRepo.NewMongoArtistRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	// Services.
	availabilityService := &booking.DefaultAvailabilityService{
		Appointments: apptRepo,
		Services:     svcRepo,
		Cfg: booking.Config{
			SlotInterval:         config.AppConfig.SlotIntervalMin,
			Buffer:               config.AppConfig.BufferMin,
			BlockUnknownServices: config.AppConfig.BlockUnknownServices,
		},
	}
	notificationService := &notification.DefaultNotificationService{
		Repo: notifRepo,
	}

	// Handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	appointmentHandler := handlers.NewAppointmentHandler(apptRepo, artRepo, availabilityService, notificationService)
	catalogHandler := handlers.NewCatalogHandler(svcRepo, artRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailabilityHandler:   availabilityHandler.GetAvailabilityHandler,
		CheckAvailabilityHandler: availabilityHandler.CheckAvailabilityHandler,

		CreateAppointmentHandler:       appointmentHandler.CreateAppointmentHandler,
		GetAppointmentHandler:          appointmentHandler.GetAppointmentHandler,
		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateStatusHandler,
		CancelAppointmentHandler:       appointmentHandler.CancelAppointmentHandler,

		ListServicesHandler: catalogHandler.ListServicesHandler,
		GetServiceHandler:   catalogHandler.GetServiceHandler,
		ListArtistsHandler:  catalogHandler.ListArtistsHandler,

		ListNotificationsHandler:    notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler: notificationHandler.MarkNotificationReadHandler,

		AdminLoginHandler: handlers.AdminLoginHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background jobs: reminder scan, notification cleanup, reminder worker.
	scheduler := cron.NewScheduler(apptRepo, notificationService)
	scheduler.Start()
	worker := cron.InitReminderWorker(cron.WorkerDeps{
		Appointments:  apptRepo,
		Services:      svcRepo,
		Artists:       artRepo,
		Notifications: notificationService,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	scheduler.Stop()
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
