package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fabulous/config"
	appointmentRepo "fabulous/database/repository/appointment"
	artistRepo "fabulous/database/repository/artist"
	serviceRepo "fabulous/database/repository/service"
	"fabulous/models"
	"fabulous/services/notification"

	"github.com/hibiken/asynq"
)

// WorkerDeps bundles the stores the reminder worker needs.
type WorkerDeps struct {
	Appointments  appointmentRepo.AppointmentRepository
	Services      serviceRepo.ServiceRepository
	Artists       artistRepo.ArtistRepository
	Notifications notification.NotificationService
}

// InitReminderWorker runs the async worker in background and returns
// the server so main can shut it down.
func InitReminderWorker(deps WorkerDeps) *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(deps))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	return srv
}

func handleReminderTask(deps WorkerDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		appt, err := deps.Appointments.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] appointment %s lookup failed: %v", p.AppointmentID, err)
			return err
		}
		if appt.ReminderSent || appt.Status != models.StatusConfirmed {
			// Scans overlap; another run may have handled this one already.
			return nil
		}

		serviceName := ""
		if svc, err := deps.Services.GetByID(ctx, appt.ServiceID); err == nil && svc != nil {
			serviceName = svc.NameDE
		}
		artistName := ""
		if artist, err := deps.Artists.GetByID(ctx, appt.ArtistID); err == nil && artist != nil {
			artistName = artist.Name
		}

		if err := deps.Notifications.SendAppointmentReminder(ctx, *appt, serviceName, artistName); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", appt.ID, err)
			return err
		}
		if err := deps.Appointments.MarkReminderSent(ctx, appt.ID); err != nil {
			log.Printf("[ReminderHandler] failed to mark reminder sent for %s: %v", appt.ID, err)
			return err
		}

		log.Printf("[ReminderHandler] reminder sent for appointment %s", appt.ID)
		return nil
	}
}
