package cron

import (
	"context"
	"time"

	"fabulous/config"
	appointmentRepo "fabulous/database/repository/appointment"
	"fabulous/models"
	"fabulous/services/booking"
	"fabulous/services/notification"
	"fabulous/utils"

	"github.com/hibiken/asynq"
	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reminders fire when an appointment starts between these two offsets
// from now. The scan runs every 30 minutes, so the one-hour window
// guarantees each appointment is seen at least once.
const (
	reminderWindowMin = 2 * time.Hour
	reminderWindowMax = 3 * time.Hour
)

// Scheduler drives the periodic background jobs: the reminder scan
// every 30 minutes and the notification cleanup daily at 02:00. It
// holds no business logic of its own; it reads the stores and reuses
// the booking time primitives. Lifecycle is explicit: main starts it
// after the stores are up and stops it on shutdown.
type Scheduler struct {
	Appointments  appointmentRepo.AppointmentRepository
	Notifications notification.NotificationService

	cron   *cronv3.Cron
	client *asynq.Client
}

// NewScheduler wires a Scheduler with its own asynq client.
func NewScheduler(appointments appointmentRepo.AppointmentRepository, notifications notification.NotificationService) *Scheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &Scheduler{
		Appointments:  appointments,
		Notifications: notifications,
		cron:          cronv3.New(),
		client:        client,
	}
}

// Start registers the jobs and launches the cron runner.
func (s *Scheduler) Start() {
	logger := utils.GetLogger()

	if _, err := s.cron.AddFunc("@every 30m", s.checkUpcomingAppointments); err != nil {
		logger.Error("failed to register reminder job", zap.Error(err))
	}
	if _, err := s.cron.AddFunc("0 2 * * *", s.cleanupNotifications); err != nil {
		logger.Error("failed to register cleanup job", zap.Error(err))
	}

	s.cron.Start()
	logger.Info("scheduler started",
		zap.String("reminderScan", "every 30m"),
		zap.String("notificationCleanup", "daily 02:00"))
}

// Stop halts the cron runner and closes the queue client. Jobs already
// running are allowed to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.client.Close()
	utils.GetLogger().Info("scheduler stopped")
}

// checkUpcomingAppointments enqueues a reminder for every confirmed,
// un-reminded appointment starting 2–3 hours from now.
func (s *Scheduler) checkUpcomingAppointments() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	windowStart := now.Add(reminderWindowMin)
	windowEnd := now.Add(reminderWindowMax)

	appts, err := s.Appointments.FindConfirmedUnreminded(ctx)
	if err != nil {
		logger.Error("reminder scan failed", zap.Error(err))
		return
	}

	enqueued := 0
	for _, appt := range appts {
		startsAt, ok := appointmentStart(appt)
		if !ok {
			logger.Warn("skipping appointment with unparseable date",
				zap.String("appointmentId", appt.ID),
				zap.String("date", appt.AppointmentDate))
			continue
		}
		if startsAt.Before(windowStart) || startsAt.After(windowEnd) {
			continue
		}

		payload := models.ReminderPayload{
			AppointmentID: appt.ID,
			UserKey:       appt.UserKey,
			FireDate:      startsAt.Format(time.RFC3339),
		}
		task, opts, err := NewReminderTask(payload, now)
		if err != nil {
			logger.Error("failed to build reminder task", zap.Error(err))
			continue
		}
		if _, err := s.client.Enqueue(task, opts...); err != nil {
			logger.Error("failed to enqueue reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		logger.Info("reminder scan complete", zap.Int("enqueued", enqueued))
	} else {
		logger.Debug("reminder scan complete, nothing to send")
	}
}

// cleanupNotifications removes notifications past their retention.
func (s *Scheduler) cleanupNotifications() {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	deleted, err := s.Notifications.CleanupExpired(ctx)
	if err != nil {
		logger.Error("notification cleanup failed", zap.Error(err))
		return
	}
	if deleted > 0 {
		logger.Info("notification cleanup complete", zap.Int64("deleted", deleted))
	} else {
		logger.Debug("notification cleanup complete, nothing to delete")
	}
}

// appointmentStart resolves an appointment's absolute start instant
// from its date string and wall-clock time.
func appointmentStart(appt models.Appointment) (time.Time, bool) {
	day, err := time.Parse("2006-01-02", appt.AppointmentDate)
	if err != nil {
		return time.Time{}, false
	}
	minutes := booking.TimeToMinutes(appt.AppointmentTime)
	return day.UTC().Add(time.Duration(minutes) * time.Minute), true
}
