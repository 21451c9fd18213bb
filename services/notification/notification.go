package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "fabulous/database/repository/notification"
	"fabulous/models"
	"fabulous/utils"

	"go.uber.org/zap"
)

// expiryDays is how long a notification outlives its appointment date.
const expiryDays = 2

// DefaultNotificationService implements NotificationService over the
// notification store.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// SendAppointmentReminder creates the reminder notification for an
// upcoming appointment. Customer-facing copy is German, matching the
// rest of the product.
func (s *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, appt models.Appointment, serviceName, artistName string) error {
	if appt.UserKey == "" {
		utils.GetLogger().Debug("skipping reminder, appointment has no user",
			zap.String("appointmentId", appt.ID))
		return nil
	}
	if serviceName == "" {
		serviceName = "Ihr Service"
	}
	if artistName == "" {
		artistName = "Ihr Stylist"
	}

	n := &models.Notification{
		UserKey: appt.UserKey,
		Type:    models.NotificationReminder,
		Title:   "Terminerinnerung",
		Message: fmt.Sprintf("Ihr Termin für %s mit %s ist in 2 Stunden! Datum: %s um %s Uhr.",
			serviceName, artistName, appt.AppointmentDate, appt.AppointmentTime),
		AppointmentID:   appt.ID,
		AppointmentDate: appt.AppointmentDate,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("notification: reminder create failed: %w", err)
	}
	return nil
}

// NotifyStatusChange records a status-transition notification for the
// customer who owns the appointment.
func (s *DefaultNotificationService) NotifyStatusChange(ctx context.Context, appt models.Appointment) error {
	if appt.UserKey == "" {
		return nil
	}

	n := &models.Notification{
		UserKey: appt.UserKey,
		Type:    models.NotificationStatusChanged,
		Title:   "Terminstatus aktualisiert",
		Message: fmt.Sprintf("Ihr Termin am %s um %s Uhr ist jetzt: %s.",
			appt.AppointmentDate, appt.AppointmentTime, appt.Status),
		AppointmentID:   appt.ID,
		AppointmentDate: appt.AppointmentDate,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("notification: status-change create failed: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) ListForUser(ctx context.Context, userKey string) ([]models.Notification, error) {
	return s.Repo.ListByUserKey(ctx, userKey)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}

// CleanupExpired removes notifications whose appointment date is more
// than expiryDays in the past. Dateless notifications are kept for 30
// days from creation.
func (s *DefaultNotificationService) CleanupExpired(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	cutoffDate := now.AddDate(0, 0, -expiryDays).Format("2006-01-02")
	createdBefore := now.AddDate(0, 0, -30)

	deleted, err := s.Repo.DeleteExpired(ctx, cutoffDate, createdBefore)
	if err != nil {
		return 0, fmt.Errorf("notification: cleanup failed: %w", err)
	}
	return deleted, nil
}
