package notification

import (
	"context"

	"fabulous/models"
)

// NotificationService creates and maintains in-app customer notifications.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, appt models.Appointment, serviceName, artistName string) error
	NotifyStatusChange(ctx context.Context, appt models.Appointment) error
	ListForUser(ctx context.Context, userKey string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error

	// CleanupExpired deletes notifications two days past their
	// appointment date and returns how many were removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
