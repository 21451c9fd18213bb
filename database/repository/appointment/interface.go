package appointmentRepo

import (
	"context"

	"fabulous/models"
)

// Filter narrows List results. Zero-value fields are ignored.
type Filter struct {
	ArtistID string
	Date     string
	Status   string
	UserKey  string
}

// AppointmentRepository is the keyed appointment store the availability
// engine and the booking flow read and write.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context, filter Filter) ([]models.Appointment, error)

	// FindActive returns the pending/confirmed appointments for an
	// artist on a date in stable (start-time) order. A non-empty
	// excludeID drops that appointment, for rescheduling checks
	// against itself.
	FindActive(ctx context.Context, artistID, date, excludeID string) ([]models.Appointment, error)

	UpdateStatus(ctx context.Context, id, status string) error
	Cancel(ctx context.Context, id string) error

	// Reminder support.
	FindConfirmedUnreminded(ctx context.Context) ([]models.Appointment, error)
	MarkReminderSent(ctx context.Context, id string) error
}
