package booking

import (
	"context"
	"errors"

	"fabulous/models"
)

// ErrServiceNotFound is returned when the requested service id has no record.
var ErrServiceNotFound = errors.New("service not found")

// DateValidationError carries the calendar's human-readable rejection
// reason for an availability query.
type DateValidationError struct {
	Reason string
}

func (e *DateValidationError) Error() string {
	return e.Reason
}

// AvailabilityQuery is the input to a batch availability computation.
type AvailabilityQuery struct {
	ArtistID             string
	Date                 string
	ServiceID            string
	ExcludeAppointmentID string
}

// AvailabilityService computes bookable slots for an artist and date.
// It is purely advisory: exclusivity against double-booking is enforced
// by the appointment store's unique active-slot index, not here.
type AvailabilityService interface {
	// GetAvailability returns every bookable slot for the query's day
	// (browse mode). Invalid dates yield a *DateValidationError and
	// unknown services ErrServiceNotFound.
	GetAvailability(ctx context.Context, q AvailabilityQuery) (*models.AvailabilityResult, error)

	// CheckSlot decides whether one specific slot is bookable (point-check
	// mode). Date problems are reported in the result, not as an error.
	CheckSlot(ctx context.Context, req models.AvailabilityCheckRequest) (*models.AvailabilityCheckResult, error)

	// BlockedSlots resolves the active appointments for an artist/date
	// into blocked intervals.
	BlockedSlots(ctx context.Context, artistID, date, excludeID string) ([]models.BlockedSlot, error)
}

// Config holds the availability tunables.
type Config struct {
	SlotInterval int // slot granularity in minutes
	Buffer       int // idle gap applied to both sides of every comparison

	// BlockUnknownServices makes an appointment whose service record
	// cannot be resolved block with the 60-minute fallback instead of
	// silently not blocking at all.
	BlockUnknownServices bool
}

func (c Config) withDefaults() Config {
	if c.SlotInterval <= 0 {
		c.SlotInterval = 30
	}
	if c.Buffer < 0 {
		c.Buffer = 0
	} else if c.Buffer == 0 {
		c.Buffer = 10
	}
	return c
}
