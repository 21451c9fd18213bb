package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"fabulous/models"
)

// BookingPolicy names one of the two date/time validation regimes.
//
// The availability gate (90 days, weekday-derived hours) and the
// submission gate (180 days, fixed 09:00–19:00 window) disagree on
// purpose: both existed independently in production and unifying them
// is a product decision, not ours. Keep them as two named policies.
type BookingPolicy struct {
	Name           string
	MaxAdvanceDays int
	// FixedWindow bypasses the weekday calendar and enforces
	// WindowStart/WindowEnd on every day, Sundays included.
	FixedWindow bool
	WindowStart int // minutes from midnight, only with FixedWindow
	WindowEnd   int
	horizonMsg  string
}

// AvailabilityPolicy is the authoritative gate for availability queries.
func AvailabilityPolicy() BookingPolicy {
	return BookingPolicy{
		Name:           "availability",
		MaxAdvanceDays: 90,
		horizonMsg:     ReasonTooFarAhead,
	}
}

// SubmissionPolicy is the looser gate applied when an appointment is created.
func SubmissionPolicy() BookingPolicy {
	return BookingPolicy{
		Name:           "submission",
		MaxAdvanceDays: 180,
		FixedWindow:    true,
		WindowStart:    9 * 60,
		WindowEnd:      19 * 60,
		horizonMsg:     "Cannot book more than 6 months in advance",
	}
}

func (p BookingPolicy) horizonReason() string {
	if p.horizonMsg != "" {
		return p.horizonMsg
	}
	return ReasonTooFarAhead
}

var (
	phoneStripRe = regexp.MustCompile(`[\s\-\(\)]`)
	phoneRe      = regexp.MustCompile(`^\+?\d{10,15}$`)
	timeRe       = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidateAppointmentRequest applies the submission policy to a booking
// payload. It returns the first violation found.
func ValidateAppointmentRequest(req models.AppointmentRequest, now time.Time) error {
	name := strings.TrimSpace(req.CustomerName)
	if len(name) < 2 {
		return errors.New("Name must be at least 2 characters")
	}
	if len(req.CustomerName) > 100 {
		return errors.New("Name too long (max 100 characters)")
	}

	if !phoneRe.MatchString(phoneStripRe.ReplaceAllString(req.CustomerPhone, "")) {
		return errors.New("Invalid phone number format")
	}

	policy := SubmissionPolicy()
	if ok, reason := policy.ValidateDate(req.AppointmentDate, now); !ok {
		return errors.New(reason)
	}

	if !timeRe.MatchString(req.AppointmentTime) {
		return errors.New("Invalid time format, use HH:MM")
	}
	start := TimeToMinutes(req.AppointmentTime)
	if start < policy.WindowStart {
		return errors.New("Appointment time must be after 9:00 AM")
	}
	if start >= policy.WindowEnd {
		return errors.New("Appointment time must be before 7:00 PM")
	}

	if len(req.Notes) > 500 {
		return errors.New("Notes too long (max 500 characters)")
	}
	return nil
}
