package booking

import (
	"time"

	"fabulous/models"
)

const dateLayout = "2006-01-02"

// Validation failure reasons surfaced to clients.
const (
	ReasonPastDate      = "Cannot book appointments in the past"
	ReasonTooFarAhead   = "Cannot book more than 3 months in advance"
	ReasonClosedDay     = "Business is closed on this day (Sunday)"
	ReasonBadDateFormat = "Invalid date format, use YYYY-MM-DD"
)

// GetBusinessHours returns the opening window for the given "YYYY-MM-DD"
// date. Mon–Fri 9–19, Sat 10–17, Sun closed. An unparseable date falls
// back to the weekday default rather than failing.
func GetBusinessHours(date string) models.BusinessHours {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return models.BusinessHours{StartHour: 9, EndHour: 19}
	}

	switch d.Weekday() {
	case time.Sunday:
		return models.BusinessHours{StartHour: 0, EndHour: 0}
	case time.Saturday:
		return models.BusinessHours{StartHour: 10, EndHour: 17}
	default:
		return models.BusinessHours{StartHour: 9, EndHour: 19}
	}
}

// IsValidBookingDate is the availability gate: it rejects past dates,
// dates beyond the 90-day horizon, and closed days. It returns the
// rejection reason alongside the verdict.
func IsValidBookingDate(date string) (bool, string) {
	return AvailabilityPolicy().ValidateDate(date, time.Now())
}

// ValidateDate applies the policy's horizon and day rules to a
// "YYYY-MM-DD" date relative to now. Taking now as a parameter keeps
// the check deterministic under test.
func (p BookingPolicy) ValidateDate(date string, now time.Time) (bool, string) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, ReasonBadDateFormat
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(today) {
		return false, ReasonPastDate
	}
	if day.After(today.AddDate(0, 0, p.MaxAdvanceDays)) {
		return false, p.horizonReason()
	}
	if !p.FixedWindow && GetBusinessHours(date).Closed() {
		return false, ReasonClosedDay
	}
	return true, ""
}
