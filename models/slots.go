package models

// BusinessHours holds the opening window for a single day.
// StartHour == EndHour == 0 means the salon is closed that day.
type BusinessHours struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Closed reports whether the day has no opening window.
func (h BusinessHours) Closed() bool {
	return h.StartHour == 0 && h.EndHour == 0
}

// BlockedSlot is a time range occupied by an active appointment.
type BlockedSlot struct {
	Start         string `json:"start"`    // "HH:MM"
	Duration      int    `json:"duration"` // minutes, buffer not included
	AppointmentID string `json:"appointment_id"`
}

// AvailabilityResult is the batch availability response body.
type AvailabilityResult struct {
	Success         bool          `json:"success"`
	AvailableSlots  []string      `json:"available_slots"`
	BlockedSlots    []BlockedSlot `json:"blocked_slots"`
	ServiceDuration int           `json:"service_duration"`
	Date            string        `json:"date"`
	ArtistID        string        `json:"artist_id"`
}

// AvailabilityCheckRequest is the point-check request body.
type AvailabilityCheckRequest struct {
	ArtistID             string `json:"artist_id" binding:"required"`
	Date                 string `json:"date" binding:"required"`
	Time                 string `json:"time" binding:"required"`
	ServiceID            string `json:"service_id" binding:"required"`
	ExcludeAppointmentID string `json:"exclude_appointment_id,omitempty"`
}

// AvailabilityCheckResult is the point-check response body.
type AvailabilityCheckResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
