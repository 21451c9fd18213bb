package models

import "time"

// Appointment statuses. Only pending and confirmed appointments
// block availability; completed and cancelled never do.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses are the statuses that occupy a slot on the calendar.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

// Appointment represents a customer booking with an artist.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerPhone   string    `bson:"customer_phone" json:"customer_phone"`
	ServiceID       string    `bson:"service_id" json:"service_id"`
	ArtistID        string    `bson:"artist_id" json:"artist_id"`
	AppointmentDate string    `bson:"appointment_date" json:"appointment_date"` // "YYYY-MM-DD"
	AppointmentTime string    `bson:"appointment_time" json:"appointment_time"` // "HH:MM"
	Status          string    `bson:"status" json:"status"`
	Active          bool      `bson:"active" json:"-"` // mirrors status, backs the unique slot index
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	UserKey         string    `bson:"user_key,omitempty" json:"user_key,omitempty"` // customer account, empty for walk-ins
	ReminderSent    bool      `bson:"reminder_sent,omitempty" json:"reminder_sent,omitempty"`
	ReminderSentAt  time.Time `bson:"reminder_sent_at,omitempty" json:"reminder_sent_at,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// AppointmentRequest defines the payload for creating an appointment.
type AppointmentRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	ServiceID       string `json:"service_id" binding:"required"`
	ArtistID        string `json:"artist_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Notes           string `json:"notes,omitempty"`
	UserKey         string `json:"user_key,omitempty"`
}

// AppointmentStatusUpdate defines the payload for a status transition.
type AppointmentStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
