package models

import "time"

// Notification types.
const (
	NotificationReminder      = "appointment_reminder"
	NotificationStatusChanged = "appointment_status"
)

// Notification is an in-app message shown to a customer.
type Notification struct {
	ID              string    `bson:"id" json:"id"`
	UserKey         string    `bson:"user_key" json:"user_key"`
	Type            string    `bson:"type" json:"type"`
	Title           string    `bson:"title" json:"title"`
	Message         string    `bson:"message" json:"message"`
	AppointmentID   string    `bson:"appointment_id,omitempty" json:"appointment_id,omitempty"`
	AppointmentDate string    `bson:"appointment_date,omitempty" json:"appointment_date,omitempty"` // "YYYY-MM-DD", drives cleanup
	Read            bool      `bson:"read" json:"read"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// ReminderPayload is the asynq task payload for a reminder send.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserKey       string `json:"userKey"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
