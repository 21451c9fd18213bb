package cron

import (
	"encoding/json"
	"time"

	"fabulous/models"

	"github.com/hibiken/asynq"
)

// TypeReminderSend is the asynq task type for appointment reminders.
const TypeReminderSend = "reminder:send"

// NewReminderTask builds the asynq task carrying a reminder payload,
// scheduled for fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
