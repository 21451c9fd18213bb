package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentRepo "fabulous/database/repository/appointment"
	"fabulous/models"
)

type fakeAppointmentStore struct {
	appt           *models.Appointment
	getErr         error
	reminderMarked string
}

func (f *fakeAppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	return nil
}

func (f *fakeAppointmentStore) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appt, nil
}

func (f *fakeAppointmentStore) List(ctx context.Context, filter appointmentRepo.Filter) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentStore) FindActive(ctx context.Context, artistID, date, excludeID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentStore) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

func (f *fakeAppointmentStore) Cancel(ctx context.Context, id string) error { return nil }

func (f *fakeAppointmentStore) FindConfirmedUnreminded(ctx context.Context) ([]models.Appointment, error) {
	if f.appt == nil {
		return nil, nil
	}
	return []models.Appointment{*f.appt}, nil
}

func (f *fakeAppointmentStore) MarkReminderSent(ctx context.Context, id string) error {
	f.reminderMarked = id
	return nil
}

type fakeServiceStore struct {
	svc *models.Service
}

func (f *fakeServiceStore) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return f.svc, nil
}

func (f *fakeServiceStore) List(ctx context.Context) ([]models.Service, error) { return nil, nil }

type fakeArtistStore struct {
	artist *models.Artist
}

func (f *fakeArtistStore) GetByID(ctx context.Context, id string) (*models.Artist, error) {
	return f.artist, nil
}

func (f *fakeArtistStore) List(ctx context.Context) ([]models.Artist, error) { return nil, nil }

type fakeNotifier struct {
	sentFor     []string
	serviceName string
	artistName  string
	sendErr     error
}

func (f *fakeNotifier) SendAppointmentReminder(ctx context.Context, appt models.Appointment, serviceName, artistName string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentFor = append(f.sentFor, appt.ID)
	f.serviceName = serviceName
	f.artistName = artistName
	return nil
}

func (f *fakeNotifier) NotifyStatusChange(ctx context.Context, appt models.Appointment) error {
	return nil
}

func (f *fakeNotifier) ListForUser(ctx context.Context, userKey string) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(ctx context.Context, id string) error { return nil }

func (f *fakeNotifier) CleanupExpired(ctx context.Context) (int64, error) { return 0, nil }

func confirmedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:              "appt-1",
		UserKey:         "user-7",
		ServiceID:       "svc-gel",
		ArtistID:        "artist-1",
		AppointmentDate: "2026-03-02",
		AppointmentTime: "14:30",
		Status:          models.StatusConfirmed,
	}
}

func reminderTaskFor(t *testing.T, appt *models.Appointment) *asynq.Task {
	t.Helper()
	payload := models.ReminderPayload{AppointmentID: appt.ID, UserKey: appt.UserKey}
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(TypeReminderSend, b)
}

func TestHandleReminderTask(t *testing.T) {
	appts := &fakeAppointmentStore{appt: confirmedAppointment()}
	notifier := &fakeNotifier{}
	handler := handleReminderTask(WorkerDeps{
		Appointments:  appts,
		Services:      &fakeServiceStore{svc: &models.Service{ID: "svc-gel", NameDE: "Gel-Modellage"}},
		Artists:       &fakeArtistStore{artist: &models.Artist{ID: "artist-1", Name: "Maria"}},
		Notifications: notifier,
	})

	err := handler(context.Background(), reminderTaskFor(t, appts.appt))
	require.NoError(t, err)
	assert.Equal(t, []string{"appt-1"}, notifier.sentFor)
	assert.Equal(t, "Gel-Modellage", notifier.serviceName)
	assert.Equal(t, "Maria", notifier.artistName)
	assert.Equal(t, "appt-1", appts.reminderMarked)
}

func TestHandleReminderTaskAlreadySent(t *testing.T) {
	appt := confirmedAppointment()
	appt.ReminderSent = true
	appts := &fakeAppointmentStore{appt: appt}
	notifier := &fakeNotifier{}
	handler := handleReminderTask(WorkerDeps{
		Appointments:  appts,
		Services:      &fakeServiceStore{},
		Artists:       &fakeArtistStore{},
		Notifications: notifier,
	})

	err := handler(context.Background(), reminderTaskFor(t, appt))
	require.NoError(t, err)
	assert.Empty(t, notifier.sentFor)
	assert.Empty(t, appts.reminderMarked)
}

func TestHandleReminderTaskNotConfirmed(t *testing.T) {
	appt := confirmedAppointment()
	appt.Status = models.StatusCancelled
	appts := &fakeAppointmentStore{appt: appt}
	notifier := &fakeNotifier{}
	handler := handleReminderTask(WorkerDeps{
		Appointments:  appts,
		Services:      &fakeServiceStore{},
		Artists:       &fakeArtistStore{},
		Notifications: notifier,
	})

	err := handler(context.Background(), reminderTaskFor(t, appt))
	require.NoError(t, err)
	assert.Empty(t, notifier.sentFor)
}

// Unresolvable service and artist records fall back to the
// notification service's generic copy, not an error.
func TestHandleReminderTaskMissingNames(t *testing.T) {
	appts := &fakeAppointmentStore{appt: confirmedAppointment()}
	notifier := &fakeNotifier{}
	handler := handleReminderTask(WorkerDeps{
		Appointments:  appts,
		Services:      &fakeServiceStore{},
		Artists:       &fakeArtistStore{},
		Notifications: notifier,
	})

	err := handler(context.Background(), reminderTaskFor(t, appts.appt))
	require.NoError(t, err)
	require.Len(t, notifier.sentFor, 1)
	assert.Empty(t, notifier.serviceName)
	assert.Empty(t, notifier.artistName)
	assert.Equal(t, "appt-1", appts.reminderMarked)
}

func TestHandleReminderTaskSendFailure(t *testing.T) {
	appts := &fakeAppointmentStore{appt: confirmedAppointment()}
	notifier := &fakeNotifier{sendErr: errors.New("store down")}
	handler := handleReminderTask(WorkerDeps{
		Appointments:  appts,
		Services:      &fakeServiceStore{},
		Artists:       &fakeArtistStore{},
		Notifications: notifier,
	})

	err := handler(context.Background(), reminderTaskFor(t, appts.appt))
	require.Error(t, err)
	// The sent marker stays clear so a retry can deliver.
	assert.Empty(t, appts.reminderMarked)
}

func TestNewReminderTask(t *testing.T) {
	fireAt := time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC)
	payload := models.ReminderPayload{
		AppointmentID: "appt-1",
		UserKey:       "user-7",
		FireDate:      "2026-03-02T14:30:00Z",
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeReminderSend, task.Type())
	assert.Len(t, opts, 1)

	var got models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &got))
	assert.Equal(t, payload, got)
}

func TestAppointmentStart(t *testing.T) {
	appt := models.Appointment{AppointmentDate: "2026-03-02", AppointmentTime: "14:30"}
	start, ok := appointmentStart(appt)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC), start)

	_, ok = appointmentStart(models.Appointment{AppointmentDate: "bogus", AppointmentTime: "14:30"})
	assert.False(t, ok)
}
