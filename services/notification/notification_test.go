package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabulous/models"
)

type fakeNotificationRepo struct {
	created       []models.Notification
	createErr     error
	deleteCount   int64
	cutoffDate    string
	createdBefore time.Time
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotificationRepo) ListByUserKey(ctx context.Context, userKey string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.created {
		if n.UserKey == userKey {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error { return nil }

func (f *fakeNotificationRepo) DeleteExpired(ctx context.Context, cutoffDate string, createdBefore time.Time) (int64, error) {
	f.cutoffDate = cutoffDate
	f.createdBefore = createdBefore
	return f.deleteCount, nil
}

func reminderAppointment() models.Appointment {
	return models.Appointment{
		ID:              "appt-1",
		UserKey:         "user-7",
		AppointmentDate: "2026-03-02",
		AppointmentTime: "14:30",
		Status:          models.StatusConfirmed,
	}
}

func TestSendAppointmentReminder(t *testing.T) {
	repo := &fakeNotificationRepo{}
	s := &DefaultNotificationService{Repo: repo}

	err := s.SendAppointmentReminder(context.Background(), reminderAppointment(), "Gel-Modellage", "Maria")
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	n := repo.created[0]
	assert.Equal(t, "user-7", n.UserKey)
	assert.Equal(t, models.NotificationReminder, n.Type)
	assert.Equal(t, "Terminerinnerung", n.Title)
	assert.Equal(t, "Ihr Termin für Gel-Modellage mit Maria ist in 2 Stunden! Datum: 2026-03-02 um 14:30 Uhr.", n.Message)
	assert.Equal(t, "appt-1", n.AppointmentID)
	assert.Equal(t, "2026-03-02", n.AppointmentDate)
}

func TestSendAppointmentReminderFallbackNames(t *testing.T) {
	repo := &fakeNotificationRepo{}
	s := &DefaultNotificationService{Repo: repo}

	err := s.SendAppointmentReminder(context.Background(), reminderAppointment(), "", "")
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Contains(t, repo.created[0].Message, "Ihr Service")
	assert.Contains(t, repo.created[0].Message, "Ihr Stylist")
}

// Walk-in bookings have no user key and therefore no inbox; the
// reminder is silently skipped.
func TestSendAppointmentReminderNoUserKey(t *testing.T) {
	repo := &fakeNotificationRepo{}
	s := &DefaultNotificationService{Repo: repo}

	appt := reminderAppointment()
	appt.UserKey = ""
	err := s.SendAppointmentReminder(context.Background(), appt, "Gel-Modellage", "Maria")
	require.NoError(t, err)
	assert.Empty(t, repo.created)
}

func TestSendAppointmentReminderRepoError(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("write failed")}
	s := &DefaultNotificationService{Repo: repo}

	err := s.SendAppointmentReminder(context.Background(), reminderAppointment(), "Gel-Modellage", "Maria")
	require.Error(t, err)
}

func TestNotifyStatusChange(t *testing.T) {
	repo := &fakeNotificationRepo{}
	s := &DefaultNotificationService{Repo: repo}

	appt := reminderAppointment()
	appt.Status = models.StatusCancelled
	err := s.NotifyStatusChange(context.Background(), appt)
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	n := repo.created[0]
	assert.Equal(t, models.NotificationStatusChanged, n.Type)
	assert.Contains(t, n.Message, "cancelled")
	assert.Contains(t, n.Message, "2026-03-02")
}

func TestNotifyStatusChangeNoUserKey(t *testing.T) {
	repo := &fakeNotificationRepo{}
	s := &DefaultNotificationService{Repo: repo}

	appt := reminderAppointment()
	appt.UserKey = ""
	require.NoError(t, s.NotifyStatusChange(context.Background(), appt))
	assert.Empty(t, repo.created)
}

func TestCleanupExpired(t *testing.T) {
	repo := &fakeNotificationRepo{deleteCount: 3}
	s := &DefaultNotificationService{Repo: repo}

	deleted, err := s.CleanupExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	// Cutoff is two days back from today; dateless records get a
	// 30-day grace period from creation.
	wantCutoff := time.Now().UTC().AddDate(0, 0, -2).Format("2006-01-02")
	assert.Equal(t, wantCutoff, repo.cutoffDate)
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, -30), repo.createdBefore, time.Minute)
}
