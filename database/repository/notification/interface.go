package notificationRepo

import (
	"context"
	"time"

	"fabulous/models"
)

// NotificationRepository stores in-app customer notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUserKey(ctx context.Context, userKey string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error

	// DeleteExpired removes notifications whose appointment date is
	// before cutoffDate ("YYYY-MM-DD"), plus dateless notifications
	// created before createdBefore. Returns the number deleted.
	DeleteExpired(ctx context.Context, cutoffDate string, createdBefore time.Time) (int64, error)
}
