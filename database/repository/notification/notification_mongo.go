package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"fabulous/database"
	"fabulous/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a NotificationRepository backed by
// the "notifications" collection.
func NewMongoNotificationRepo() NotificationRepository {
	return &MongoNotificationRepo{coll: database.DB().Collection("notifications")}
}

func (r *MongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("error inserting notification: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) ListByUserKey(ctx context.Context, userKey string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_key": userKey}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("error decoding notifications: %w", err)
	}
	return notifications, nil
}

func (r *MongoNotificationRepo) MarkRead(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("error marking notification %s read: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoNotificationRepo) DeleteExpired(ctx context.Context, cutoffDate string, createdBefore time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"appointment_date": bson.M{"$exists": true, "$ne": "", "$lt": cutoffDate}},
		{"appointment_date": bson.M{"$in": []interface{}{nil, ""}}, "created_at": bson.M{"$lt": createdBefore}},
	}}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired notifications: %w", err)
	}
	return res.DeletedCount, nil
}
