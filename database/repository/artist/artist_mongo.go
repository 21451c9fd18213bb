package artistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fabulous/database"
	"fabulous/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoArtistRepo implements ArtistRepository using MongoDB.
type MongoArtistRepo struct {
	coll *mongo.Collection
}

// NewMongoArtistRepo creates an ArtistRepository backed by the
// "artists" collection.
func NewMongoArtistRepo() ArtistRepository {
	return &MongoArtistRepo{coll: database.DB().Collection("artists")}
}

func (r *MongoArtistRepo) GetByID(ctx context.Context, id string) (*models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var artist models.Artist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&artist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching artist %s: %w", id, err)
	}
	return &artist, nil
}

func (r *MongoArtistRepo) List(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing artists: %w", err)
	}
	defer cursor.Close(ctx)

	var artists []models.Artist
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("error decoding artists: %w", err)
	}
	return artists, nil
}
