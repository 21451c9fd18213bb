package artistRepo

import (
	"context"

	"fabulous/models"
)

// ArtistRepository is the keyed artist (provider) store.
type ArtistRepository interface {
	GetByID(ctx context.Context, id string) (*models.Artist, error)
	List(ctx context.Context) ([]models.Artist, error)
}
