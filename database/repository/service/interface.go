package serviceRepo

import (
	"context"

	"fabulous/models"
)

// ServiceRepository is the keyed service store. GetByID returning
// (nil, nil) means the service record is absent, which the availability
// engine treats according to its unknown-service policy.
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
}
