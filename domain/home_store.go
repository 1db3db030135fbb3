package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HomeStore interface {
	Insert(ctx context.Context, home *Home) (*Home, error)
	GetAll(ctx context.Context) ([]*Home, error)
	GetByHostEmail(ctx context.Context, email string) ([]*Home, error)
	SearchByLocation(ctx context.Context, location string) ([]*Home, error)
	// Get returns nil without an error when no listing matches the id.
	Get(ctx context.Context, id primitive.ObjectID) (*Home, error)
	Update(ctx context.Context, home *Home) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
