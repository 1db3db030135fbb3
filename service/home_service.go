package application

import (
	"context"
	"fmt"

	"github.com/alamin516/roombooking-server/domain"
	"github.com/alamin516/roombooking-server/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HomeService struct {
	store domain.HomeStore
}

func NewHomeService(store domain.HomeStore) *HomeService {
	return &HomeService{
		store: store,
	}
}

func (service *HomeService) Create(ctx context.Context, home *domain.Home) (*domain.Home, error) {
	return service.store.Insert(ctx, home)
}

// List returns every listing, or only the ones belonging to hostEmail
// when one is supplied.
func (service *HomeService) List(ctx context.Context, hostEmail string) ([]*domain.Home, error) {
	if hostEmail != "" {
		return service.store.GetByHostEmail(ctx, hostEmail)
	}
	return service.store.GetAll(ctx)
}

func (service *HomeService) Search(ctx context.Context, location string) ([]*domain.Home, error) {
	return service.store.SearchByLocation(ctx, location)
}

func (service *HomeService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Home, error) {
	return service.store.Get(ctx, id)
}

// Update replaces a listing by its id. A listing without an id is
// rejected before any store call.
func (service *HomeService) Update(ctx context.Context, home *domain.Home) (*domain.UpdateResult, error) {
	if home.ID.IsZero() {
		return nil, fmt.Errorf(errors.RequiredIdError)
	}
	return service.store.Update(ctx, home)
}

func (service *HomeService) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	return service.store.Delete(ctx, id)
}
