package application

import (
	"context"

	"github.com/alamin516/roombooking-server/authorization"
	"github.com/alamin516/roombooking-server/domain"
)

type UserService struct {
	store  domain.UserStore
	tokens *authorization.TokenManager
}

func NewUserService(store domain.UserStore, tokens *authorization.TokenManager) *UserService {
	return &UserService{
		store:  store,
		tokens: tokens,
	}
}

// Upsert saves the submitted profile under the path email and issues a
// fresh token carrying that profile. The path email wins over whatever
// email field the body carried.
func (service *UserService) Upsert(ctx context.Context, email string, profile domain.Profile) (*domain.UpsertResult, string, error) {
	if profile == nil {
		profile = domain.Profile{}
	}
	profile["email"] = email

	result, err := service.store.Upsert(ctx, email, profile)
	if err != nil {
		return nil, "", err
	}

	token, err := service.tokens.Generate(profile)
	if err != nil {
		return nil, "", err
	}

	return result, token, nil
}

func (service *UserService) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	return service.store.GetByEmail(ctx, email)
}

func (service *UserService) GetAll(ctx context.Context) ([]domain.Profile, error) {
	return service.store.GetAll(ctx)
}
