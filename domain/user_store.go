package domain

import "context"

type UserStore interface {
	// Upsert replaces the profile stored under email, creating the record
	// when it does not exist yet.
	Upsert(ctx context.Context, email string, profile Profile) (*UpsertResult, error)
	// GetByEmail returns nil without an error when no record exists.
	GetByEmail(ctx context.Context, email string) (Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
}
