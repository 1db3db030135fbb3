package domain

import "context"

type BookingStore interface {
	Insert(ctx context.Context, booking *Booking) (*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
	GetByGuestEmail(ctx context.Context, email string) ([]*Booking, error)
}
