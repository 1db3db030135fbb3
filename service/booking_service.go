package application

import (
	"context"

	"github.com/alamin516/roombooking-server/domain"
)

type BookingService struct {
	store domain.BookingStore
}

func NewBookingService(store domain.BookingStore) *BookingService {
	return &BookingService{
		store: store,
	}
}

func (service *BookingService) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return service.store.Insert(ctx, booking)
}

// List returns every booking, or only the guest's own when an email is
// supplied.
func (service *BookingService) List(ctx context.Context, guestEmail string) ([]*domain.Booking, error) {
	if guestEmail != "" {
		return service.store.GetByGuestEmail(ctx, guestEmail)
	}
	return service.store.GetAll(ctx)
}
