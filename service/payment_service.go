package application

import (
	"context"
	"fmt"

	"github.com/alamin516/roombooking-server/domain"
	"github.com/alamin516/roombooking-server/errors"
)

type PaymentService struct {
	gateway domain.PaymentGateway
}

func NewPaymentService(gateway domain.PaymentGateway) *PaymentService {
	return &PaymentService{
		gateway: gateway,
	}
}

// CreatePaymentIntent asks the gateway for a card payment intent and
// returns its client secret. The intent itself lives only at the
// gateway, nothing is persisted locally.
func (service *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf(errors.InvalidPriceError)
	}
	return service.gateway.CreateIntent(ctx, price)
}
