package domain

import "context"

// PaymentGateway creates a payment intent at the external processor and
// hands back the client secret the browser needs to confirm it.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}
