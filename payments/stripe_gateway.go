package payments

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/alamin516/roombooking-server/domain"
	"github.com/sony/gobreaker"
	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// StripeGateway creates card payment intents in USD and returns the
// client secret the frontend confirms against.
type StripeGateway struct {
	api *client.API
	cb  *gobreaker.CircuitBreaker
}

func NewStripeGateway(secretKey string) domain.PaymentGateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeGateway{
		api: api,
		cb:  circuitBreaker("stripeGateway"),
	}
}

func (gateway *StripeGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := intentParams(ctx, price)

	result, breakerErr := gateway.cb.Execute(func() (interface{}, error) {
		return gateway.api.PaymentIntents.New(params)
	})
	if breakerErr != nil {
		return "", breakerErr
	}

	intent := result.(*stripe.PaymentIntent)
	return intent.ClientSecret, nil
}

func intentParams(ctx context.Context, price float64) *stripe.PaymentIntentParams {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(AmountFromPrice(price)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.Context = ctx
	return params
}

// AmountFromPrice converts a decimal price into the smallest currency
// unit the gateway charges in.
func AmountFromPrice(price float64) int64 {
	return int64(math.Round(price * 100))
}

func circuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Printf("Circuit Breaker '%s' changed from '%s' to '%s'\n", name, from, to)
			},
		},
	)
}
