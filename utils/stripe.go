// utils/stripe.go
package utils

import (
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// PaymentIntent is the slice of a processor intent the handlers care about
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       float64
	Status       string
}

// PaymentGateway abstracts the external card processor so handlers can be
// tested without hitting Stripe
type PaymentGateway interface {
	CreateIntent(amount float64, currency, orderID string) (*PaymentIntent, error)
	RetrieveIntent(intentID string) (*PaymentIntent, error)
}

// StripeGateway is the Stripe-backed PaymentGateway
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a gateway from STRIPE_SECRET_KEY
func NewStripeGateway() *StripeGateway {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		panic("STRIPE_SECRET_KEY is not set in environment variables")
	}
	api := &client.API{}
	api.Init(key, nil)
	return &StripeGateway{api: api}
}

// CreateIntent creates a Stripe payment intent for the given amount.
// The amount is taken verbatim; Stripe wants the smallest currency unit.
func (sg *StripeGateway) CreateIntent(amount float64, currency, orderID string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("order_id", orderID)

	pi, err := sg.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       float64(pi.Amount) / 100,
		Status:       string(pi.Status),
	}, nil
}

// RetrieveIntent fetches an intent back from Stripe for verification
func (sg *StripeGateway) RetrieveIntent(intentID string) (*PaymentIntent, error) {
	pi, err := sg.api.PaymentIntents.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       float64(pi.Amount) / 100,
		Status:       string(pi.Status),
	}, nil
}
