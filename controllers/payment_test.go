package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dulaj69/itp-final-project-sub000/utils"
)

func TestVerifyIntent(t *testing.T) {
	tests := []struct {
		name           string
		intent         *utils.PaymentIntent
		gatewayErr     error
		expectedAmount float64
		expectedErr    error
	}{
		{
			name:           "succeeded intent returns its amount",
			intent:         &utils.PaymentIntent{ID: "pi_123", Status: "succeeded", Amount: 42.5},
			expectedAmount: 42.5,
		},
		{
			name:        "unsettled intent is rejected",
			intent:      &utils.PaymentIntent{ID: "pi_123", Status: "requires_payment_method"},
			expectedErr: ErrIntentNotSucceeded,
		},
		{
			name:        "gateway failure propagates",
			gatewayErr:  errors.New("stripe unreachable"),
			expectedErr: errors.New("stripe unreachable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := new(MockGateway)
			gateway.On("RetrieveIntent", "pi_123").Return(tt.intent, tt.gatewayErr)

			amount, err := verifyIntent(gateway, "pi_123")

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAmount, amount)
			}
			gateway.AssertExpectations(t)
		})
	}
}
