package paymentgw

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func chargeRequest() ChargeRequest {
	return ChargeRequest{
		BookingID: "booking-1",
		Amount:    50,
		Currency:  "USD",
		Method: domain.PaymentMethod{
			Type:       "card",
			CardNumber: "4242424242424242",
			CVV:        "123",
		},
	}
}

func TestCharge_AlwaysSucceedsAtZeroFailureRate(t *testing.T) {
	client := NewClient(0, 0, nopLogger{})

	for i := 0; i < 50; i++ {
		result, err := client.Charge(context.Background(), chargeRequest())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.TransactionID, "txn_"))
		assert.Len(t, result.TransactionID, len("txn_")+12)
		assert.Empty(t, result.FailureReason)
	}
}

func TestCharge_AlwaysDeclinesAtFullFailureRate(t *testing.T) {
	client := NewClient(1, 0, nopLogger{})

	for i := 0; i < 50; i++ {
		result, err := client.Charge(context.Background(), chargeRequest())
		require.ErrorIs(t, err, ErrChargeDeclined)
		require.NotNil(t, result)
		assert.Contains(t, failureReasons, result.FailureReason)
		assert.Empty(t, result.TransactionID)
	}
}

func TestCharge_InvalidCard(t *testing.T) {
	client := NewClient(0, 0, nopLogger{})

	tests := []struct {
		name       string
		cardNumber string
		cvv        string
	}{
		{"empty card number", "", "123"},
		{"letters in card number", "4242abcd42424242", "123"},
		{"empty cvv", "4242424242424242", ""},
		{"letters in cvv", "4242424242424242", "12a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := chargeRequest()
			req.Method.CardNumber = tt.cardNumber
			req.Method.CVV = tt.cvv

			_, err := client.Charge(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidCard)
		})
	}
}

func TestCharge_ContextCancelledDuringLatency(t *testing.T) {
	client := NewClient(0, time.Second, nopLogger{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Charge(ctx, chargeRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestRefund(t *testing.T) {
	client := NewClient(1, 0, nopLogger{}) // failure rate не влияет на возвраты

	result, err := client.Refund(context.Background(), RefundRequest{
		TransactionID: "txn_abc123def456",
		Amount:        50,
		Reason:        "Booking cancelled",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.RefundID, "rfnd_"))
}
