package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type fakePaymentRepo struct {
	payment *domain.Payment
	err     error
}

func (f *fakePaymentRepo) GetByID(_ context.Context, _ string) (*domain.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) GetByBookingID(_ context.Context, _ string) (*domain.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payment, nil
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		ProviderID: "provider-1",
	}
}

func testPayment() *domain.Payment {
	return &domain.Payment{
		ID:            "payment-1",
		BookingID:     "booking-1",
		Status:        domain.PaymentSuccess,
		TransactionID: ptr.Ptr("txn_abc123def456"),
		Amount:        50,
		Currency:      "USD",
		Method: domain.PaymentMethod{
			Type:       "card",
			CardNumber: "**** **** **** 4242",
		},
	}
}

func TestGetByBookingID_Participant(t *testing.T) {
	svc := NewService(&fakePaymentRepo{payment: testPayment()}, &fakeBookingRepo{booking: testBooking()}, nopLogger{})

	resp, err := svc.GetByBookingID(context.Background(), "booking-1", "customer-1")
	require.NoError(t, err)

	assert.Equal(t, "payment-1", resp.ID)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "**** **** **** 4242", resp.CardNumber)
}

func TestGetByBookingID_ProviderSeesPayment(t *testing.T) {
	svc := NewService(&fakePaymentRepo{payment: testPayment()}, &fakeBookingRepo{booking: testBooking()}, nopLogger{})

	_, err := svc.GetByBookingID(context.Background(), "booking-1", "provider-1")
	assert.NoError(t, err)
}

func TestGetByBookingID_StrangerSeesBookingNotFound(t *testing.T) {
	svc := NewService(&fakePaymentRepo{payment: testPayment()}, &fakeBookingRepo{booking: testBooking()}, nopLogger{})

	_, err := svc.GetByBookingID(context.Background(), "booking-1", "someone-else")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByBookingID_BookingNotFound(t *testing.T) {
	svc := NewService(&fakePaymentRepo{}, &fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByBookingID(context.Background(), "missing", "customer-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByBookingID_PaymentNotFound(t *testing.T) {
	svc := NewService(&fakePaymentRepo{err: paymentRepo.ErrPaymentNotFound}, &fakeBookingRepo{booking: testBooking()}, nopLogger{})

	_, err := svc.GetByBookingID(context.Background(), "booking-1", "customer-1")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
