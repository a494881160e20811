package get_booking_payment

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/payments/models"
)

type PaymentsService interface {
	GetByBookingID(ctx context.Context, bookingID, userID string) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
