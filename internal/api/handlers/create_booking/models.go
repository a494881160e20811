package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	createBooking "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     string               `json:"serviceId"`
	ScheduledAt   string               `json:"scheduledAt"` // RFC3339, например "2026-09-01T10:00:00Z"
	Notes         *string              `json:"notes,omitempty"`
	PaymentMethod PaymentMethodRequest `json:"paymentMethod"`
}

// PaymentMethodRequest платежные данные в запросе
type PaymentMethodRequest struct {
	Type           string `json:"type"`
	CardNumber     string `json:"cardNumber"`
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string, role domain.UserRole) (*createBooking.Request, error) {
	scheduledAt, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:  userID,
		Role:        role,
		ServiceID:   r.ServiceID,
		ScheduledAt: scheduledAt,
		Notes:       r.Notes,
		Method: domain.PaymentMethod{
			Type:           r.PaymentMethod.Type,
			CardNumber:     r.PaymentMethod.CardNumber,
			ExpiryMonth:    r.PaymentMethod.ExpiryMonth,
			ExpiryYear:     r.PaymentMethod.ExpiryYear,
			CVV:            r.PaymentMethod.CVV,
			CardholderName: r.PaymentMethod.CardholderName,
		},
	}, nil
}
