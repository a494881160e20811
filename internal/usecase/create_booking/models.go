package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID  string               // ID аутентифицированного клиента
	Role        domain.UserRole      // роль из токена
	ServiceID   string               // ID бронируемой услуги
	ScheduledAt time.Time            // дата и время начала
	Notes       *string              // заметки клиента (опционально)
	Method      domain.PaymentMethod // платежные данные
}

// Response модель ответа с созданным бронированием и платежом
type Response struct {
	Booking BookingResult `json:"booking"`
	Payment PaymentResult `json:"payment"`
}

// BookingResult созданное бронирование
type BookingResult struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	ServiceID       string    `json:"serviceId"`
	ProviderID      string    `json:"providerId"`
	Status          string    `json:"status"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	TotalAmount     float64   `json:"totalAmount"`
	Currency        string    `json:"currency"`
	ServiceTitle    string    `json:"serviceTitle"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PaymentResult платеж по бронированию
type PaymentResult struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transactionId,omitempty"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

func toResponse(booking *domain.Booking, payment *domain.Payment) *Response {
	return &Response{
		Booking: BookingResult{
			ID:              booking.ID,
			CustomerID:      booking.CustomerID,
			ServiceID:       booking.ServiceID,
			ProviderID:      booking.ProviderID,
			Status:          string(booking.Status),
			ScheduledAt:     booking.ScheduledAt,
			DurationMinutes: booking.DurationMinutes,
			TotalAmount:     booking.TotalAmount,
			Currency:        booking.Currency,
			ServiceTitle:    booking.ServiceTitle,
			Notes:           booking.Notes,
			CreatedAt:       booking.CreatedAt,
		},
		Payment: PaymentResult{
			ID:            payment.ID,
			Status:        string(payment.Status),
			TransactionID: payment.TransactionID,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
		},
	}
}
