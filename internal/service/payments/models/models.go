package models

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// PaymentResponse ответ с данными платежа.
// Данные карты отдаются в замаскированном виде, как они сохранены.
type PaymentResponse struct {
	ID            string     `json:"id"`
	BookingID     string     `json:"bookingId"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transactionId,omitempty"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	MethodType    string     `json:"methodType"`
	CardNumber    string     `json:"cardNumber"`
	FailureReason *string    `json:"failureReason,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// FromDomainPayment конвертирует domain модель в response
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		MethodType:    p.Method.Type,
		CardNumber:    p.Method.CardNumber,
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
