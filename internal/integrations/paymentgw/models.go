package paymentgw

import "github.com/m04kA/SMC-MarketplaceService/internal/domain"

// ChargeRequest запрос на списание средств
type ChargeRequest struct {
	BookingID string
	Amount    float64
	Currency  string
	Method    domain.PaymentMethod
}

// ChargeResult результат списания средств
type ChargeResult struct {
	TransactionID string // заполнен только при успехе
	FailureReason string // заполнена только при отказе
}

// RefundRequest запрос на возврат средств
type RefundRequest struct {
	TransactionID string
	Amount        float64
	Reason        string
}

// RefundResult результат возврата средств
type RefundResult struct {
	RefundID string
}
