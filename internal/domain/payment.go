package domain

import "time"

// PaymentStatus represents the settled outcome of a payment attempt
type PaymentStatus string

const (
	PaymentSuccess  PaymentStatus = "success"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentMethod card details passed through to the gateway.
// Stored as an opaque JSON document, never interpreted beyond validation.
type PaymentMethod struct {
	Type           string `json:"type"`
	CardNumber     string `json:"cardNumber"`
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// Payment represents the payment attached 1:1 to a booking attempt
type Payment struct {
	ID            string
	BookingID     string
	Status        PaymentStatus
	TransactionID *string // nil для неуспешных платежей
	Amount        float64
	Currency      string
	Method        PaymentMethod
	FailureReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRefundable returns true if the payment can be refunded
func (p *Payment) IsRefundable() bool {
	return p.Status == PaymentSuccess
}

// Refund represents a processed refund for a payment
type Refund struct {
	ID        string
	PaymentID string
	Amount    float64
	Reason    string
	CreatedAt time.Time
}
