package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer booking of a service.
// ProviderID, DurationMinutes, TotalAmount, Currency and ServiceTitle are
// snapshots taken from the service at creation time: later edits of the
// service never change existing bookings.
type Booking struct {
	ID         string
	CustomerID string
	ServiceID  string
	ProviderID string
	Status     BookingStatus

	ScheduledAt     time.Time
	DurationMinutes int
	TotalAmount     float64
	Currency        string

	// Snapshot for history and notifications
	ServiceTitle string
	Notes        *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// IsParticipant returns true if the user is the customer or the provider
// of this booking
func (b *Booking) IsParticipant(userID string) bool {
	return b.CustomerID == userID || b.ProviderID == userID
}
