package domain

import "time"

// NotificationType kind of a booking-lifecycle event
type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "booking_created"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationBookingCompleted NotificationType = "booking_completed"
	NotificationPaymentReceived  NotificationType = "payment_received"
	NotificationPaymentFailed    NotificationType = "payment_failed"
)

// Notification a persisted per-user record of a lifecycle event.
// Rows are immutable except for the read flag.
type Notification struct {
	ID      string
	UserID  string
	Type    NotificationType
	Title   string
	Message string
	Data    map[string]interface{}

	IsRead bool
	ReadAt *time.Time

	CreatedAt time.Time
}
