package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Actor аутентифицированный пользователь, от имени которого выполняется операция
type Actor struct {
	UserID string
	Role   domain.UserRole
}

// Request модели

// ListBookingsRequest запрос на получение бронирований пользователя
type ListBookingsRequest struct {
	Actor  Actor
	Status *string
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Actor  Actor
	Status string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customerId"`
	ServiceID       string     `json:"serviceId"`
	ProviderID      string     `json:"providerId"`
	Status          string     `json:"status"`
	ScheduledAt     time.Time  `json:"scheduledAt"`
	DurationMinutes int        `json:"durationMinutes"`
	TotalAmount     float64    `json:"totalAmount"`
	Currency        string     `json:"currency"`
	ServiceTitle    string     `json:"serviceTitle"`
	Notes           *string    `json:"notes,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		ProviderID:      b.ProviderID,
		Status:          string(b.Status),
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		TotalAmount:     b.TotalAmount,
		Currency:        b.Currency,
		ServiceTitle:    b.ServiceTitle,
		Notes:           b.Notes,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]*BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
