package notifications

import (
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// Конструкторы событий жизненного цикла бронирования.
// Текстовки писем и уведомлений собраны здесь, чтобы сервисы
// бронирований и платежей не дублировали их.

func bookingData(b *domain.Booking) map[string]interface{} {
	return map[string]interface{}{
		"bookingId":    b.ID,
		"serviceId":    b.ServiceID,
		"serviceTitle": b.ServiceTitle,
		"scheduledAt":  b.ScheduledAt,
		"totalAmount":  b.TotalAmount,
		"currency":     b.Currency,
	}
}

// BookingCreatedForCustomer уведомление клиенту об оформленном бронировании
func BookingCreatedForCustomer(b *domain.Booking) Event {
	return Event{
		UserID:  b.CustomerID,
		Type:    domain.NotificationBookingCreated,
		Title:   fmt.Sprintf("Booking Confirmed - %s", b.ServiceTitle),
		Message: fmt.Sprintf("Your booking for %q on %s is confirmed. Total: %.2f %s.", b.ServiceTitle, b.ScheduledAt.Format("2006-01-02 15:04"), b.TotalAmount, b.Currency),
		Data:    bookingData(b),
	}
}

// BookingCreatedForProvider уведомление провайдеру о новом бронировании
func BookingCreatedForProvider(b *domain.Booking) Event {
	return Event{
		UserID:  b.ProviderID,
		Type:    domain.NotificationBookingCreated,
		Title:   fmt.Sprintf("New Booking Received - %s", b.ServiceTitle),
		Message: fmt.Sprintf("You have a new booking for %q on %s. Total: %.2f %s.", b.ServiceTitle, b.ScheduledAt.Format("2006-01-02 15:04"), b.TotalAmount, b.Currency),
		Data:    bookingData(b),
	}
}

// BookingCancelledForCustomer уведомление клиенту об отмене бронирования
func BookingCancelledForCustomer(b *domain.Booking) Event {
	return Event{
		UserID:  b.CustomerID,
		Type:    domain.NotificationBookingCancelled,
		Title:   fmt.Sprintf("Booking Cancelled - %s", b.ServiceTitle),
		Message: fmt.Sprintf("Your booking for %q on %s has been cancelled.", b.ServiceTitle, b.ScheduledAt.Format("2006-01-02 15:04")),
		Data:    bookingData(b),
	}
}

// BookingCancelledForProvider уведомление провайдеру об отмене бронирования
func BookingCancelledForProvider(b *domain.Booking) Event {
	return Event{
		UserID:  b.ProviderID,
		Type:    domain.NotificationBookingCancelled,
		Title:   fmt.Sprintf("Booking Cancelled - %s", b.ServiceTitle),
		Message: fmt.Sprintf("The booking for %q on %s has been cancelled.", b.ServiceTitle, b.ScheduledAt.Format("2006-01-02 15:04")),
		Data:    bookingData(b),
	}
}

// BookingCompletedForCustomer уведомление клиенту о завершении услуги
func BookingCompletedForCustomer(b *domain.Booking) Event {
	return Event{
		UserID:  b.CustomerID,
		Type:    domain.NotificationBookingCompleted,
		Title:   fmt.Sprintf("Booking Completed - %s", b.ServiceTitle),
		Message: fmt.Sprintf("Your booking for %q has been completed. Thank you!", b.ServiceTitle),
		Data:    bookingData(b),
	}
}

// BookingCompletedForProvider уведомление провайдеру о завершении услуги
func BookingCompletedForProvider(b *domain.Booking) Event {
	return Event{
		UserID:  b.ProviderID,
		Type:    domain.NotificationBookingCompleted,
		Title:   fmt.Sprintf("Booking Completed - %s", b.ServiceTitle),
		Message: fmt.Sprintf("The booking for %q has been completed.", b.ServiceTitle),
		Data:    bookingData(b),
	}
}

// PaymentFailedForCustomer уведомление клиенту об отказе в оплате
func PaymentFailedForCustomer(b *domain.Booking, reason string) Event {
	data := bookingData(b)
	data["failureReason"] = reason
	return Event{
		UserID:  b.CustomerID,
		Type:    domain.NotificationPaymentFailed,
		Title:   fmt.Sprintf("Payment Failed - %s", b.ServiceTitle),
		Message: fmt.Sprintf("Payment of %.2f %s for %q failed: %s.", b.TotalAmount, b.Currency, b.ServiceTitle, reason),
		Data:    data,
	}
}

// PaymentReceivedForProvider уведомление провайдеру о поступлении оплаты
func PaymentReceivedForProvider(b *domain.Booking) Event {
	return Event{
		UserID:  b.ProviderID,
		Type:    domain.NotificationPaymentReceived,
		Title:   fmt.Sprintf("Payment Received - %s", b.ServiceTitle),
		Message: fmt.Sprintf("Payment of %.2f %s for %q has been received.", b.TotalAmount, b.Currency, b.ServiceTitle),
		Data:    bookingData(b),
	}
}
