package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return validatePaymentMethod(req.Method, now)
}

func validatePaymentMethod(method domain.PaymentMethod, now time.Time) error {
	if strings.TrimSpace(method.Type) == "" {
		return fmt.Errorf("%w: payment method type is required", ErrInvalidInput)
	}
	if strings.TrimSpace(method.CardNumber) == "" {
		return fmt.Errorf("%w: card number is required", ErrInvalidInput)
	}
	if method.ExpiryYear < now.Year() ||
		(method.ExpiryYear == now.Year() && method.ExpiryMonth < int(now.Month())) {
		return fmt.Errorf("%w: card has expired", ErrInvalidInput)
	}
	if method.ExpiryMonth < 1 || method.ExpiryMonth > 12 {
		return fmt.Errorf("%w: invalid expiry month", ErrInvalidInput)
	}
	return nil
}

// validateSchedule проверяет, что запрошенный интервал лежит в будущем
// и целиком помещается в одно окно доступности услуги.
// Интервалы через полночь не поддерживаются.
func validateSchedule(svc *domain.Service, scheduledAt, now time.Time) error {
	if !scheduledAt.After(now) {
		return ErrInvalidDate
	}

	start := types.NewTimeString(scheduledAt)
	end, err := start.AddMinutes(svc.DurationMinutes)
	if err != nil {
		// Интервал пересекает полночь
		return fmt.Errorf("%w: booking does not fit within the day", ErrOutsideAvailability)
	}

	windows := svc.Availability.WindowsFor(scheduledAt.Weekday())
	for _, window := range windows {
		if window.Contains(start, end) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s-%s on %s", ErrOutsideAvailability, start, end, domain.WeekdayKey(scheduledAt.Weekday()))
}

// maskPaymentMethod убирает из платежных данных всё, что нельзя хранить:
// CVV отбрасывается, от номера карты остаются последние четыре цифры.
func maskPaymentMethod(method domain.PaymentMethod) domain.PaymentMethod {
	masked := method
	masked.CVV = ""
	if n := len(method.CardNumber); n > 4 {
		masked.CardNumber = "**** **** **** " + method.CardNumber[n-4:]
	}
	return masked
}
