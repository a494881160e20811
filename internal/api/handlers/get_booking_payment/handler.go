package get_booking_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	paymentsService "github.com/m04kA/SMC-MarketplaceService/internal/service/payments"
)

const (
	msgUnauthorized    = "требуется аутентификация"
	msgBookingNotFound = "бронирование не найдено"
	msgPaymentNotFound = "платеж не найден"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.GetByBookingID(r.Context(), bookingID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{bookingId}/payment - Booking not found: id=%s, user=%s", bookingID, claims.UserID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			h.logger.Warn("GET /bookings/{bookingId}/payment - Payment not found: booking=%s", bookingID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("GET /bookings/{bookingId}/payment - Failed to get payment: booking=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
