package payments

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/payments/models"
)

// Service сервис чтения платежей
type Service struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByBookingID получает платеж бронирования.
// Доступно только участникам бронирования: для остальных
// бронирование выглядит как не найденное.
func (s *Service) GetByBookingID(ctx context.Context, bookingID, userID string) (*models.PaymentResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByBookingID: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByBookingID: booking repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - booking repository error: %v", ErrInternal, err)
	}

	if !booking.IsParticipant(userID) {
		s.logger.Warn("GetByBookingID: user=%s is not a participant of booking=%s", userID, bookingID)
		return nil, ErrBookingNotFound
	}

	payment, err := s.paymentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetByBookingID: no payment for booking=%s", bookingID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByBookingID: payment repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - payment repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(payment), nil
}
