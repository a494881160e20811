package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-MarketplaceService/internal/integrations/paymentgw"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/notifications"
)

// Service сервис жизненного цикла бронирований: чтение, смена статусов, отмена.
// Создание бронирования с оплатой вынесено в отдельный usecase.
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	gateway     PaymentGateway
	notifier    Notifier
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	gateway PaymentGateway,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Доступно только участникам: для остальных бронирование выглядит как не найденное.
func (s *Service) GetByID(ctx context.Context, id string, actor models.Actor) (*models.BookingResponse, error) {
	booking, err := s.getForParticipant(ctx, id, actor, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования пользователя: клиент видит свои заказы,
// провайдер - бронирования на свои услуги. Опционально фильтрует по статусу.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for user=%s", *req.Status, req.Actor.UserID)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, *req.Status)
		}
		domainStatus = &status
	}

	var bookings []*domain.Booking
	var err error
	if req.Actor.Role == domain.RoleProvider {
		bookings, err = s.bookingRepo.GetByProviderID(ctx, req.Actor.UserID, domainStatus)
	} else {
		bookings, err = s.bookingRepo.GetByCustomerID(ctx, req.Actor.UserID, domainStatus)
	}
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for user=%s, role=%s", len(bookings), req.Actor.UserID, req.Actor.Role)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Подтверждение происходит при создании бронирования после успешной
// оплаты, поэтому здесь провайдеру доступен единственный переход
// confirmed -> completed. Отмена выполняется через Cancel.
// Остальные переходы запрещены.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking=%s", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, req.Status)
	}

	booking, err := s.getForParticipant(ctx, id, req.Actor, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if newStatus == domain.StatusCancelled {
		return s.Cancel(ctx, id, req.Actor)
	}

	if req.Actor.UserID != booking.ProviderID {
		s.logger.Warn("UpdateStatus: user=%s is not the provider of booking=%s", req.Actor.UserID, id)
		return nil, ErrAccessDenied
	}

	if newStatus != domain.StatusCompleted || !booking.CanBeCompleted() {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking=%s", booking.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrStatusTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	s.logger.Info("UpdateStatus: booking id=%s moved to status=%s by user=%s", id, newStatus, req.Actor.UserID)

	if newStatus == domain.StatusCompleted {
		s.notifier.Dispatch(ctx, notifications.BookingCompletedForCustomer(booking))
		s.notifier.Dispatch(ctx, notifications.BookingCompletedForProvider(booking))
		s.notifier.Dispatch(ctx, notifications.PaymentReceivedForProvider(booking))
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование. Доступно обоим участникам
// для статусов pending и confirmed. Если оплата прошла успешно,
// выполняется возврат средств: запись возврата и перевод платежа
// в статус refunded одной транзакцией с отменой бронирования.
func (s *Service) Cancel(ctx context.Context, id string, actor models.Actor) (*models.BookingResponse, error) {
	booking, err := s.getForParticipant(ctx, id, actor, "Cancel")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s in status=%s cannot be cancelled", id, booking.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, booking.Status)
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		return s.refundIfPaid(ctx, booking)
	})
	if err != nil {
		s.logger.Error("Cancel: transaction failed for booking=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	s.logger.Info("Cancel: booking id=%s cancelled by user=%s", id, actor.UserID)

	// Возврат средств отдельного уведомления не порождает
	s.notifier.Dispatch(ctx, notifications.BookingCancelledForCustomer(booking))
	s.notifier.Dispatch(ctx, notifications.BookingCancelledForProvider(booking))

	return models.FromDomainBooking(booking), nil
}

// refundIfPaid возвращает средства по успешному платежу бронирования.
// Отсутствие платежа не ошибка: бронирование могло быть отменено
// сразу после отказа в оплате.
func (s *Service) refundIfPaid(ctx context.Context, booking *domain.Booking) error {
	payment, err := s.paymentRepo.GetByBookingID(ctx, booking.ID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil
		}
		return fmt.Errorf("get payment: %w", err)
	}

	if !payment.IsRefundable() {
		return nil
	}

	transactionID := ""
	if payment.TransactionID != nil {
		transactionID = *payment.TransactionID
	}

	if _, err := s.gateway.Refund(ctx, paymentgw.RefundRequest{
		TransactionID: transactionID,
		Amount:        payment.Amount,
		Reason:        "Booking cancelled",
	}); err != nil {
		return fmt.Errorf("gateway refund: %w", err)
	}

	if _, err := s.paymentRepo.CreateRefund(ctx, &domain.Refund{
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		Reason:    "Booking cancelled",
	}); err != nil {
		return fmt.Errorf("create refund: %w", err)
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, domain.PaymentRefunded); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	return nil
}

func (s *Service) getForParticipant(ctx context.Context, id string, actor models.Actor, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !booking.IsParticipant(actor.UserID) {
		s.logger.Warn("%s: user=%s is not a participant of booking=%s", op, actor.UserID, id)
		return nil, ErrBookingNotFound
	}

	return booking, nil
}
