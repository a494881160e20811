package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/integrations/paymentgw"
	serviceRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/service"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/notifications"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
)

// UseCase use case создания бронирования с оплатой
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	paymentRepo  PaymentRepository
	gateway      PaymentGateway
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	paymentRepo PaymentRepository,
	gateway PaymentGateway,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		paymentRepo:  paymentRepo,
		gateway:      gateway,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Бронирование, списание и запись платежа фиксируются одной
// сериализуемой транзакцией. При отказе шлюза транзакция тоже
// коммитится: бронирование сохраняется отмененным, платеж - неуспешным,
// а вызывающему возвращается ErrPaymentFailed с причиной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, service=%s, scheduledAt=%s",
		req.CustomerID, req.ServiceID, req.ScheduledAt.Format("2006-01-02 15:04"))

	// 1. Создавать бронирования могут только клиенты
	if req.Role != domain.RoleCustomer {
		uc.logger.Warn("CreateBooking: user=%s with role=%s attempted to create a booking", req.CustomerID, req.Role)
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услугу
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Деактивированные услуги недоступны для бронирования
	if !svc.IsBookable() {
		uc.logger.Warn("CreateBooking: service id=%s is not active", req.ServiceID)
		return nil, ErrServiceUnavailable
	}

	// 5. Интервал должен попадать в окно доступности услуги
	if err := validateSchedule(svc, req.ScheduledAt, now); err != nil {
		uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
		return nil, err
	}

	// 6. Бронирование со снапшотом данных услуги: последующие правки
	// каталога не меняют уже оформленные заказы
	booking := &domain.Booking{
		CustomerID:      req.CustomerID,
		ServiceID:       svc.ID,
		ProviderID:      svc.ProviderID,
		Status:          domain.StatusPending,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: svc.DurationMinutes,
		TotalAmount:     svc.Price,
		Currency:        svc.Currency,
		ServiceTitle:    svc.Title,
		Notes:           req.Notes,
	}

	var payment *domain.Payment
	var chargeFailedReason string

	// 7. Бронирование и платеж в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		booking = created

		result, chargeErr := uc.gateway.Charge(txCtx, paymentgw.ChargeRequest{
			BookingID: booking.ID,
			Amount:    booking.TotalAmount,
			Currency:  booking.Currency,
			Method:    req.Method,
		})
		if chargeErr != nil && !errors.Is(chargeErr, paymentgw.ErrChargeDeclined) {
			if errors.Is(chargeErr, paymentgw.ErrInvalidCard) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, chargeErr)
			}
			uc.logger.Error("CreateBooking: gateway error for booking=%s: %v", booking.ID, chargeErr)
			return fmt.Errorf("%w: gateway error: %v", ErrInternal, chargeErr)
		}

		payment = &domain.Payment{
			BookingID: booking.ID,
			Amount:    booking.TotalAmount,
			Currency:  booking.Currency,
			Method:    maskPaymentMethod(req.Method),
		}

		if chargeErr != nil {
			// Отказ шлюза: сохраняем след для аудита и коммитим
			payment.Status = domain.PaymentFailed
			payment.FailureReason = ptr.Ptr(result.FailureReason)
			chargeFailedReason = result.FailureReason
		} else {
			payment.Status = domain.PaymentSuccess
			payment.TransactionID = ptr.Ptr(result.TransactionID)
		}

		if payment, err = uc.paymentRepo.Create(txCtx, payment); err != nil {
			uc.logger.Error("CreateBooking: failed to create payment for booking=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		finalStatus := domain.StatusConfirmed
		if payment.Status == domain.PaymentFailed {
			finalStatus = domain.StatusCancelled
		}
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, finalStatus); err != nil {
			uc.logger.Error("CreateBooking: failed to update booking=%s status: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}
		booking.Status = finalStatus

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 8. Уведомления после коммита, best-effort
	if chargeFailedReason != "" {
		uc.logger.Warn("CreateBooking: payment failed for booking=%s: %s", booking.ID, chargeFailedReason)
		uc.notifier.Dispatch(ctx, notifications.PaymentFailedForCustomer(booking, chargeFailedReason))
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, chargeFailedReason)
	}

	uc.logger.Info("CreateBooking: booking id=%s confirmed, payment id=%s", booking.ID, payment.ID)

	uc.notifier.Dispatch(ctx, notifications.BookingCreatedForCustomer(booking))
	uc.notifier.Dispatch(ctx, notifications.BookingCreatedForProvider(booking))

	return toResponse(booking, payment), nil
}
