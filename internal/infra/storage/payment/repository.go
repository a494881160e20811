package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/psqlbuilder"
)

var paymentColumns = []string{
	"id",
	"booking_id",
	"status",
	"transaction_id",
	"amount",
	"currency",
	"payment_method",
	"failure_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с платежами и возвратами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись платежа.
// Номер карты и CVV в payment_method перед вызовом должны быть замаскированы -
// репозиторий сохраняет структуру как есть.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}

	methodJSON, err := json.Marshal(payment.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal payment method: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"id",
			"booking_id",
			"status",
			"transaction_id",
			"amount",
			"currency",
			"payment_method",
			"failure_reason",
		).
		Values(
			payment.ID,
			payment.BookingID,
			payment.Status,
			payment.TransactionID,
			payment.Amount,
			payment.Currency,
			methodJSON,
			payment.FailureReason,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time

	return payment, nil
}

// GetByID получает платеж по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return r.getByField(ctx, squirrel.Eq{"id": id})
}

// GetByBookingID получает платеж по ID бронирования.
// При нескольких попытках оплаты возвращает последнюю.
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	return r.getByField(ctx, squirrel.Eq{"booking_id": bookingID})
}

func (r *Repository) getByField(ctx context.Context, where squirrel.Eq) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByField - build select query: %v", ErrBuildQuery, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByField - scan payment: %v", ErrScanRow, err)
	}

	return payment, nil
}

// UpdateStatus обновляет статус платежа
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// CreateRefund создает запись возврата средств
func (r *Repository) CreateRefund(ctx context.Context, refund *domain.Refund) (*domain.Refund, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if refund.ID == "" {
		refund.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("refunds").
		Columns("id", "payment_id", "amount", "reason").
		Values(refund.ID, refund.PaymentID, refund.Amount, refund.Reason).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRefund - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRefund - execute insert: %v", ErrExecQuery, err)
	}

	refund.CreatedAt = createdAt.Time

	return refund, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var methodJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Status,
		&payment.TransactionID,
		&payment.Amount,
		&payment.Currency,
		&methodJSON,
		&payment.FailureReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(methodJSON, &payment.Method); err != nil {
		return nil, fmt.Errorf("unmarshal payment method: %v", err)
	}

	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time

	return &payment, nil
}
