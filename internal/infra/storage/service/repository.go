package service

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

// ListFilter фильтр для выборки услуг
type ListFilter struct {
	ProviderID *string // только услуги конкретного провайдера
	Category   *string // фильтр по категории
	OnlyActive bool    // исключить деактивированные услуги
}

var serviceColumns = []string{
	"id",
	"provider_id",
	"title",
	"description",
	"category",
	"price",
	"currency",
	"duration_minutes",
	"availability",
	"images",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}

	availabilityJSON, err := json.Marshal(svc.Availability)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal availability: %v", ErrBuildQuery, err)
	}
	imagesJSON, err := json.Marshal(svc.Images)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal images: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"id",
			"provider_id",
			"title",
			"description",
			"category",
			"price",
			"currency",
			"duration_minutes",
			"availability",
			"images",
			"is_active",
		).
		Values(
			svc.ID,
			svc.ProviderID,
			svc.Title,
			svc.Description,
			svc.Category,
			svc.Price,
			svc.Currency,
			svc.DurationMinutes,
			availabilityJSON,
			imagesJSON,
			svc.IsActive,
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

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := r.scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// List получает список услуг с фильтрацией
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("created_at DESC")

	if filter.ProviderID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := r.scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update обновляет изменяемые поля услуги.
// provider_id не обновляется - владелец услуги неизменен.
func (r *Repository) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	availabilityJSON, err := json.Marshal(svc.Availability)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal availability: %v", ErrBuildQuery, err)
	}
	imagesJSON, err := json.Marshal(svc.Images)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal images: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("services").
		Set("title", svc.Title).
		Set("description", svc.Description).
		Set("category", svc.Category).
		Set("price", svc.Price).
		Set("currency", svc.Currency).
		Set("duration_minutes", svc.DurationMinutes).
		Set("availability", availabilityJSON).
		Set("images", imagesJSON).
		Set("is_active", svc.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": svc.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// Deactivate мягко удаляет услугу (is_active = false).
// Физическое удаление не используется, чтобы снапшоты в бронированиях
// оставались ссылочно целостными.
func (r *Repository) Deactivate(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var availabilityJSON, imagesJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.ProviderID,
		&svc.Title,
		&svc.Description,
		&svc.Category,
		&svc.Price,
		&svc.Currency,
		&svc.DurationMinutes,
		&availabilityJSON,
		&imagesJSON,
		&svc.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(availabilityJSON, &svc.Availability); err != nil {
		return nil, fmt.Errorf("unmarshal availability: %v", err)
	}
	if err := json.Unmarshal(imagesJSON, &svc.Images); err != nil {
		return nil, fmt.Errorf("unmarshal images: %v", err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
