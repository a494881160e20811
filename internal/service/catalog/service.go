package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/service"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create создает новую услугу. Доступно только провайдерам.
func (s *Service) Create(ctx context.Context, actor models.Actor, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if actor.Role != domain.RoleProvider {
		s.logger.Warn("Create: user=%s with role=%s attempted to create a service", actor.UserID, actor.Role)
		return nil, ErrAccessDenied
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	if err := validateListing(req.Title, req.Description, req.Category, req.Price, currency, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed for provider=%s: %v", actor.UserID, err)
		return nil, err
	}

	availability, err := toValidatedAvailability(req.Availability)
	if err != nil {
		s.logger.Warn("Create: invalid availability for provider=%s: %v", actor.UserID, err)
		return nil, err
	}

	svc := &domain.Service{
		ProviderID:      actor.UserID,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Category:        strings.TrimSpace(req.Category),
		Price:           req.Price,
		Currency:        currency,
		DurationMinutes: req.DurationMinutes,
		Availability:    availability,
		Images:          req.Images,
		IsActive:        true,
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%s: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%s created by provider=%s", created.ID, actor.UserID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID. Публичная операция.
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// List получает каталог активных услуг с фильтрацией. Публичная операция.
func (s *Service) List(ctx context.Context, req *models.ListServicesRequest) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, serviceRepo.ListFilter{
		ProviderID: req.ProviderID,
		Category:   req.Category,
		OnlyActive: true,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Update обновляет услугу. Доступно только владельцу:
// для чужой услуги возвращается ErrServiceNotFound.
func (s *Service) Update(ctx context.Context, actor models.Actor, id string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	svc, err := s.getOwned(ctx, actor, id, "Update")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		svc.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Category != nil {
		svc.Category = strings.TrimSpace(*req.Category)
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Currency != nil {
		svc.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Availability != nil {
		availability, err := toValidatedAvailability(req.Availability)
		if err != nil {
			s.logger.Warn("Update: invalid availability for service=%s: %v", id, err)
			return nil, err
		}
		svc.Availability = availability
	}
	if req.Images != nil {
		svc.Images = req.Images
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := validateListing(svc.Title, svc.Description, svc.Category, svc.Price, svc.Currency, svc.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed for service=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, svc)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service id=%s updated by provider=%s", id, actor.UserID)
	return models.FromDomainService(updated), nil
}

// Delete деактивирует услугу владельца. Физического удаления нет:
// существующие бронирования хранят снапшот услуги и остаются валидными.
func (s *Service) Delete(ctx context.Context, actor models.Actor, id string) error {
	if _, err := s.getOwned(ctx, actor, id, "Delete"); err != nil {
		return err
	}

	if err := s.serviceRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service id=%s deactivated by provider=%s", id, actor.UserID)
	return nil
}

// getOwned получает услугу и проверяет владение.
// Чужая услуга выглядит для вызывающего как не найденная.
func (s *Service) getOwned(ctx context.Context, actor models.Actor, id, op string) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%s not found", op, id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: repository error for service=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !svc.IsOwnedBy(actor.UserID) {
		s.logger.Warn("%s: user=%s is not the owner of service=%s", op, actor.UserID, id)
		return nil, ErrServiceNotFound
	}

	return svc, nil
}

var weekdayKeys = map[string]struct{}{
	"monday":    {},
	"tuesday":   {},
	"wednesday": {},
	"thursday":  {},
	"friday":    {},
	"saturday":  {},
	"sunday":    {},
}

func validateListing(title, description, category string, price float64, currency string, durationMinutes int) error {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if len(description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if strings.TrimSpace(category) == "" || len(category) > domain.MaxCategoryLength {
		return fmt.Errorf("%w: category must be 1-%d characters", ErrInvalidInput, domain.MaxCategoryLength)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if len(currency) != domain.MaxCurrencyLength {
		return fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidInput)
	}
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be %d-%d minutes", ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}

func toValidatedAvailability(req map[string][]models.TimeRangeRequest) (domain.Availability, error) {
	availability, err := models.ToDomainAvailability(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for day, windows := range availability {
		if _, ok := weekdayKeys[day]; !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, day)
		}
		for i, w := range windows {
			if !w.Start.IsBefore(w.End) {
				return nil, fmt.Errorf("%w: window start %s must be before end %s", ErrInvalidInput, w.Start, w.End)
			}
			// Окна дня идут по возрастанию и не пересекаются
			if i > 0 && windows[i-1].End.IsAfter(w.Start) {
				return nil, fmt.Errorf("%w: windows on %s must be ordered and non-overlapping", ErrInvalidInput, day)
			}
		}
	}

	return availability, nil
}
