package models

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// Actor аутентифицированный пользователь, от имени которого выполняется операция
type Actor struct {
	UserID string
	Role   domain.UserRole
}

// Request модели

// TimeRangeRequest окно доступности в запросе, время в формате "HH:MM"
type TimeRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Title           string                        `json:"title"`
	Description     string                        `json:"description"`
	Category        string                        `json:"category"`
	Price           float64                       `json:"price"`
	Currency        string                        `json:"currency,omitempty"`
	DurationMinutes int                           `json:"durationMinutes"`
	Availability    map[string][]TimeRangeRequest `json:"availability"`
	Images          []string                      `json:"images,omitempty"`
}

// UpdateServiceRequest запрос на обновление услуги.
// Указанные поля заменяют текущие значения, nil-поля не меняются.
type UpdateServiceRequest struct {
	Title           *string                       `json:"title,omitempty"`
	Description     *string                       `json:"description,omitempty"`
	Category        *string                       `json:"category,omitempty"`
	Price           *float64                      `json:"price,omitempty"`
	Currency        *string                       `json:"currency,omitempty"`
	DurationMinutes *int                          `json:"durationMinutes,omitempty"`
	Availability    map[string][]TimeRangeRequest `json:"availability,omitempty"`
	Images          []string                      `json:"images,omitempty"`
	IsActive        *bool                         `json:"isActive,omitempty"`
}

// ListServicesRequest параметры выборки каталога
type ListServicesRequest struct {
	ProviderID *string
	Category   *string
}

// Response модели

// TimeRangeResponse окно доступности в ответе
type TimeRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string                         `json:"id"`
	ProviderID      string                         `json:"providerId"`
	Title           string                         `json:"title"`
	Description     string                         `json:"description"`
	Category        string                         `json:"category"`
	Price           float64                        `json:"price"`
	Currency        string                         `json:"currency"`
	DurationMinutes int                            `json:"durationMinutes"`
	Availability    map[string][]TimeRangeResponse `json:"availability"`
	Images          []string                       `json:"images"`
	IsActive        bool                           `json:"isActive"`
	CreatedAt       time.Time                      `json:"createdAt"`
	UpdatedAt       time.Time                      `json:"updatedAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(svc *domain.Service) *ServiceResponse {
	availability := make(map[string][]TimeRangeResponse, len(svc.Availability))
	for day, windows := range svc.Availability {
		ranges := make([]TimeRangeResponse, 0, len(windows))
		for _, w := range windows {
			ranges = append(ranges, TimeRangeResponse{
				Start: w.Start.String(),
				End:   w.End.String(),
			})
		}
		availability[day] = ranges
	}

	images := svc.Images
	if images == nil {
		images = []string{}
	}

	return &ServiceResponse{
		ID:              svc.ID,
		ProviderID:      svc.ProviderID,
		Title:           svc.Title,
		Description:     svc.Description,
		Category:        svc.Category,
		Price:           svc.Price,
		Currency:        svc.Currency,
		DurationMinutes: svc.DurationMinutes,
		Availability:    availability,
		Images:          images,
		IsActive:        svc.IsActive,
		CreatedAt:       svc.CreatedAt,
		UpdatedAt:       svc.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в response
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]*ServiceResponse, 0, len(services)),
		Total:    len(services),
	}
	for _, svc := range services {
		resp.Services = append(resp.Services, FromDomainService(svc))
	}
	return resp
}

// ToDomainAvailability конвертирует availability из запроса в domain модель
func ToDomainAvailability(req map[string][]TimeRangeRequest) (domain.Availability, error) {
	availability := make(domain.Availability, len(req))
	for day, windows := range req {
		ranges := make([]domain.TimeRange, 0, len(windows))
		for _, w := range windows {
			start, err := types.NewTimeStringFromString(w.Start)
			if err != nil {
				return nil, err
			}
			end, err := types.NewTimeStringFromString(w.End)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, domain.TimeRange{Start: start, End: end})
		}
		availability[day] = ranges
	}
	return availability, nil
}
