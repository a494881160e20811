package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/service"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/catalog/models"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeServiceRepo struct {
	svc         *domain.Service
	getErr      error
	created     *domain.Service
	updated     *domain.Service
	listed      []*domain.Service
	listFilter  serviceRepo.ListFilter
	deactivated string
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	created := *svc
	created.ID = "service-1"
	f.created = &created
	return &created, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ string) (*domain.Service, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	svc := *f.svc
	return &svc, nil
}

func (f *fakeServiceRepo) List(_ context.Context, filter serviceRepo.ListFilter) ([]*domain.Service, error) {
	f.listFilter = filter
	return f.listed, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	updated := *svc
	f.updated = &updated
	return &updated, nil
}

func (f *fakeServiceRepo) Deactivate(_ context.Context, id string) error {
	f.deactivated = id
	return nil
}

func providerActor() models.Actor {
	return models.Actor{UserID: "provider-1", Role: domain.RoleProvider}
}

func ownedService() *domain.Service {
	return &domain.Service{
		ID:              "service-1",
		ProviderID:      "provider-1",
		Title:           "Haircut",
		Category:        "beauty",
		Price:           50,
		Currency:        "USD",
		DurationMinutes: 60,
		Availability: domain.Availability{
			"monday": {{Start: "09:00", End: "17:00"}},
		},
		IsActive: true,
	}
}

func createRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Title:           "Haircut",
		Description:     "Classic haircut",
		Category:        "beauty",
		Price:           50,
		Currency:        "usd",
		DurationMinutes: 60,
		Availability: map[string][]models.TimeRangeRequest{
			"monday": {{Start: "09:00", End: "17:00"}},
		},
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), providerActor(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "service-1", resp.ID)
	assert.Equal(t, "provider-1", resp.ProviderID)
	assert.Equal(t, "USD", resp.Currency) // нормализована в верхний регистр
	assert.True(t, resp.IsActive)
	require.Contains(t, resp.Availability, "monday")
	assert.Equal(t, "09:00", resp.Availability["monday"][0].Start)
}

func TestCreate_DefaultCurrency(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewService(repo, nopLogger{})

	req := createRequest()
	req.Currency = ""

	resp, err := svc.Create(context.Background(), providerActor(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, resp.Currency)
}

func TestCreate_CustomerDenied(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), models.Actor{UserID: "customer-1", Role: domain.RoleCustomer}, createRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateServiceRequest)
	}{
		{"empty title", func(r *models.CreateServiceRequest) { r.Title = "  " }},
		{"title too long", func(r *models.CreateServiceRequest) { r.Title = strings.Repeat("x", 101) }},
		{"description too long", func(r *models.CreateServiceRequest) { r.Description = strings.Repeat("x", 1001) }},
		{"empty category", func(r *models.CreateServiceRequest) { r.Category = "" }},
		{"zero price", func(r *models.CreateServiceRequest) { r.Price = 0 }},
		{"negative price", func(r *models.CreateServiceRequest) { r.Price = -10 }},
		{"bad currency", func(r *models.CreateServiceRequest) { r.Currency = "DOLLARS" }},
		{"duration too short", func(r *models.CreateServiceRequest) { r.DurationMinutes = 4 }},
		{"duration too long", func(r *models.CreateServiceRequest) { r.DurationMinutes = 481 }},
		{"unknown weekday", func(r *models.CreateServiceRequest) {
			r.Availability = map[string][]models.TimeRangeRequest{"someday": {{Start: "09:00", End: "17:00"}}}
		}},
		{"window start after end", func(r *models.CreateServiceRequest) {
			r.Availability = map[string][]models.TimeRangeRequest{"monday": {{Start: "17:00", End: "09:00"}}}
		}},
		{"bad time format", func(r *models.CreateServiceRequest) {
			r.Availability = map[string][]models.TimeRangeRequest{"monday": {{Start: "9am", End: "17:00"}}}
		}},
		{"overlapping windows", func(r *models.CreateServiceRequest) {
			r.Availability = map[string][]models.TimeRangeRequest{"monday": {
				{Start: "09:00", End: "13:00"},
				{Start: "12:00", End: "17:00"},
			}}
		}},
		{"unordered windows", func(r *models.CreateServiceRequest) {
			r.Availability = map[string][]models.TimeRangeRequest{"monday": {
				{Start: "13:00", End: "17:00"},
				{Start: "09:00", End: "12:00"},
			}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeServiceRepo{}, nopLogger{})
			req := createRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), providerActor(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_AdjacentWindowsAllowed(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, nopLogger{})
	req := createRequest()
	req.Availability = map[string][]models.TimeRangeRequest{"monday": {
		{Start: "09:00", End: "13:00"},
		{Start: "13:00", End: "17:00"},
	}}

	_, err := svc.Create(context.Background(), providerActor(), req)
	assert.NoError(t, err)
}

func TestList_OnlyActive(t *testing.T) {
	repo := &fakeServiceRepo{listed: []*domain.Service{ownedService()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListServicesRequest{Category: ptr.Ptr("beauty")})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.True(t, repo.listFilter.OnlyActive)
	require.NotNil(t, repo.listFilter.Category)
	assert.Equal(t, "beauty", *repo.listFilter.Category)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &fakeServiceRepo{svc: ownedService()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), providerActor(), "service-1", &models.UpdateServiceRequest{
		Price: ptr.Ptr(75.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 75.0, resp.Price)
	// Остальные поля не тронуты
	assert.Equal(t, "Haircut", resp.Title)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestUpdate_NotOwnerSeesNotFound(t *testing.T) {
	repo := &fakeServiceRepo{svc: ownedService()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), models.Actor{UserID: "provider-2", Role: domain.RoleProvider}, "service-1", &models.UpdateServiceRequest{
		Price: ptr.Ptr(75.0),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_InvalidResult(t *testing.T) {
	repo := &fakeServiceRepo{svc: ownedService()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), providerActor(), "service-1", &models.UpdateServiceRequest{
		Price: ptr.Ptr(-5.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_DeactivatesOwnedService(t *testing.T) {
	repo := &fakeServiceRepo{svc: ownedService()}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), providerActor(), "service-1")
	require.NoError(t, err)
	assert.Equal(t, "service-1", repo.deactivated)
}

func TestDelete_NotOwnerSeesNotFound(t *testing.T) {
	repo := &fakeServiceRepo{svc: ownedService()}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), models.Actor{UserID: "provider-2", Role: domain.RoleProvider}, "service-1")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, repo.deactivated)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{getErr: serviceRepo.ErrServiceNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
