package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/auth"
	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	userRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/user"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/users/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUserRepo struct {
	created   *domain.User
	createErr error
	byEmail   *domain.User
	emailErr  error
	byID      *domain.User
	idErr     error
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *user
	created.ID = "user-1"
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	return f.byEmail, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	if f.idErr != nil {
		return nil, f.idErr
	}
	return f.byID, nil
}

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", 30*time.Minute)
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Email:    "Jane.Doe@Example.com",
		Password: "password123",
		Role:     "customer",
		Profile: models.ProfileRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Phone:     "+15550100",
		},
	}
}

func TestRegister_Success(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, testIssuer(), nopLogger{})

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(1800), resp.ExpiresIn)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "customer", resp.User.Role)

	// Email нормализуется, пароль хранится только в виде bcrypt-хеша
	require.NotNil(t, repo.created)
	assert.Equal(t, "jane.doe@example.com", repo.created.Email)
	assert.NotEqual(t, "password123", repo.created.PasswordHash)
	assert.NoError(t, auth.CheckPassword(repo.created.PasswordHash, "password123"))

	// Выданный токен разбирается обратно
	claims, err := testIssuer().ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.RegisterRequest)
	}{
		{"invalid email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }},
		{"unknown role", func(r *models.RegisterRequest) { r.Role = "admin" }},
		{"missing first name", func(r *models.RegisterRequest) { r.Profile.FirstName = " " }},
		{"missing last name", func(r *models.RegisterRequest) { r.Profile.LastName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeUserRepo{}, testIssuer(), nopLogger{})
			req := registerRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := NewService(&fakeUserRepo{createErr: userRepo.ErrEmailTaken}, testIssuer(), nopLogger{})

	_, err := svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	repo := &fakeUserRepo{byEmail: &domain.User{
		ID:           "user-1",
		Email:        "jane.doe@example.com",
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	}}
	svc := NewService(repo, testIssuer(), nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "Jane.Doe@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	repo := &fakeUserRepo{byEmail: &domain.User{
		ID:           "user-1",
		PasswordHash: hash,
	}}
	svc := NewService(repo, testIssuer(), nopLogger{})

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "jane.doe@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc := NewService(&fakeUserRepo{emailErr: userRepo.ErrUserNotFound}, testIssuer(), nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	// Неизвестный email неотличим от неверного пароля
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	repo := &fakeUserRepo{byID: &domain.User{
		ID:    "user-1",
		Email: "jane.doe@example.com",
		Role:  domain.RoleCustomer,
		Profile: domain.Profile{
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}}
	svc := NewService(repo, testIssuer(), nopLogger{})

	resp, err := svc.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", resp.Profile.FirstName)
	assert.Equal(t, "jane.doe@example.com", resp.Email)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewService(&fakeUserRepo{idErr: userRepo.ErrUserNotFound}, testIssuer(), nopLogger{})

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
