package register_user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usersService "github.com/m04kA/SMC-MarketplaceService/internal/service/users"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/users/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	resp *models.AuthResponse
	err  error
	got  *models.RegisterRequest
}

func (f *fakeService) Register(_ context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

const requestBody = `{
	"email": "jane.doe@example.com",
	"password": "password123",
	"role": "customer",
	"profile": {"firstName": "Jane", "lastName": "Doe"}
}`

func TestHandle_Created(t *testing.T) {
	service := &fakeService{resp: &models.AuthResponse{
		AccessToken: "token",
		TokenType:   "Bearer",
		ExpiresIn:   1800,
		User:        models.UserResponse{ID: "user-1"},
	}}
	handler := NewHandler(service, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(requestBody)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"accessToken":"token"`)

	require.NotNil(t, service.got)
	assert.Equal(t, "jane.doe@example.com", service.got.Email)
}

func TestHandle_MalformedBody(t *testing.T) {
	handler := NewHandler(&fakeService{}, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	handler := NewHandler(&fakeService{}, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(`{"email": "a@b.c", "unknown": true}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_EmailTaken(t *testing.T) {
	handler := NewHandler(&fakeService{err: usersService.ErrEmailTaken}, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(requestBody)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	handler := NewHandler(&fakeService{err: usersService.ErrInvalidInput}, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(requestBody)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	handler := NewHandler(&fakeService{err: usersService.ErrInternal}, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(requestBody)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
