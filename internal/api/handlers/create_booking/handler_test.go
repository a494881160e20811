package create_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceService/internal/auth"
	createBooking "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type stubParser struct{}

func (stubParser) ParseToken(string) (*auth.Claims, error) {
	return &auth.Claims{UserID: "customer-1", Role: "customer"}, nil
}

const requestBody = `{
	"serviceId": "service-1",
	"scheduledAt": "2026-09-02T10:00:00Z",
	"paymentMethod": {
		"type": "card",
		"cardNumber": "4242424242424242",
		"expiryMonth": 12,
		"expiryYear": 2027,
		"cvv": "123",
		"cardholderName": "Jane Doe"
	}
}`

func do(t *testing.T, useCase *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(useCase, nopLogger{})
	protected := middleware.Auth(stubParser{})(http.HandlerFunc(handler.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	useCase := &fakeUseCase{resp: &createBooking.Response{
		Booking: createBooking.BookingResult{ID: "booking-1", Status: "confirmed"},
	}}

	rec := do(t, useCase, requestBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"booking-1"`)

	require.NotNil(t, useCase.got)
	assert.Equal(t, "customer-1", useCase.got.CustomerID)
	assert.Equal(t, "service-1", useCase.got.ServiceID)
}

func TestHandle_InactiveServiceIsBadRequest(t *testing.T) {
	rec := do(t, &fakeUseCase{err: createBooking.ErrServiceUnavailable}, requestBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgServiceUnavailable)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"provider denied", createBooking.ErrAccessDenied, http.StatusForbidden},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"past date", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"outside availability", createBooking.ErrOutsideAvailability, http.StatusBadRequest},
		{"payment declined", fmt.Errorf("%w: Insufficient funds", createBooking.ErrPaymentFailed), http.StatusPaymentRequired},
		{"invalid card", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, &fakeUseCase{err: tt.err}, requestBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadScheduledAt(t *testing.T) {
	body := strings.Replace(requestBody, "2026-09-02T10:00:00Z", "tomorrow at noon", 1)

	rec := do(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
