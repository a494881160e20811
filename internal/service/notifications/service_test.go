package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/infra/emailsink"
	notificationRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/notifications/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeNotificationRepo struct {
	created     *domain.Notification
	createErr   error
	listed      []*domain.Notification
	listFilter  notificationRepo.ListFilter
	unread      int64
	markReadErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, notif *domain.Notification) (*domain.Notification, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *notif
	created.ID = "notification-1"
	f.created = &created
	return &created, nil
}

func (f *fakeNotificationRepo) GetByUserID(_ context.Context, _ string, filter notificationRepo.ListFilter) ([]*domain.Notification, error) {
	f.listFilter = filter
	return f.listed, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, _ string) (int64, error) {
	return f.unread, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _, _ string) error {
	return f.markReadErr
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeEmailSender struct {
	sent []emailsink.Email
	err  error
}

func (f *fakeEmailSender) Send(email emailsink.Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return "/tmp/email.txt", nil
}

type fakePublisher struct {
	userID  string
	payload []byte
	calls   int
}

func (f *fakePublisher) Publish(userID string, event []byte) {
	f.calls++
	f.userID = userID
	f.payload = event
}

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Email: "jane.doe@example.com",
		Role:  domain.RoleCustomer,
		Profile: domain.Profile{
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}
}

func testEvent() Event {
	return Event{
		UserID:  "user-1",
		Type:    domain.NotificationBookingCreated,
		Title:   "Booking Confirmed - Haircut",
		Message: "Your booking is confirmed.",
		Data:    map[string]interface{}{"bookingId": "booking-1"},
	}
}

func TestDispatch_AllChannels(t *testing.T) {
	repo := &fakeNotificationRepo{}
	emails := &fakeEmailSender{}
	publisher := &fakePublisher{}
	svc := NewService(repo, &fakeUserRepo{user: testUser()}, emails, publisher, nopLogger{})

	svc.Dispatch(context.Background(), testEvent())

	// Строка в БД
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.NotificationBookingCreated, repo.created.Type)
	assert.Equal(t, "user-1", repo.created.UserID)

	// Email-файл
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "jane.doe@example.com", emails.sent[0].To)
	assert.Equal(t, "Jane Doe", emails.sent[0].ToName)
	assert.Equal(t, "Booking Confirmed - Haircut", emails.sent[0].Subject)
	assert.Equal(t, "booking_created", emails.sent[0].Type)

	// SSE поток: полезная нагрузка содержит сохраненное уведомление
	require.Equal(t, 1, publisher.calls)
	assert.Equal(t, "user-1", publisher.userID)

	var streamEvent models.StreamEvent
	require.NoError(t, json.Unmarshal(publisher.payload, &streamEvent))
	assert.Equal(t, "booking_created", streamEvent.Type)
	assert.Equal(t, "notification-1", streamEvent.Notification.ID)
}

func TestDispatch_PersistFailureDoesNotBlockOtherChannels(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("db down")}
	emails := &fakeEmailSender{}
	publisher := &fakePublisher{}
	svc := NewService(repo, &fakeUserRepo{user: testUser()}, emails, publisher, nopLogger{})

	svc.Dispatch(context.Background(), testEvent())

	assert.Len(t, emails.sent, 1)
	assert.Equal(t, 1, publisher.calls)
}

func TestDispatch_UnknownRecipientSkipsEmailOnly(t *testing.T) {
	repo := &fakeNotificationRepo{}
	emails := &fakeEmailSender{}
	publisher := &fakePublisher{}
	svc := NewService(repo, &fakeUserRepo{err: errors.New("user not found")}, emails, publisher, nopLogger{})

	svc.Dispatch(context.Background(), testEvent())

	assert.NotNil(t, repo.created)
	assert.Empty(t, emails.sent)
	assert.Equal(t, 1, publisher.calls)
}

func TestList_PassesFilter(t *testing.T) {
	repo := &fakeNotificationRepo{listed: []*domain.Notification{{ID: "notification-1", UserID: "user-1"}}}
	svc := NewService(repo, &fakeUserRepo{}, &fakeEmailSender{}, &fakePublisher{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListNotificationsRequest{
		UserID:     "user-1",
		UnreadOnly: true,
		Limit:      10,
		Offset:     20,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.True(t, repo.listFilter.UnreadOnly)
	assert.Equal(t, uint64(10), repo.listFilter.Limit)
	assert.Equal(t, uint64(20), repo.listFilter.Offset)
}

func TestUnreadCount(t *testing.T) {
	repo := &fakeNotificationRepo{unread: 7}
	svc := NewService(repo, &fakeUserRepo{}, &fakeEmailSender{}, &fakePublisher{}, nopLogger{})

	resp, err := svc.UnreadCount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Unread)
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := &fakeNotificationRepo{markReadErr: notificationRepo.ErrNotificationNotFound}
	svc := NewService(repo, &fakeUserRepo{}, &fakeEmailSender{}, &fakePublisher{}, nopLogger{})

	err := svc.MarkRead(context.Background(), "notification-1", "user-1")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestEventConstructors(t *testing.T) {
	booking := &domain.Booking{
		ID:           "booking-1",
		CustomerID:   "customer-1",
		ProviderID:   "provider-1",
		ServiceTitle: "Haircut",
		TotalAmount:  50,
		Currency:     "USD",
	}

	created := BookingCreatedForCustomer(booking)
	assert.Equal(t, "customer-1", created.UserID)
	assert.Equal(t, domain.NotificationBookingCreated, created.Type)
	assert.Equal(t, "booking-1", created.Data["bookingId"])

	failed := PaymentFailedForCustomer(booking, "Insufficient funds")
	assert.Equal(t, domain.NotificationPaymentFailed, failed.Type)
	assert.Equal(t, "Insufficient funds", failed.Data["failureReason"])
	assert.Contains(t, failed.Message, "Insufficient funds")

	received := PaymentReceivedForProvider(booking)
	assert.Equal(t, "provider-1", received.UserID)
	assert.Equal(t, domain.NotificationPaymentReceived, received.Type)
}
