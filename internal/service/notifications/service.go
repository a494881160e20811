package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/infra/emailsink"
	notificationRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/notifications/models"
)

// Event событие жизненного цикла бронирования для рассылки пользователю
type Event struct {
	UserID  string
	Type    domain.NotificationType
	Title   string
	Message string
	Data    map[string]interface{}
}

// Service сервис уведомлений: персистентная лента, email-заглушка и SSE поток
type Service struct {
	notificationRepo NotificationRepository
	userRepo         UserRepository
	emails           EmailSender
	stream           StreamPublisher
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	notificationRepo NotificationRepository,
	userRepo UserRepository,
	emails EmailSender,
	stream StreamPublisher,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emails:           emails,
		stream:           stream,
		logger:           logger,
	}
}

// Dispatch доставляет событие пользователю по трем каналам:
// строка в БД, email-файл и SSE поток. Доставка best-effort -
// сбой любого канала логируется и не прерывает остальные.
// Вызывающая операция (создание, отмена бронирования и т.д.)
// от сбоев доставки не падает.
func (s *Service) Dispatch(ctx context.Context, event Event) {
	notif := &domain.Notification{
		UserID:  event.UserID,
		Type:    event.Type,
		Title:   event.Title,
		Message: event.Message,
		Data:    event.Data,
	}

	created, err := s.notificationRepo.Create(ctx, notif)
	if err != nil {
		s.logger.Error("Dispatch: failed to persist notification type=%s for user=%s: %v", event.Type, event.UserID, err)
		created = notif
	}

	s.sendEmail(ctx, event)
	s.publish(created)
}

func (s *Service) sendEmail(ctx context.Context, event Event) {
	user, err := s.userRepo.GetByID(ctx, event.UserID)
	if err != nil {
		s.logger.Error("Dispatch: failed to resolve recipient user=%s: %v", event.UserID, err)
		return
	}

	_, err = s.emails.Send(emailsink.Email{
		To:      user.Email,
		ToName:  user.Profile.FullName(),
		Subject: event.Title,
		Body:    event.Message,
		Type:    string(event.Type),
	})
	if err != nil {
		s.logger.Error("Dispatch: failed to write email type=%s for user=%s: %v", event.Type, event.UserID, err)
	}
}

func (s *Service) publish(notif *domain.Notification) {
	payload, err := json.Marshal(models.StreamEvent{
		Type:         string(notif.Type),
		Notification: models.FromDomainNotification(notif),
	})
	if err != nil {
		s.logger.Error("Dispatch: failed to marshal stream event type=%s for user=%s: %v", notif.Type, notif.UserID, err)
		return
	}

	s.stream.Publish(notif.UserID, payload)
}

// List получает уведомления пользователя, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListNotificationsRequest) (*models.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.GetByUserID(ctx, req.UserID, notificationRepo.ListFilter{
		UnreadOnly: req.UnreadOnly,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications), nil
}

// UnreadCount возвращает количество непрочитанных уведомлений пользователя
func (s *Service) UnreadCount(ctx context.Context, userID string) (*models.UnreadCountResponse, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		s.logger.Error("UnreadCount: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UnreadCount - repository error: %v", ErrInternal, err)
	}

	return &models.UnreadCountResponse{Unread: count}, nil
}

// MarkRead помечает уведомление пользователя прочитанным.
// Чужое уведомление выглядит для вызывающего как не найденное.
func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	err := s.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%s not found for user=%s", id, userID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification=%s: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: notification id=%s marked read by user=%s", id, userID)
	return nil
}
