package notifications

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/infra/emailsink"
	notificationRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/notification"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) (*domain.Notification, error)
	GetByUserID(ctx context.Context, userID string, filter notificationRepo.ListFilter) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id, userID string) error
}

// UserRepository интерфейс репозитория пользователей,
// нужен для получения email-адреса получателя
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// EmailSender интерфейс файлового почтового sink
type EmailSender interface {
	Send(email emailsink.Email) (string, error)
}

// StreamPublisher интерфейс шины реал-тайм событий
type StreamPublisher interface {
	Publish(userID string, event []byte)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
