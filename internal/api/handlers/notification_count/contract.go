package notification_count

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/notifications/models"
)

type NotificationsService interface {
	UnreadCount(ctx context.Context, userID string) (*models.UnreadCountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
