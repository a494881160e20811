package list_notifications

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/notifications/models"
)

type NotificationsService interface {
	List(ctx context.Context, req *models.ListNotificationsRequest) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
