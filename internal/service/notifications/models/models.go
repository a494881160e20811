package models

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// Request модели

// ListNotificationsRequest параметры выборки уведомлений
type ListNotificationsRequest struct {
	UserID     string
	UnreadOnly bool
	Limit      uint64
	Offset     uint64
}

// Response модели

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"isRead"`
	ReadAt    *time.Time             `json:"readAt,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// NotificationListResponse список уведомлений
type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int                     `json:"total"`
}

// UnreadCountResponse количество непрочитанных уведомлений
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// StreamEvent событие для SSE потока
type StreamEvent struct {
	Type         string                `json:"type"`
	Notification *NotificationResponse `json:"notification"`
}

// FromDomainNotification конвертирует domain модель в response
func FromDomainNotification(notif *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        notif.ID,
		Type:      string(notif.Type),
		Title:     notif.Title,
		Message:   notif.Message,
		Data:      notif.Data,
		IsRead:    notif.IsRead,
		ReadAt:    notif.ReadAt,
		CreatedAt: notif.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в response
func FromDomainNotificationList(notifications []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]*NotificationResponse, 0, len(notifications)),
		Total:         len(notifications),
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, FromDomainNotification(n))
	}
	return resp
}
