package repository

import (
	"context"

	"carenotify/internal/model"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, title, content string) (model.Notification, error)
	ListUnreadNotifications(ctx context.Context) ([]model.Notification, error)
	GetNotification(ctx context.Context, id int64) (model.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) (model.Notification, error)
}
