package notify

import (
	"context"

	"go.uber.org/zap"

	"carenotify/internal/metrics"
	"carenotify/internal/model"
	"carenotify/internal/repository"
)

type Service struct {
	store repository.NotificationRepository
	m     *metrics.Metrics
	log   *zap.Logger
}

func NewService(store repository.NotificationRepository, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{store: store, m: m, log: logger}
}

// Create accepts title and content as opaque text; empty strings are
// permitted.
func (s *Service) Create(ctx context.Context, title, content string) (model.Notification, error) {
	created, err := s.store.CreateNotification(ctx, title, content)
	if err != nil {
		s.log.Error("store create notification failed",
			zap.String("title", title),
			zap.Error(err),
		)
		return model.Notification{}, err
	}
	s.m.NotificationsCreated.Inc()
	return created, nil
}

func (s *Service) ListUnread(ctx context.Context) ([]model.Notification, error) {
	unread, err := s.store.ListUnreadNotifications(ctx)
	if err != nil {
		s.log.Error("store list unread notifications failed", zap.Error(err))
		return nil, err
	}
	return unread, nil
}

func (s *Service) Get(ctx context.Context, id int64) (model.Notification, error) {
	return s.store.GetNotification(ctx, id)
}

// View looks up a notification and marks it read in one operation.
// Viewing an already-read notification keeps the flag set and still
// returns the record.
func (s *Service) View(ctx context.Context, id int64) (model.Notification, error) {
	viewed, err := s.store.MarkNotificationRead(ctx, id)
	if err != nil {
		return model.Notification{}, err
	}
	s.m.NotificationsRead.Inc()
	return viewed, nil
}
