package memory

import (
	"context"
	"time"

	"carenotify/internal/domain"
	"carenotify/internal/model"
)

func (s *Store) CreateNotification(_ context.Context, title, content string) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification := model.Notification{
		ID:        s.nextID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.byID[notification.ID] = len(s.records)
	s.records = append(s.records, notification)
	return notification, nil
}

func (s *Store) ListUnreadNotifications(_ context.Context) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Notification, 0)
	for _, record := range s.records {
		if record.Read {
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

func (s *Store) GetNotification(_ context.Context, id int64) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.byID[id]
	if !ok {
		return model.Notification{}, domain.ErrNotificationNotFound
	}
	return s.records[index], nil
}

// MarkNotificationRead flips the read flag in place. The flag never moves
// back to unread, so repeated calls are idempotent.
func (s *Store) MarkNotificationRead(_ context.Context, id int64) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.byID[id]
	if !ok {
		return model.Notification{}, domain.ErrNotificationNotFound
	}
	s.records[index].Read = true
	return s.records[index], nil
}
