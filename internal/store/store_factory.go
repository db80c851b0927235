package store

import (
	"go.uber.org/zap"

	"carenotify/internal/repository"
	"carenotify/internal/store/memory"
)

// NewStore picks the notification backend. Only the in-memory backend
// exists; persistence across restarts is out of scope.
func NewStore(logger *zap.Logger) repository.NotificationRepository {
	return memory.New(logger)
}
