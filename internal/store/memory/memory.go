package memory

import (
	"sync"

	"go.uber.org/zap"

	"carenotify/internal/model"
)

// Store keeps notifications in insertion order and issues IDs from a
// monotonic counter. IDs are never reused.
type Store struct {
	mu      sync.Mutex
	nextID  int64
	records []model.Notification
	byID    map[int64]int
	log     *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{nextID: 1, byID: make(map[int64]int), log: logger}
}
