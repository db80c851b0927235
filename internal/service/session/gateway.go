package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"carenotify/internal/domain"
	"carenotify/internal/metrics"
	"carenotify/internal/model"
	"carenotify/internal/service/notify"
)

// Gateway holds a single current user and gates notification access
// behind a login check. Each Gateway is an independent session; there is
// no process-wide state.
type Gateway struct {
	mu   sync.RWMutex
	user string

	svc *notify.Service
	m   *metrics.Metrics
	log *zap.Logger
}

func NewGateway(svc *notify.Service, m *metrics.Metrics, logger *zap.Logger) *Gateway {
	return &Gateway{svc: svc, m: m, log: logger}
}

// Login succeeds iff both credentials are non-empty. This is a
// placeholder, not authentication: credentials are never checked against
// any store.
func (g *Gateway) Login(username, password string) bool {
	if username == "" || password == "" {
		g.m.LoginAttempts.WithLabelValues("failure").Inc()
		return false
	}
	g.mu.Lock()
	g.user = username
	g.mu.Unlock()
	g.m.LoginAttempts.WithLabelValues("success").Inc()
	g.log.Info("user logged in", zap.String("user", username))
	return true
}

func (g *Gateway) LoggedIn() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user != ""
}

func (g *Gateway) CurrentUser() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user
}

// CheckNotifications returns the current unread notifications. Calling
// it while logged out is a benign no-op that yields an empty slice.
func (g *Gateway) CheckNotifications(ctx context.Context) []model.Notification {
	if !g.LoggedIn() {
		g.log.Info("check notifications refused, please log in first")
		return []model.Notification{}
	}
	unread, err := g.svc.ListUnread(ctx)
	if err != nil {
		g.log.Error("check notifications failed", zap.Error(err))
		return []model.Notification{}
	}
	g.log.Info("unread notifications checked",
		zap.String("user", g.CurrentUser()),
		zap.Int("count", len(unread)),
	)
	return unread
}

// ViewNotification returns the notification with the given id and marks
// it read. Logged-out callers get ErrNotLoggedIn; unknown ids get
// ErrNotificationNotFound. Both are expected outcomes, not failures.
func (g *Gateway) ViewNotification(ctx context.Context, id int64) (model.Notification, error) {
	if !g.LoggedIn() {
		g.log.Info("view notification refused, please log in first", zap.Int64("id", id))
		return model.Notification{}, domain.ErrNotLoggedIn
	}
	viewed, err := g.svc.View(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			g.log.Info("no notification with requested id", zap.Int64("id", id))
		}
		return model.Notification{}, err
	}
	g.log.Info("notification viewed",
		zap.String("user", g.CurrentUser()),
		zap.Int64("id", viewed.ID),
		zap.String("title", viewed.Title),
	)
	return viewed, nil
}
