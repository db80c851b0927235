package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carenotify/internal/domain"
	"carenotify/internal/metrics"
	"carenotify/internal/model"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) CreateNotification(ctx context.Context, title, content string) (model.Notification, error) {
	args := m.Called(ctx, title, content)
	return args.Get(0).(model.Notification), args.Error(1)
}

func (m *repoMock) ListUnreadNotifications(ctx context.Context) ([]model.Notification, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *repoMock) GetNotification(ctx context.Context, id int64) (model.Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Notification), args.Error(1)
}

func (m *repoMock) MarkNotificationRead(ctx context.Context, id int64) (model.Notification, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Notification), args.Error(1)
}

func TestServiceCreate(t *testing.T) {
	t.Run("success counts the creation", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("CreateNotification", mock.Anything, "title", "content").Return(model.Notification{
			ID:      1,
			Title:   "title",
			Content: "content",
		}, nil).Once()
		m := metrics.New()
		svc := NewService(repo, m, zap.NewNop())

		created, err := svc.Create(context.Background(), "title", "content")
		require.NoError(t, err)
		require.Equal(t, int64(1), created.ID)
		require.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsCreated))
		repo.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		storeErr := errors.New("store failed")
		repo := &repoMock{}
		repo.On("CreateNotification", mock.Anything, "title", "content").Return(model.Notification{}, storeErr).Once()
		m := metrics.New()
		svc := NewService(repo, m, zap.NewNop())

		_, err := svc.Create(context.Background(), "title", "content")
		require.ErrorIs(t, err, storeErr)
		require.Equal(t, 0.0, testutil.ToFloat64(m.NotificationsCreated))
		repo.AssertExpectations(t)
	})
}

func TestServiceListUnread(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		expected := []model.Notification{{ID: 1, Title: "title"}}
		repo := &repoMock{}
		repo.On("ListUnreadNotifications", mock.Anything).Return(expected, nil).Once()
		svc := NewService(repo, metrics.New(), zap.NewNop())

		got, err := svc.ListUnread(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, expected[0].ID, got[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		storeErr := errors.New("list failed")
		repo := &repoMock{}
		repo.On("ListUnreadNotifications", mock.Anything).Return([]model.Notification(nil), storeErr).Once()
		svc := NewService(repo, metrics.New(), zap.NewNop())

		_, err := svc.ListUnread(context.Background())
		require.ErrorIs(t, err, storeErr)
		repo.AssertExpectations(t)
	})
}

func TestServiceGet(t *testing.T) {
	t.Run("passes through without side effects", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetNotification", mock.Anything, int64(3)).Return(model.Notification{ID: 3}, nil).Once()
		m := metrics.New()
		svc := NewService(repo, m, zap.NewNop())

		got, err := svc.Get(context.Background(), 3)
		require.NoError(t, err)
		require.Equal(t, int64(3), got.ID)
		require.Equal(t, 0.0, testutil.ToFloat64(m.NotificationsRead))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetNotification", mock.Anything, int64(3)).Return(model.Notification{}, domain.ErrNotificationNotFound).Once()
		svc := NewService(repo, metrics.New(), zap.NewNop())

		_, err := svc.Get(context.Background(), 3)
		require.ErrorIs(t, err, domain.ErrNotificationNotFound)
		repo.AssertExpectations(t)
	})
}

func TestServiceView(t *testing.T) {
	t.Run("marks read and counts", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("MarkNotificationRead", mock.Anything, int64(7)).Return(model.Notification{
			ID:   7,
			Read: true,
		}, nil).Once()
		m := metrics.New()
		svc := NewService(repo, m, zap.NewNop())

		viewed, err := svc.View(context.Background(), 7)
		require.NoError(t, err)
		require.True(t, viewed.Read)
		require.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsRead))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("MarkNotificationRead", mock.Anything, int64(7)).Return(model.Notification{}, domain.ErrNotificationNotFound).Once()
		m := metrics.New()
		svc := NewService(repo, m, zap.NewNop())

		_, err := svc.View(context.Background(), 7)
		require.ErrorIs(t, err, domain.ErrNotificationNotFound)
		require.Equal(t, 0.0, testutil.ToFloat64(m.NotificationsRead))
		repo.AssertExpectations(t)
	})
}
