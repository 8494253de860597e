package ui

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanchuyen/codctl/internal/domain"
	"go.uber.org/zap"
)

// fakeNotifications counts fetches and serves a fixed payload
type fakeNotifications struct {
	listCalls atomic.Int64
	fetched   chan struct{}
}

func newFakeNotifications() *fakeNotifications {
	return &fakeNotifications{fetched: make(chan struct{}, 64)}
}

func (f *fakeNotifications) List(context.Context) ([]domain.Notification, error) {
	f.listCalls.Add(1)
	select {
	case f.fetched <- struct{}{}:
	default:
	}
	return []domain.Notification{{ID: 1, Title: "Đơn DH001 đã được giao", IsRead: false}}, nil
}

func (f *fakeNotifications) UnreadCount(context.Context) (int, error) { return 3, nil }

func (f *fakeNotifications) MarkRead(context.Context, int64) error { return nil }

func (f *fakeNotifications) MarkAllRead(context.Context) error { return nil }

func waitFetches(t *testing.T, f *fakeNotifications, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.fetched:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for fetch %d of %d", i+1, n)
		}
	}
}

func TestPoller_Lifecycle(t *testing.T) {
	t.Run("Fetches immediately and then on every tick", func(t *testing.T) {
		svc := newFakeNotifications()

		var mu sync.Mutex
		var lastUnread int
		poller := NewPoller(svc, 5*time.Millisecond, func(unread int, items []domain.Notification) {
			mu.Lock()
			lastUnread = unread
			mu.Unlock()
		}, zap.NewNop())

		poller.Start(context.Background())
		waitFetches(t, svc, 3)
		poller.Stop()

		assert.GreaterOrEqual(t, svc.listCalls.Load(), int64(3))
		mu.Lock()
		assert.Equal(t, 3, lastUnread)
		mu.Unlock()
	})

	t.Run("No requests are issued after Stop", func(t *testing.T) {
		svc := newFakeNotifications()
		poller := NewPoller(svc, 5*time.Millisecond, nil, zap.NewNop())

		poller.Start(context.Background())
		waitFetches(t, svc, 2)
		poller.Stop()

		settled := svc.listCalls.Load()
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, settled, svc.listCalls.Load(), "poller must be silent after Stop")
	})

	t.Run("Starting twice does not double the loop", func(t *testing.T) {
		svc := newFakeNotifications()
		poller := NewPoller(svc, time.Hour, nil, zap.NewNop())

		poller.Start(context.Background())
		poller.Start(context.Background())
		waitFetches(t, svc, 1)
		poller.Stop()

		// Only the immediate fetch of the single loop ran
		assert.Equal(t, int64(1), svc.listCalls.Load())
	})

	t.Run("Stop on a never-started poller is a no-op", func(t *testing.T) {
		poller := NewPoller(newFakeNotifications(), time.Hour, nil, zap.NewNop())
		poller.Stop()
	})

	t.Run("Refresh fetches outside the tick schedule", func(t *testing.T) {
		svc := newFakeNotifications()
		poller := NewPoller(svc, time.Hour, nil, zap.NewNop())

		poller.Start(context.Background())
		waitFetches(t, svc, 1)

		poller.Refresh(context.Background())
		waitFetches(t, svc, 1)
		poller.Stop()

		require.Equal(t, int64(2), svc.listCalls.Load())
	})
}
