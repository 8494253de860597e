package ui

import (
	"context"
	"sync"
	"time"

	"github.com/vanchuyen/codctl/internal/domain"
	"go.uber.org/zap"
)

// Poller periodically fetches the notification list and unread count
// while the role shell is mounted. It fetches once immediately on
// start and then on every interval tick; Stop tears the goroutine down
// so an unmounted shell issues no further requests.
type Poller struct {
	notifications domain.NotificationService
	interval      time.Duration
	logger        *zap.Logger
	onUpdate      func(unread int, items []domain.Notification)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPoller creates a poller; onUpdate receives every successful fetch
func NewPoller(notifications domain.NotificationService, interval time.Duration, onUpdate func(int, []domain.Notification), logger *zap.Logger) *Poller {
	return &Poller{
		notifications: notifications,
		interval:      interval,
		logger:        logger,
		onUpdate:      onUpdate,
	}
}

// Start launches the polling loop. Starting an already running poller
// is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.loop(ctx)
}

// Stop cancels the loop and waits for it to drain; no requests are
// issued after Stop returns
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.wg.Wait()
}

// Refresh fetches immediately, outside the tick schedule; used after
// mark-read actions so the badge reflects the server state right away
func (p *Poller) Refresh(ctx context.Context) {
	p.fetch(ctx)
}

func (p *Poller) loop(ctx context.Context) {
	defer p.wg.Done()

	p.fetch(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetch(ctx)
		}
	}
}

// fetch issues the list and unread-count requests concurrently and
// joins them before publishing, like the screen-level parallel fetches
func (p *Poller) fetch(ctx context.Context) {
	var (
		wg       sync.WaitGroup
		items    []domain.Notification
		unread   int
		listErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		items, listErr = p.notifications.List(ctx)
	}()
	go func() {
		defer wg.Done()
		unread, countErr = p.notifications.UnreadCount(ctx)
	}()
	wg.Wait()

	if listErr != nil || countErr != nil {
		// A failed poll is not fatal; the next tick retries
		if listErr != nil {
			p.logger.Debug("notification list fetch failed", zap.Error(listErr))
		}
		if countErr != nil {
			p.logger.Debug("unread count fetch failed", zap.Error(countErr))
		}
		return
	}

	if ctx.Err() != nil {
		// Do not publish a result that raced with Stop
		return
	}

	if p.onUpdate != nil {
		p.onUpdate(unread, items)
	}
}
