package service

import (
	"context"
	"fmt"

	"github.com/vanchuyen/codctl/internal/api"
	"github.com/vanchuyen/codctl/internal/domain"
)

// NotificationService implements domain.NotificationService over the
// polled notification endpoints
type NotificationService struct {
	client *api.Client
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(client *api.Client) *NotificationService {
	return &NotificationService{client: client}
}

// List fetches all notifications, newest first per backend ordering
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	var page domain.Page[domain.Notification]
	if err := s.client.Get(ctx, "/notifications", nil, &page); err != nil {
		return nil, fmt.Errorf("notification service: failed to list notifications: %w", err)
	}
	return page.Content, nil
}

// UnreadCount fetches the unread counter
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		UnreadCount int `json:"unreadCount"`
	}
	if err := s.client.Get(ctx, "/notifications/unread-count", nil, &resp); err != nil {
		return 0, fmt.Errorf("notification service: failed to fetch unread count: %w", err)
	}
	return resp.UnreadCount, nil
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	if err := s.client.Put(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil); err != nil {
		return fmt.Errorf("notification service: failed to mark notification %d read: %w", id, err)
	}
	return nil
}

// MarkAllRead marks every notification as read
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	if err := s.client.Put(ctx, "/notifications/read-all", nil, nil); err != nil {
		return fmt.Errorf("notification service: failed to mark all read: %w", err)
	}
	return nil
}
