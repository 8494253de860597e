package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vanchuyen/codctl/internal/api"
	"github.com/vanchuyen/codctl/internal/domain"
)

// OrderService implements domain.OrderService for both the shop and
// shipper sides of the order lifecycle
type OrderService struct {
	client *api.Client
}

// NewOrderService creates a new OrderService
func NewOrderService(client *api.Client) *OrderService {
	return &OrderService{client: client}
}

// CreateOrder submits a new order; the backend assigns the code and
// the ASSIGNED transition for the mandatory shipper
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if req.ReceiverName == "" || req.ReceiverPhone == "" || req.ReceiverAddress == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.ProductName == "" || req.ShipperID == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.CodAmount < 0 || req.ShippingFee < 0 {
		return nil, domain.ErrInvalidInput
	}

	var order domain.Order
	if err := s.client.Post(ctx, "/shop/orders", req, &order); err != nil {
		return nil, fmt.Errorf("order service: failed to create order: %w", err)
	}
	return &order, nil
}

// ShopOrders lists the shop's orders, normalized to the page shape
func (s *OrderService) ShopOrders(ctx context.Context) (*domain.Page[domain.Order], error) {
	var page domain.Page[domain.Order]
	if err := s.client.Get(ctx, "/shop/orders", nil, &page); err != nil {
		return nil, fmt.Errorf("order service: failed to list shop orders: %w", err)
	}
	return &page, nil
}

// DeleteOrder attempts a delete; whether the status permits it is a
// server-side policy, rejection surfaces as the backend's error
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	if err := s.client.Delete(ctx, "/shop/orders/"+orderID); err != nil {
		return fmt.Errorf("order service: failed to delete order %s: %w", orderID, err)
	}
	return nil
}

// Shippers lists shippers available for assignment
func (s *OrderService) Shippers(ctx context.Context) ([]domain.Shipper, error) {
	var page domain.Page[domain.Shipper]
	if err := s.client.Get(ctx, "/shop/shippers", nil, &page); err != nil {
		return nil, fmt.Errorf("order service: failed to list shippers: %w", err)
	}
	return page.Content, nil
}

// ShipperOrders lists the shipper's orders, optionally filtered by status
func (s *OrderService) ShipperOrders(ctx context.Context, statuses []domain.OrderStatus) (*domain.Page[domain.Order], error) {
	var query url.Values
	if len(statuses) > 0 {
		query = url.Values{}
		for _, st := range statuses {
			query.Add("status", string(st))
		}
	}

	var page domain.Page[domain.Order]
	if err := s.client.Get(ctx, "/shipper/orders", query, &page); err != nil {
		return nil, fmt.Errorf("order service: failed to list shipper orders: %w", err)
	}
	return &page, nil
}

// UpdateStatus applies a generic intermediate status update
// (PICKED_UP, DELIVERING); legality is the backend's call
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	var order domain.Order
	body := map[string]domain.OrderStatus{"status": status}
	if err := s.client.Patch(ctx, "/shipper/orders/"+orderID+"/status", body, &order); err != nil {
		return nil, fmt.Errorf("order service: failed to update order %s status: %w", orderID, err)
	}
	return &order, nil
}

// Deliver reports the terminal delivery outcome. A FAILED result
// requires a reason (already composed via domain.ComposeFailReason).
func (s *OrderService) Deliver(ctx context.Context, orderID string, result domain.DeliveryResult, reason string) (*domain.Order, error) {
	if result == domain.DeliveryFailed && reason == "" {
		return nil, domain.ErrInvalidInput
	}

	body := struct {
		Result domain.DeliveryResult `json:"result"`
		Reason string                `json:"reason,omitempty"`
	}{Result: result, Reason: reason}

	var order domain.Order
	if err := s.client.Post(ctx, "/shipper/orders/"+orderID+"/deliver", body, &order); err != nil {
		return nil, fmt.Errorf("order service: failed to deliver order %s: %w", orderID, err)
	}
	return &order, nil
}
