package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanchuyen/codctl/internal/domain"
)

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success posts the full payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/shop/orders", r.URL.Path)
			require.Equal(t, http.MethodPost, r.Method)

			var req domain.CreateOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "shipper-1", req.ShipperID)
			assert.Equal(t, 200000.0, req.CodAmount)

			json.NewEncoder(w).Encode(domain.Order{
				ID: "o1", OrderCode: "DH001", Status: domain.OrderAssigned,
			})
		}))
		defer server.Close()

		svc := NewOrderService(newTestClient(server.URL, &memStore{}))
		order, err := svc.CreateOrder(ctx, domain.CreateOrderRequest{
			ReceiverName:    "Nguyễn Văn A",
			ReceiverPhone:   "0901234567",
			ReceiverAddress: "12 Lê Lợi, Q1",
			PickupAddress:   "34 Hai Bà Trưng, Q1",
			ProductName:     "Áo thun",
			CodAmount:       200000,
			ShippingFee:     30000,
			ShipperID:       "shipper-1",
			AllowInspection: domain.InspectionYes,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderAssigned, order.Status)
	})

	t.Run("Missing required fields are rejected locally", func(t *testing.T) {
		svc := NewOrderService(newTestClient("http://127.0.0.1:0", &memStore{}))

		_, err := svc.CreateOrder(ctx, domain.CreateOrderRequest{ReceiverName: "A"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.CreateOrder(ctx, domain.CreateOrderRequest{
			ReceiverName:    "A",
			ReceiverPhone:   "0901234567",
			ReceiverAddress: "addr",
			ProductName:     "Áo thun",
			CodAmount:       -1,
			ShipperID:       "shipper-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative amounts are invalid")
	})
}

func TestOrderService_ShipperOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Status filter repeats the query parameter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, []string{"ASSIGNED", "PICKED_UP", "DELIVERING"}, r.URL.Query()["status"])
			w.Write([]byte(`[{"id":"o1","orderCode":"DH001","status":"ASSIGNED"}]`))
		}))
		defer server.Close()

		svc := NewOrderService(newTestClient(server.URL, &memStore{}))
		page, err := svc.ShipperOrders(ctx, []domain.OrderStatus{
			domain.OrderAssigned, domain.OrderPickedUp, domain.OrderDelivering,
		})
		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, domain.OrderAssigned, page.Content[0].Status)
	})

	t.Run("No filter sends no status parameter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			w.Write([]byte(`{"content":[]}`))
		}))
		defer server.Close()

		svc := NewOrderService(newTestClient(server.URL, &memStore{}))
		_, err := svc.ShipperOrders(ctx, nil)
		require.NoError(t, err)
	})
}

func TestOrderService_Deliver(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed delivery sends the composed reason verbatim", func(t *testing.T) {
		var rawBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/shipper/orders/o1/deliver", r.URL.Path)
			rawBody, _ = io.ReadAll(r.Body)
			json.NewEncoder(w).Encode(domain.Order{
				ID: "o1", Status: domain.OrderDeliveryFailed,
				FailReason: "Khách không nghe máy: gọi 3 lần",
			})
		}))
		defer server.Close()

		svc := NewOrderService(newTestClient(server.URL, &memStore{}))
		reason := domain.ComposeFailReason("Khách không nghe máy", "gọi 3 lần")

		order, err := svc.Deliver(ctx, "o1", domain.DeliveryFailed, reason)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderDeliveryFailed, order.Status)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rawBody, &body))
		assert.Equal(t, "FAILED", body["result"])
		assert.Equal(t, "Khách không nghe máy: gọi 3 lần", body["reason"])
	})

	t.Run("Successful delivery omits the reason field", func(t *testing.T) {
		var rawBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawBody, _ = io.ReadAll(r.Body)
			json.NewEncoder(w).Encode(domain.Order{ID: "o1", Status: domain.OrderDeliveredSuccess})
		}))
		defer server.Close()

		svc := NewOrderService(newTestClient(server.URL, &memStore{}))
		_, err := svc.Deliver(ctx, "o1", domain.DeliverySuccess, "")
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rawBody, &body))
		assert.Equal(t, "SUCCESS", body["result"])
		assert.NotContains(t, body, "reason")
	})

	t.Run("Failed delivery without a reason is rejected locally", func(t *testing.T) {
		svc := NewOrderService(newTestClient("http://127.0.0.1:0", &memStore{}))

		_, err := svc.Deliver(ctx, "o1", domain.DeliveryFailed, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("Patches the status endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			require.Equal(t, "/shipper/orders/o1/status", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "PICKED_UP", body["status"])

			json.NewEncoder(w).Encode(domain.Order{ID: "o1", Status: domain.OrderPickedUp})
		}))
		defer server.Close()

		svc := NewOrderService(newTestClient(server.URL, &memStore{}))
		order, err := svc.UpdateStatus(context.Background(), "o1", domain.OrderPickedUp)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderPickedUp, order.Status)
	})
}
