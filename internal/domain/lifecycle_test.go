package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Info(t *testing.T) {
	t.Run("Known statuses map to Vietnamese labels", func(t *testing.T) {
		assert.Equal(t, "Mới tạo", OrderCreated.Info().Label)
		assert.Equal(t, "Đang giao", OrderDelivering.Info().Label)
		assert.Equal(t, "Giao thành công", OrderDeliveredSuccess.Info().Label)
		assert.Equal(t, "Giao thất bại", OrderDeliveryFailed.Info().Label)
	})

	t.Run("Unknown status falls back to the raw value", func(t *testing.T) {
		info := OrderStatus("QUARANTINED").Info()
		assert.Equal(t, "QUARANTINED", info.Label)
		assert.Equal(t, "default", info.Color)
	})
}

func TestOrderStatus_Terminal(t *testing.T) {
	terminal := []OrderStatus{OrderDeliveredSuccess, OrderDeliveryFailed, OrderCancelled, OrderReturned}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), string(s))
	}

	active := []OrderStatus{OrderCreated, OrderAssigned, OrderPickedUp, OrderDelivering}
	for _, s := range active {
		assert.False(t, s.Terminal(), string(s))
	}
}

func TestActionsFor(t *testing.T) {
	t.Run("Shipper actions follow the lifecycle step", func(t *testing.T) {
		assert.Equal(t, []Action{ActionPickUp}, ActionsFor(RoleShipper, OrderAssigned))
		assert.Equal(t, []Action{ActionStart}, ActionsFor(RoleShipper, OrderPickedUp))
		assert.Equal(t, []Action{ActionDeliver, ActionFail}, ActionsFor(RoleShipper, OrderDelivering))
		assert.Nil(t, ActionsFor(RoleShipper, OrderCreated))
	})

	t.Run("Shop may attempt delete on any non-terminal order", func(t *testing.T) {
		assert.Equal(t, []Action{ActionDelete}, ActionsFor(RoleShop, OrderCreated))
		assert.Equal(t, []Action{ActionDelete}, ActionsFor(RoleShop, OrderDelivering))
	})

	t.Run("Terminal orders expose no actions for anyone", func(t *testing.T) {
		for _, role := range []Role{RoleShop, RoleShipper, RoleAdmin} {
			assert.Nil(t, ActionsFor(role, OrderDeliveredSuccess))
			assert.Nil(t, ActionsFor(role, OrderCancelled))
		}
	})

	t.Run("Admin observes only", func(t *testing.T) {
		assert.Nil(t, ActionsFor(RoleAdmin, OrderDelivering))
	})
}

func TestAction_NextStatus(t *testing.T) {
	assert.Equal(t, OrderPickedUp, ActionPickUp.NextStatus())
	assert.Equal(t, OrderDelivering, ActionStart.NextStatus())
	assert.Equal(t, OrderStatus(""), ActionDeliver.NextStatus())
	assert.Equal(t, OrderStatus(""), ActionFail.NextStatus())
}

func TestComposeFailReason(t *testing.T) {
	t.Run("Reason alone is sent exactly as selected", func(t *testing.T) {
		assert.Equal(t, "Khách không nghe máy", ComposeFailReason("Khách không nghe máy", ""))
	})

	t.Run("Free text is appended after a colon", func(t *testing.T) {
		got := ComposeFailReason("Khách không nghe máy", "gọi 3 lần")
		assert.Equal(t, "Khách không nghe máy: gọi 3 lần", got)
	})
}
