package domain

// OrderStatus is the order lifecycle value. The lifecycle progresses
// strictly forward; CANCELLED and RETURNED are reachable from any
// pre-terminal point:
//
//	CREATED -> ASSIGNED -> PICKED_UP -> DELIVERING -> DELIVERED_SUCCESS
//	                                               -> DELIVERY_FAILED
//
// Authoritative legality of a transition is enforced by the backend;
// the client only hides obviously-terminal actions and displays the
// backend's verdict verbatim.
type OrderStatus string

const (
	OrderCreated          OrderStatus = "CREATED"
	OrderAssigned         OrderStatus = "ASSIGNED"
	OrderPickedUp         OrderStatus = "PICKED_UP"
	OrderDelivering       OrderStatus = "DELIVERING"
	OrderDeliveredSuccess OrderStatus = "DELIVERED_SUCCESS"
	OrderDeliveryFailed   OrderStatus = "DELIVERY_FAILED"
	OrderCancelled        OrderStatus = "CANCELLED"
	OrderReturned         OrderStatus = "RETURNED"
)

// StatusInfo is presentation metadata for one order status
type StatusInfo struct {
	Label string
	Color string
}

var statusInfo = map[OrderStatus]StatusInfo{
	OrderCreated:          {Label: "Mới tạo", Color: "default"},
	OrderAssigned:         {Label: "Đã gán shipper", Color: "blue"},
	OrderPickedUp:         {Label: "Đã lấy hàng", Color: "cyan"},
	OrderDelivering:       {Label: "Đang giao", Color: "orange"},
	OrderDeliveredSuccess: {Label: "Giao thành công", Color: "green"},
	OrderDeliveryFailed:   {Label: "Giao thất bại", Color: "red"},
	OrderCancelled:        {Label: "Đã hủy", Color: "default"},
	OrderReturned:         {Label: "Đã hoàn trả", Color: "purple"},
}

// Info returns the display label and color for the status.
// Unknown statuses fall back to the raw value so new backend states
// render instead of breaking.
func (s OrderStatus) Info() StatusInfo {
	if info, ok := statusInfo[s]; ok {
		return info
	}
	return StatusInfo{Label: string(s), Color: "default"}
}

// Terminal reports whether no further shipper transitions exist
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderDeliveredSuccess, OrderDeliveryFailed, OrderCancelled, OrderReturned:
		return true
	}
	return false
}

// Action is a UI action that may be offered for an order
type Action string

const (
	ActionDelete  Action = "delete"   // shop: attempt delete, backend decides
	ActionPickUp  Action = "pickup"   // shipper: mark PICKED_UP
	ActionStart   Action = "start"    // shipper: mark DELIVERING
	ActionDeliver Action = "deliver"  // shipper: report SUCCESS
	ActionFail    Action = "fail"     // shipper: report FAILED with reason
)

// ActionsFor returns the UI actions exposed for a role at a status.
// Admin observes only. The shop delete policy is server-side; the
// client offers the action on any non-terminal order and surfaces
// rejection as-is.
func ActionsFor(role Role, s OrderStatus) []Action {
	if s.Terminal() {
		return nil
	}
	switch role {
	case RoleShop:
		return []Action{ActionDelete}
	case RoleShipper:
		switch s {
		case OrderAssigned:
			return []Action{ActionPickUp}
		case OrderPickedUp:
			return []Action{ActionStart}
		case OrderDelivering:
			return []Action{ActionDeliver, ActionFail}
		}
	}
	return nil
}

// NextStatus returns the intermediate status a shipper action maps to,
// or "" when the action is not a plain status update
func (a Action) NextStatus() OrderStatus {
	switch a {
	case ActionPickUp:
		return OrderPickedUp
	case ActionStart:
		return OrderDelivering
	}
	return ""
}

// FailReasons is the fixed list of delivery failure reasons offered
// to the shipper. Free text may be appended via ComposeFailReason.
var FailReasons = []string{
	"Khách không nghe máy",
	"Khách từ chối nhận",
	"Sai địa chỉ/SĐT",
	"Khách hẹn ngày khác",
}

// ComposeFailReason joins the selected reason code with optional free
// text as "<reason>: <custom>"; without custom text the reason is sent
// exactly as selected.
func ComposeFailReason(reason, custom string) string {
	if custom == "" {
		return reason
	}
	return reason + ": " + custom
}
