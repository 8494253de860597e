package domain

import "context"

// SessionStore defines the durable session operations. Read, write and
// clear are the only three; everything else derives from them.
type SessionStore interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

// AuthService defines authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, req RegisterRequest) (*Session, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// OrderService defines shop and shipper order operations
type OrderService interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
	ShopOrders(ctx context.Context) (*Page[Order], error)
	DeleteOrder(ctx context.Context, orderID string) error
	Shippers(ctx context.Context) ([]Shipper, error)
	ShipperOrders(ctx context.Context, statuses []OrderStatus) (*Page[Order], error)
	UpdateStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)
	Deliver(ctx context.Context, orderID string, result DeliveryResult, reason string) (*Order, error)
}

// ShopService defines shop profile, dashboard and report operations
type ShopService interface {
	Profile(ctx context.Context) (*ShopProfile, error)
	UpdateProfile(ctx context.Context, profile *ShopProfile) (*ShopProfile, error)
	Dashboard(ctx context.Context) (*ShopStats, error)
	Revenue7Days(ctx context.Context) ([]RevenuePoint, error)
	Orders7Days(ctx context.Context) ([]OrdersPoint, error)
	CodReport(ctx context.Context, startDate, endDate string) (*CodReport, error)
	ExportCodReport(ctx context.Context, format, startDate, endDate string) (string, error)
}

// SettlementService defines shop and shipper settlement operations
type SettlementService interface {
	ShopSettlements(ctx context.Context) (*Page[Settlement], error)
	ConfirmShopSettlement(ctx context.Context, settlementID string) error
	ShipperDashboard(ctx context.Context) (*ShipperStats, error)
	ShipperSummary(ctx context.Context) (*ShipperSettlementSummary, error)
	RequestSettlement(ctx context.Context, note string) error
}

// AdminService defines admin oversight operations
type AdminService interface {
	Dashboard(ctx context.Context) (*AdminStats, error)
	Shops(ctx context.Context) ([]Shop, error)
	UpdateShopStatus(ctx context.Context, shopID string, status AccountStatus) error
	Shippers(ctx context.Context) ([]Shipper, error)
	UpdateShipperStatus(ctx context.Context, shipperID string, status AccountStatus) error
	Orders(ctx context.Context) (*Page[Order], error)
	Settlements(ctx context.Context) (*Page[Settlement], error)
	ConfirmSettlement(ctx context.Context, settlementID string) error
	CodReport(ctx context.Context, startDate, endDate string) (*CodReport, error)
	ExportCodReport(ctx context.Context, format, startDate, endDate string) (string, error)
}

// NotificationService defines notification operations; delivery is
// polled, never pushed
type NotificationService interface {
	List(ctx context.Context) ([]Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
}
