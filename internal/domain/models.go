package domain

import "time"

// Role represents a user role in the COD platform
type Role string

const (
	RoleShop    Role = "SHOP"
	RoleShipper Role = "SHIPPER"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether the role is one of the three known roles
func (r Role) Valid() bool {
	return r == RoleShop || r == RoleShipper || r == RoleAdmin
}

// User represents the authenticated account; immutable for the session lifetime
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session holds the credentials persisted between runs.
// Token and user are written and cleared together; a token without
// a user is treated as no session at all.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// AccountStatus represents shop/shipper account state managed by admin
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)

// Inspection flag on an order
const (
	InspectionYes = "YES"
	InspectionNo  = "NO"
)

// Order mirrors the backend order resource. NetAmount is derived for
// display (codAmount - shippingFee) when the backend omits it and is
// never sent back as authoritative input.
type Order struct {
	ID              string      `json:"id"`
	OrderCode       string      `json:"orderCode"`
	ShopID          string      `json:"shopId,omitempty"`
	ShopName        string      `json:"shopName,omitempty"`
	ShipperID       string      `json:"shipperId,omitempty"`
	ShipperName     string      `json:"shipperName,omitempty"`
	ShipperPhone    string      `json:"shipperPhone,omitempty"`
	ReceiverName    string      `json:"receiverName"`
	ReceiverPhone   string      `json:"receiverPhone"`
	ReceiverAddress string      `json:"receiverAddress"`
	PickupAddress   string      `json:"pickupAddress"`
	ProductName     string      `json:"productName"`
	Weight          float64     `json:"weight,omitempty"`
	CodAmount       float64     `json:"codAmount"`
	ShippingFee     float64     `json:"shippingFee"`
	NetAmount       *float64    `json:"netAmount,omitempty"`
	Status          OrderStatus `json:"status"`
	Note            string      `json:"note,omitempty"`
	ShipperNote     string      `json:"shipperNote,omitempty"`
	AllowInspection string      `json:"allowInspection,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt,omitempty"`
	DeliveredAt     *time.Time  `json:"deliveredAt,omitempty"`
	FailedAt        *time.Time  `json:"failedAt,omitempty"`
	FailReason      string      `json:"failReason,omitempty"`
}

// Net returns the displayable net amount, deriving codAmount - shippingFee
// when the backend did not supply one
func (o *Order) Net() float64 {
	if o.NetAmount != nil {
		return *o.NetAmount
	}
	return o.CodAmount - o.ShippingFee
}

// CreateOrderRequest is the payload for POST /shop/orders.
// A shipper must be assigned at creation time.
type CreateOrderRequest struct {
	ReceiverName    string  `json:"receiverName"`
	ReceiverPhone   string  `json:"receiverPhone"`
	ReceiverAddress string  `json:"receiverAddress"`
	PickupAddress   string  `json:"pickupAddress"`
	ProductName     string  `json:"productName"`
	Weight          float64 `json:"weight"`
	CodAmount       float64 `json:"codAmount"`
	ShippingFee     float64 `json:"shippingFee"`
	ShipperID       string  `json:"shipperId"`
	ShipperNote     string  `json:"shipperNote,omitempty"`
	AllowInspection string  `json:"allowInspection"`
	Note            string  `json:"note,omitempty"`
}

// RegisterRequest is the payload for POST /auth/register.
// Only SHOP and SHIPPER accounts self-register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
}

// SettlementStatus represents settlement lifecycle state
type SettlementStatus string

const (
	SettlementPending     SettlementStatus = "PENDING"
	SettlementCalculated  SettlementStatus = "CALCULATED"
	SettlementTransferred SettlementStatus = "TRANSFERRED"
	SettlementConfirmed   SettlementStatus = "CONFIRMED"
	SettlementDisputed    SettlementStatus = "DISPUTED"
)

// Settlement is a backend-computed reconciliation of COD funds between
// one shipper and one shop. The client only toggles status via confirm
// actions; all amounts are backend-owned.
type Settlement struct {
	ID                string           `json:"id"`
	SettlementCode    string           `json:"settlementCode"`
	ShopID            string           `json:"shopId,omitempty"`
	ShopName          string           `json:"shopName,omitempty"`
	ShipperID         string           `json:"shipperId,omitempty"`
	ShipperName       string           `json:"shipperName,omitempty"`
	TotalOrders       int              `json:"totalOrders"`
	SuccessfulOrders  int              `json:"successfulOrders"`
	FailedOrders      int              `json:"failedOrders"`
	TotalCodCollected float64          `json:"totalCodCollected"`
	TotalShippingFee  float64          `json:"totalShippingFee"`
	AmountToTransfer  float64          `json:"amountToTransfer"`
	Status            SettlementStatus `json:"status"`
	SettlementDate    string           `json:"settlementDate,omitempty"`
	TransferredAt     *time.Time       `json:"transferredAt,omitempty"`
	ConfirmedAt       *time.Time       `json:"confirmedAt,omitempty"`
	Note              string           `json:"note,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// ShipperSettlementSummary is the shipper's outstanding remittance view:
// netAmount = totalCod - totalFees as computed by the backend ledger.
type ShipperSettlementSummary struct {
	TotalCod  float64 `json:"totalCod"`
	TotalFees float64 `json:"totalFees"`
	NetAmount float64 `json:"netAmount"`
}

// Notification is a polled server-side notification
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Shipper is a shipper account as listed for assignment or admin review
type Shipper struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Phone  string        `json:"phone"`
	Email  string        `json:"email,omitempty"`
	Status AccountStatus `json:"status,omitempty"`
}

// Shop is a shop account as listed for admin review
type Shop struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	ShopCode string        `json:"shopCode,omitempty"`
	Phone    string        `json:"phone,omitempty"`
	Email    string        `json:"email,omitempty"`
	Status   AccountStatus `json:"status,omitempty"`
}

// BankAccount is the shop's payout account details
type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	Branch        string `json:"branch,omitempty"`
}

// ShopProfile is the shop's own profile resource
type ShopProfile struct {
	ShopName    string       `json:"shopName"`
	ShopCode    string       `json:"shopCode,omitempty"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Address     string       `json:"address"`
	CreatedAt   string       `json:"createdAt,omitempty"`
	BankAccount *BankAccount `json:"bankAccount,omitempty"`
}

// ShopStats is the shop dashboard aggregate; read-only view model
type ShopStats struct {
	TotalOrders        int64   `json:"totalOrders"`
	TotalCodAmount     float64 `json:"totalCodAmount"`
	CollectedAmount    float64 `json:"collectedAmount"`
	PendingAmount      float64 `json:"pendingAmount"`
	FailedAmount       float64 `json:"failedAmount"`
	ShipperDebt        float64 `json:"shipperDebt"`
	SuccessRate        float64 `json:"successRate"`
	TodayOrders        int     `json:"todayOrders"`
	TodayRevenue       float64 `json:"todayRevenue"`
	PendingReceivable  float64 `json:"pendingReceivable"`
	OverdueSettlements int     `json:"overdueSettlements"`
	PendingPayable     float64 `json:"pendingPayable,omitempty"`
}

// ShipperStats is the shipper dashboard aggregate
type ShipperStats struct {
	TotalOrders       int64   `json:"totalOrders"`
	TotalCodAmount    float64 `json:"totalCodAmount"`
	CollectedAmount   float64 `json:"collectedAmount"`
	PendingAmount     float64 `json:"pendingAmount"`
	FailedAmount      float64 `json:"failedAmount"`
	ShipperDebt       float64 `json:"shipperDebt"`
	SuccessRate       float64 `json:"successRate"`
	TodayOrders       int     `json:"todayOrders"`
	TodayRevenue      float64 `json:"todayRevenue"`
	CashInHand        float64 `json:"cashInHand"`
	PendingSettlement float64 `json:"pendingSettlement"`
	TodayDeliveries   int     `json:"todayDeliveries"`
	ShopDebtToShipper float64 `json:"shopDebtToShipper,omitempty"`
}

// AdminStats is the admin dashboard aggregate
type AdminStats struct {
	TotalShops         int64   `json:"totalShops"`
	TotalShippers      int64   `json:"totalShippers"`
	TotalOrders        int64   `json:"totalOrders"`
	TotalCodVolume     float64 `json:"totalCodVolume"`
	ActiveOrders       int     `json:"activeOrders"`
	PendingSettlements int     `json:"pendingSettlements"`
	SystemRevenue      float64 `json:"systemRevenue"`
	FraudAlerts        int     `json:"fraudAlerts"`
}

// RevenuePoint is one day of the revenue-7-days series
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// OrdersPoint is one day of the orders-7-days series
type OrdersPoint struct {
	Date        string `json:"date"`
	TotalOrders int    `json:"totalOrders"`
}

// CodReport is the COD financial report aggregate for a date range
type CodReport struct {
	TotalCod         float64 `json:"totalCod"`
	Received         float64 `json:"received"`
	TotalFees        float64 `json:"totalFees"`
	SuccessfulOrders int64   `json:"successfulOrders"`
	UnsettledNet     float64 `json:"unsettledNet"`
}

// DeliveryResult is the outcome reported by a shipper for one order
type DeliveryResult string

const (
	DeliverySuccess DeliveryResult = "SUCCESS"
	DeliveryFailed  DeliveryResult = "FAILED"
)
