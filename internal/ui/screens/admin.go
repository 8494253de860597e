package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
)

// AdminDashboardScreen shows the platform-wide aggregate
type AdminDashboardScreen struct {
	admin domain.AdminService
}

// NewAdminDashboardScreen creates the admin dashboard
func NewAdminDashboardScreen(admin domain.AdminService) *AdminDashboardScreen {
	return &AdminDashboardScreen{admin: admin}
}

func (s *AdminDashboardScreen) Title() string { return "Dashboard" }

func (s *AdminDashboardScreen) Render(ctx context.Context, w io.Writer) error {
	stats, err := s.admin.Dashboard(ctx)
	if err != nil {
		return err
	}

	table := newTable(w)
	fmt.Fprintf(table, "Tổng shop:\t%d\n", stats.TotalShops)
	fmt.Fprintf(table, "Tổng shipper:\t%d\n", stats.TotalShippers)
	fmt.Fprintf(table, "Tổng đơn hàng:\t%d\n", stats.TotalOrders)
	fmt.Fprintf(table, "Tổng COD:\t%s\n", ui.FormatMoney(stats.TotalCodVolume))
	fmt.Fprintf(table, "Đơn đang xử lý:\t%d\n", stats.ActiveOrders)
	fmt.Fprintf(table, "Đối soát chờ xử lý:\t%d\n", stats.PendingSettlements)
	fmt.Fprintf(table, "Doanh thu hệ thống:\t%s\n", ui.FormatMoney(stats.SystemRevenue))
	fmt.Fprintf(table, "Cảnh báo gian lận:\t%d\n", stats.FraudAlerts)
	table.Flush()
	return nil
}

func (s *AdminDashboardScreen) Handle(context.Context, []string, *bufio.Reader, io.Writer) (string, bool, error) {
	return "", false, nil
}

// AdminShopsScreen lists shops with suspend/activate actions
type AdminShopsScreen struct {
	admin domain.AdminService
}

// NewAdminShopsScreen creates the shop management screen
func NewAdminShopsScreen(admin domain.AdminService) *AdminShopsScreen {
	return &AdminShopsScreen{admin: admin}
}

func (s *AdminShopsScreen) Title() string { return "Quản lý shop" }

func (s *AdminShopsScreen) Render(ctx context.Context, w io.Writer) error {
	shops, err := s.admin.Shops(ctx)
	if err != nil {
		return err
	}

	table := newTable(w)
	fmt.Fprintln(table, "ID\tTÊN SHOP\tEMAIL\tSĐT\tTRẠNG THÁI")
	for _, shop := range shops {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n", shop.ID, shop.Name, shop.Email, shop.Phone, shop.Status)
	}
	table.Flush()
	if len(shops) == 0 {
		fmt.Fprintln(w, "(chưa có shop)")
	}

	fmt.Fprintln(w, "\n  suspend <id> | activate <id>")
	return nil
}

func (s *AdminShopsScreen) Handle(ctx context.Context, args []string, _ *bufio.Reader, w io.Writer) (string, bool, error) {
	status, ok := accountAction(args[0])
	if !ok {
		return "", false, nil
	}
	if len(args) < 2 {
		return "", true, fmt.Errorf("cách dùng: %s <id>", args[0])
	}

	if err := s.admin.UpdateShopStatus(ctx, args[1], status); err != nil {
		return "", true, err
	}
	fmt.Fprintln(w, "Đã cập nhật trạng thái shop.")
	return "", true, nil
}

// AdminShippersScreen lists shippers with suspend/activate actions
type AdminShippersScreen struct {
	admin domain.AdminService
}

// NewAdminShippersScreen creates the shipper management screen
func NewAdminShippersScreen(admin domain.AdminService) *AdminShippersScreen {
	return &AdminShippersScreen{admin: admin}
}

func (s *AdminShippersScreen) Title() string { return "Quản lý shipper" }

func (s *AdminShippersScreen) Render(ctx context.Context, w io.Writer) error {
	shippers, err := s.admin.Shippers(ctx)
	if err != nil {
		return err
	}

	table := newTable(w)
	fmt.Fprintln(table, "ID\tTÊN\tEMAIL\tSĐT\tTRẠNG THÁI")
	for _, shipper := range shippers {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n", shipper.ID, shipper.Name, shipper.Email, shipper.Phone, shipper.Status)
	}
	table.Flush()
	if len(shippers) == 0 {
		fmt.Fprintln(w, "(chưa có shipper)")
	}

	fmt.Fprintln(w, "\n  suspend <id> | activate <id>")
	return nil
}

func (s *AdminShippersScreen) Handle(ctx context.Context, args []string, _ *bufio.Reader, w io.Writer) (string, bool, error) {
	status, ok := accountAction(args[0])
	if !ok {
		return "", false, nil
	}
	if len(args) < 2 {
		return "", true, fmt.Errorf("cách dùng: %s <id>", args[0])
	}

	if err := s.admin.UpdateShipperStatus(ctx, args[1], status); err != nil {
		return "", true, err
	}
	fmt.Fprintln(w, "Đã cập nhật trạng thái shipper.")
	return "", true, nil
}

func accountAction(cmd string) (domain.AccountStatus, bool) {
	switch cmd {
	case "suspend":
		return domain.AccountSuspended, true
	case "activate":
		return domain.AccountActive, true
	}
	return "", false
}

// AdminOrdersScreen is the read-only order observer; admin has no
// transition actions
type AdminOrdersScreen struct {
	admin domain.AdminService
}

// NewAdminOrdersScreen creates the admin order screen
func NewAdminOrdersScreen(admin domain.AdminService) *AdminOrdersScreen {
	return &AdminOrdersScreen{admin: admin}
}

func (s *AdminOrdersScreen) Title() string { return "Tất cả đơn hàng" }

func (s *AdminOrdersScreen) Render(ctx context.Context, w io.Writer) error {
	page, err := s.admin.Orders(ctx)
	if err != nil {
		return err
	}
	renderOrderTable(w, page.Content, true)
	return nil
}

func (s *AdminOrdersScreen) Handle(context.Context, []string, *bufio.Reader, io.Writer) (string, bool, error) {
	return "", false, nil
}

// AdminSettlementsScreen lists all settlements and confirms shipper
// remittances
type AdminSettlementsScreen struct {
	admin domain.AdminService
}

// NewAdminSettlementsScreen creates the admin settlement screen
func NewAdminSettlementsScreen(admin domain.AdminService) *AdminSettlementsScreen {
	return &AdminSettlementsScreen{admin: admin}
}

func (s *AdminSettlementsScreen) Title() string { return "Đối soát toàn hệ thống" }

func (s *AdminSettlementsScreen) Render(ctx context.Context, w io.Writer) error {
	page, err := s.admin.Settlements(ctx)
	if err != nil {
		return err
	}

	renderSettlementTable(w, page.Content)
	fmt.Fprintln(w, "\n  confirm <mã đối soát>   xác nhận đã nhận tiền từ shipper")
	return nil
}

func (s *AdminSettlementsScreen) Handle(ctx context.Context, args []string, _ *bufio.Reader, w io.Writer) (string, bool, error) {
	if args[0] != "confirm" {
		return "", false, nil
	}
	if len(args) < 2 {
		return "", true, errors.New("cách dùng: confirm <mã đối soát>")
	}

	id, err := s.findSettlementID(ctx, args[1])
	if err != nil {
		return "", true, err
	}
	if err := s.admin.ConfirmSettlement(ctx, id); err != nil {
		return "", true, err
	}
	fmt.Fprintln(w, "Đã xác nhận đối soát.")
	return "", true, nil
}

func (s *AdminSettlementsScreen) findSettlementID(ctx context.Context, code string) (string, error) {
	page, err := s.admin.Settlements(ctx)
	if err != nil {
		return "", err
	}
	for i := range page.Content {
		if page.Content[i].SettlementCode == code || page.Content[i].ID == code {
			return page.Content[i].ID, nil
		}
	}
	return "", fmt.Errorf("không tìm thấy phiên đối soát %q", code)
}
