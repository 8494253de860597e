package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vanchuyen/codctl/internal/domain"
)

// ShopOrdersScreen lists the shop's orders and offers delete plus a
// shortcut to the create form. Whether a delete is legal for the
// order's status is decided server-side; the screen attempts and
// shows the verdict.
type ShopOrdersScreen struct {
	orders domain.OrderService
	filter domain.OrderStatus
}

// NewShopOrdersScreen creates the shop order management screen
func NewShopOrdersScreen(orders domain.OrderService) *ShopOrdersScreen {
	return &ShopOrdersScreen{orders: orders}
}

func (s *ShopOrdersScreen) Title() string { return "Quản lý đơn hàng" }

func (s *ShopOrdersScreen) Render(ctx context.Context, w io.Writer) error {
	page, err := s.orders.ShopOrders(ctx)
	if err != nil {
		return err
	}

	orders := page.Content
	if s.filter != "" {
		filtered := orders[:0:0]
		for _, o := range orders {
			if o.Status == s.filter {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
		fmt.Fprintf(w, "Lọc theo trạng thái: %s\n", s.filter.Info().Label)
	}

	renderOrderTable(w, orders, false)
	fmt.Fprintln(w, "\n  new                  tạo đơn mới")
	fmt.Fprintln(w, "  delete <mã đơn>      xóa đơn (nếu trạng thái cho phép)")
	fmt.Fprintln(w, "  filter <trạng thái>  lọc (vd. filter DELIVERING, filter all)")
	return nil
}

func (s *ShopOrdersScreen) Handle(ctx context.Context, args []string, _ *bufio.Reader, w io.Writer) (string, bool, error) {
	switch args[0] {
	case "new":
		return "/shop/orders/new", true, nil

	case "delete":
		if len(args) < 2 {
			return "", true, errors.New("cách dùng: delete <mã đơn>")
		}
		id, err := s.findOrderID(ctx, args[1])
		if err != nil {
			return "", true, err
		}
		if err := s.orders.DeleteOrder(ctx, id); err != nil {
			return "", true, err
		}
		fmt.Fprintln(w, "Đã xóa đơn hàng.")
		return "", true, nil

	case "filter":
		if len(args) < 2 {
			return "", true, errors.New("cách dùng: filter <trạng thái> | filter all")
		}
		if strings.EqualFold(args[1], "all") {
			s.filter = ""
		} else {
			s.filter = domain.OrderStatus(strings.ToUpper(args[1]))
		}
		return "", true, nil
	}

	return "", false, nil
}

// findOrderID resolves an order code (or raw id) to the backend id
func (s *ShopOrdersScreen) findOrderID(ctx context.Context, code string) (string, error) {
	page, err := s.orders.ShopOrders(ctx)
	if err != nil {
		return "", err
	}
	for i := range page.Content {
		if page.Content[i].OrderCode == code || page.Content[i].ID == code {
			return page.Content[i].ID, nil
		}
	}
	return "", fmt.Errorf("không tìm thấy đơn hàng %q", code)
}
