package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vanchuyen/codctl/internal/domain"
)

// ShipperDeliveriesScreen lists the shipper's active orders and hosts
// the transition actions: pickup and start as plain status updates,
// deliver/fail as the terminal outcome report. A failure requires a
// reason from the fixed list, optionally extended with free text.
type ShipperDeliveriesScreen struct {
	orders domain.OrderService
}

// NewShipperDeliveriesScreen creates the deliveries screen
func NewShipperDeliveriesScreen(orders domain.OrderService) *ShipperDeliveriesScreen {
	return &ShipperDeliveriesScreen{orders: orders}
}

func (s *ShipperDeliveriesScreen) Title() string { return "Đơn cần giao" }

var activeStatuses = []domain.OrderStatus{
	domain.OrderAssigned, domain.OrderPickedUp, domain.OrderDelivering,
}

func (s *ShipperDeliveriesScreen) Render(ctx context.Context, w io.Writer) error {
	page, err := s.orders.ShipperOrders(ctx, activeStatuses)
	if err != nil {
		return err
	}

	table := newTable(w)
	fmt.Fprintln(table, "MÃ ĐƠN\tNGƯỜI NHẬN\tSĐT\tĐỊA CHỈ\tCOD\tTRẠNG THÁI\tTHAO TÁC")
	for i := range page.Content {
		o := &page.Content[i]
		actions := ""
		for _, action := range domain.ActionsFor(domain.RoleShipper, o.Status) {
			if actions != "" {
				actions += ", "
			}
			actions += string(action)
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%.0f\t%s\t%s\n",
			o.OrderCode, o.ReceiverName, o.ReceiverPhone, o.ReceiverAddress,
			o.CodAmount, o.Status.Info().Label, actions)
	}
	table.Flush()
	if len(page.Content) == 0 {
		fmt.Fprintln(w, "(không có đơn cần giao)")
	}

	fmt.Fprintln(w, "\n  pickup <mã đơn>    đã lấy hàng")
	fmt.Fprintln(w, "  start <mã đơn>     bắt đầu giao")
	fmt.Fprintln(w, "  deliver <mã đơn>   giao thành công")
	fmt.Fprintln(w, "  fail <mã đơn>      báo cáo thất bại")
	return nil
}

func (s *ShipperDeliveriesScreen) Handle(ctx context.Context, args []string, in *bufio.Reader, w io.Writer) (string, bool, error) {
	action := domain.Action(args[0])
	switch action {
	case domain.ActionPickUp, domain.ActionStart, domain.ActionDeliver, domain.ActionFail:
	default:
		return "", false, nil
	}
	if len(args) < 2 {
		return "", true, fmt.Errorf("cách dùng: %s <mã đơn>", action)
	}

	order, err := s.findOrder(ctx, args[1])
	if err != nil {
		return "", true, err
	}

	switch action {
	case domain.ActionPickUp, domain.ActionStart:
		updated, err := s.orders.UpdateStatus(ctx, order.ID, action.NextStatus())
		if err != nil {
			return "", true, err
		}
		fmt.Fprintf(w, "Đơn %s: %s\n", updated.OrderCode, updated.Status.Info().Label)

	case domain.ActionDeliver:
		updated, err := s.orders.Deliver(ctx, order.ID, domain.DeliverySuccess, "")
		if err != nil {
			return "", true, err
		}
		fmt.Fprintf(w, "Đơn %s: %s\n", updated.OrderCode, updated.Status.Info().Label)

	case domain.ActionFail:
		reason, err := s.promptFailReason(in, w)
		if err != nil {
			return "", true, err
		}
		updated, err := s.orders.Deliver(ctx, order.ID, domain.DeliveryFailed, reason)
		if err != nil {
			return "", true, err
		}
		fmt.Fprintf(w, "Đơn %s: %s (%s)\n", updated.OrderCode, updated.Status.Info().Label, reason)
	}

	return "", true, nil
}

// promptFailReason asks for one of the fixed reasons plus optional
// free text, composing them as "<reason>: <custom>"
func (s *ShipperDeliveriesScreen) promptFailReason(in *bufio.Reader, w io.Writer) (string, error) {
	fmt.Fprintln(w, "Báo cáo thất bại - vui lòng chọn lý do:")
	for i, reason := range domain.FailReasons {
		fmt.Fprintf(w, "  %d. %s\n", i+1, reason)
	}

	choice, err := strconv.Atoi(prompt(in, w, "Lý do"))
	if err != nil || choice < 1 || choice > len(domain.FailReasons) {
		return "", errors.New("vui lòng chọn lý do")
	}

	custom := prompt(in, w, "Ghi chú thêm (không bắt buộc)")
	return domain.ComposeFailReason(domain.FailReasons[choice-1], custom), nil
}

func (s *ShipperDeliveriesScreen) findOrder(ctx context.Context, code string) (*domain.Order, error) {
	page, err := s.orders.ShipperOrders(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range page.Content {
		if page.Content[i].OrderCode == code || page.Content[i].ID == code {
			return &page.Content[i], nil
		}
	}
	return nil, fmt.Errorf("không tìm thấy đơn hàng %q", code)
}
