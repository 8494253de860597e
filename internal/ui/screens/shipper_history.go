package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
)

// ShipperHistoryScreen lists the shipper's finished orders: delivered,
// failed, cancelled and returned. An optional date range narrows the
// listing by completion time.
type ShipperHistoryScreen struct {
	orders    domain.OrderService
	startDate string
	endDate   string
}

// NewShipperHistoryScreen creates the history screen
func NewShipperHistoryScreen(orders domain.OrderService) *ShipperHistoryScreen {
	return &ShipperHistoryScreen{orders: orders}
}

func (s *ShipperHistoryScreen) Title() string { return "Lịch sử giao hàng" }

var finishedStatuses = []domain.OrderStatus{
	domain.OrderDeliveredSuccess, domain.OrderDeliveryFailed,
	domain.OrderCancelled, domain.OrderReturned,
}

func (s *ShipperHistoryScreen) Render(ctx context.Context, w io.Writer) error {
	page, err := s.orders.ShipperOrders(ctx, finishedStatuses)
	if err != nil {
		return err
	}

	if s.startDate != "" || s.endDate != "" {
		fmt.Fprintf(w, "Khoảng thời gian: %s → %s\n", s.startDate, s.endDate)
	}

	shown := 0
	table := newTable(w)
	fmt.Fprintln(table, "MÃ ĐƠN\tNGƯỜI NHẬN\tCOD\tTRẠNG THÁI\tTHỜI GIAN\tLÝ DO")
	for i := range page.Content {
		o := &page.Content[i]
		finished := o.DeliveredAt
		if finished == nil {
			finished = o.FailedAt
		}
		if !s.inRange(finished) {
			continue
		}
		shown++

		when := "-"
		if finished != nil {
			when = ui.FormatDate(*finished)
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.OrderCode, o.ReceiverName, ui.FormatMoney(o.CodAmount),
			o.Status.Info().Label, when, o.FailReason)
	}
	table.Flush()
	if shown == 0 {
		fmt.Fprintln(w, "(chưa có đơn hoàn thành)")
	}

	fmt.Fprintln(w, "\n  range <từ ngày> <đến ngày>   lọc theo ngày (YYYY-MM-DD), range all để bỏ lọc")
	return nil
}

// inRange keeps an order whose completion date falls inside the
// configured bounds; orders without a completion time pass only when
// no range is set
func (s *ShipperHistoryScreen) inRange(finished *time.Time) bool {
	if s.startDate == "" && s.endDate == "" {
		return true
	}
	if finished == nil {
		return false
	}
	day := finished.Format("2006-01-02")
	if s.startDate != "" && day < s.startDate {
		return false
	}
	if s.endDate != "" && day > s.endDate {
		return false
	}
	return true
}

func (s *ShipperHistoryScreen) Handle(_ context.Context, args []string, _ *bufio.Reader, _ io.Writer) (string, bool, error) {
	if args[0] != "range" {
		return "", false, nil
	}
	if len(args) >= 2 && strings.EqualFold(args[1], "all") {
		s.startDate, s.endDate = "", ""
		return "", true, nil
	}
	if len(args) < 3 {
		return "", true, errors.New("cách dùng: range <từ ngày> <đến ngày> | range all")
	}
	s.startDate, s.endDate = args[1], args[2]
	return "", true, nil
}
