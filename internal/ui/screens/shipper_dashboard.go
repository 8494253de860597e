package screens

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
)

// ShipperDashboardScreen shows the shipper aggregate: delivery counts,
// cash in hand and outstanding settlement
type ShipperDashboardScreen struct {
	settlements domain.SettlementService
}

// NewShipperDashboardScreen creates the shipper dashboard
func NewShipperDashboardScreen(settlements domain.SettlementService) *ShipperDashboardScreen {
	return &ShipperDashboardScreen{settlements: settlements}
}

func (s *ShipperDashboardScreen) Title() string { return "Dashboard" }

func (s *ShipperDashboardScreen) Render(ctx context.Context, w io.Writer) error {
	stats, err := s.settlements.ShipperDashboard(ctx)
	if err != nil {
		return err
	}

	table := newTable(w)
	fmt.Fprintf(table, "Tổng đơn hàng:\t%d\n", stats.TotalOrders)
	fmt.Fprintf(table, "Giao hôm nay:\t%d\n", stats.TodayDeliveries)
	fmt.Fprintf(table, "Tiền đang giữ:\t%s\n", ui.FormatMoney(stats.CashInHand))
	fmt.Fprintf(table, "Chờ đối soát:\t%s\n", ui.FormatMoney(stats.PendingSettlement))
	fmt.Fprintf(table, "Đã thu:\t%s\n", ui.FormatMoney(stats.CollectedAmount))
	fmt.Fprintf(table, "Tỷ lệ thành công:\t%s\n", ui.FormatPercent(stats.SuccessRate))
	if stats.ShopDebtToShipper > 0 {
		fmt.Fprintf(table, "Shop nợ phí ship:\t%s\n", ui.FormatMoney(stats.ShopDebtToShipper))
	}
	table.Flush()
	return nil
}

func (s *ShipperDashboardScreen) Handle(context.Context, []string, *bufio.Reader, io.Writer) (string, bool, error) {
	return "", false, nil
}
