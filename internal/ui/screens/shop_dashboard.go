package screens

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
)

// ShopDashboardScreen shows the shop aggregate plus the two 7-day
// chart series; the three fetches run concurrently and join before
// anything renders
type ShopDashboardScreen struct {
	shop domain.ShopService
}

// NewShopDashboardScreen creates the shop dashboard
func NewShopDashboardScreen(shop domain.ShopService) *ShopDashboardScreen {
	return &ShopDashboardScreen{shop: shop}
}

func (s *ShopDashboardScreen) Title() string { return "Dashboard" }

func (s *ShopDashboardScreen) Render(ctx context.Context, w io.Writer) error {
	var (
		wg         sync.WaitGroup
		stats      *domain.ShopStats
		revenue    []domain.RevenuePoint
		orders     []domain.OrdersPoint
		statsErr   error
		revenueErr error
		ordersErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		stats, statsErr = s.shop.Dashboard(ctx)
	}()
	go func() {
		defer wg.Done()
		revenue, revenueErr = s.shop.Revenue7Days(ctx)
	}()
	go func() {
		defer wg.Done()
		orders, ordersErr = s.shop.Orders7Days(ctx)
	}()
	wg.Wait()

	if statsErr != nil {
		return statsErr
	}

	table := newTable(w)
	fmt.Fprintf(table, "Tổng đơn hàng:\t%d\n", stats.TotalOrders)
	fmt.Fprintf(table, "Tổng tiền COD:\t%s\n", ui.FormatMoney(stats.TotalCodAmount))
	fmt.Fprintf(table, "Đã thu:\t%s\n", ui.FormatMoney(stats.CollectedAmount))
	fmt.Fprintf(table, "Chờ thu:\t%s\n", ui.FormatMoney(stats.PendingAmount))
	fmt.Fprintf(table, "Thất bại:\t%s\n", ui.FormatMoney(stats.FailedAmount))
	fmt.Fprintf(table, "Shipper đang giữ:\t%s\n", ui.FormatMoney(stats.ShipperDebt))
	fmt.Fprintf(table, "Tỷ lệ thành công:\t%s\n", ui.FormatPercent(stats.SuccessRate))
	fmt.Fprintf(table, "Đơn hôm nay:\t%d\n", stats.TodayOrders)
	fmt.Fprintf(table, "Doanh thu hôm nay:\t%s\n", ui.FormatMoney(stats.TodayRevenue))
	fmt.Fprintf(table, "Chờ đối soát:\t%s\n", ui.FormatMoney(stats.PendingReceivable))
	table.Flush()

	// The chart series are secondary; a failed series degrades to an
	// empty section instead of blanking the whole dashboard
	if revenueErr == nil && len(revenue) > 0 {
		fmt.Fprintln(w, "\nDoanh thu 7 ngày:")
		series := newTable(w)
		for _, point := range revenue {
			fmt.Fprintf(series, "  %s\t%s\n", point.Date, ui.FormatMoney(point.Revenue))
		}
		series.Flush()
	}
	if ordersErr == nil && len(orders) > 0 {
		fmt.Fprintln(w, "\nĐơn hàng 7 ngày:")
		series := newTable(w)
		for _, point := range orders {
			fmt.Fprintf(series, "  %s\t%d đơn\n", point.Date, point.TotalOrders)
		}
		series.Flush()
	}

	return nil
}

func (s *ShopDashboardScreen) Handle(context.Context, []string, *bufio.Reader, io.Writer) (string, bool, error) {
	return "", false, nil
}
