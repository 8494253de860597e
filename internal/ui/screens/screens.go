// Package screens contains the per-role view units. Each screen is an
// independent fetch-and-render unit over the domain services plus a
// command handler for the actions the screen exposes.
package screens

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
)

// Screen is one navigable view. Render draws the screen from a fresh
// fetch; Handle runs one screen command. A non-empty next path asks
// the shell to navigate; handled=false means the command is unknown
// to this screen.
type Screen interface {
	Title() string
	Render(ctx context.Context, w io.Writer) error
	Handle(ctx context.Context, args []string, in *bufio.Reader, w io.Writer) (next string, handled bool, err error)
}

// Registry maps locations to screens
type Registry struct {
	screens map[string]Screen
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{screens: make(map[string]Screen)}
}

// Register binds a screen to a path
func (r *Registry) Register(path string, screen Screen) {
	r.screens[path] = screen
}

// Lookup resolves a path to its screen
func (r *Registry) Lookup(path string) (Screen, bool) {
	screen, ok := r.screens[path]
	return screen, ok
}

// prompt reads one line of input after printing a label
func prompt(in *bufio.Reader, w io.Writer, label string) string {
	fmt.Fprintf(w, "%s: ", label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptFloat reads a number, re-asking on garbage input so a typo is
// a retry, not a lost form
func promptFloat(in *bufio.Reader, w io.Writer, label string) float64 {
	for {
		raw := prompt(in, w, label)
		if raw == "" {
			return 0
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err == nil && value >= 0 {
			return value
		}
		fmt.Fprintln(w, "Giá trị không hợp lệ, nhập lại.")
	}
}

// newTable returns a tabwriter for aligned table output
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// renderOrderTable draws the shared order listing
func renderOrderTable(w io.Writer, orders []domain.Order, withShop bool) {
	table := newTable(w)
	if withShop {
		fmt.Fprintln(table, "MÃ ĐƠN\tSHOP\tSHIPPER\tNGƯỜI NHẬN\tCOD\tPHÍ SHIP\tTHỰC NHẬN\tTRẠNG THÁI")
	} else {
		fmt.Fprintln(table, "MÃ ĐƠN\tSHIPPER\tNGƯỜI NHẬN\tCOD\tPHÍ SHIP\tTHỰC NHẬN\tTRẠNG THÁI")
	}
	for i := range orders {
		o := &orders[i]
		if withShop {
			fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				o.OrderCode, o.ShopName, o.ShipperName, o.ReceiverName,
				ui.FormatMoney(o.CodAmount), ui.FormatMoney(o.ShippingFee),
				ui.FormatMoney(o.Net()), o.Status.Info().Label)
		} else {
			fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				o.OrderCode, o.ShipperName, o.ReceiverName,
				ui.FormatMoney(o.CodAmount), ui.FormatMoney(o.ShippingFee),
				ui.FormatMoney(o.Net()), o.Status.Info().Label)
		}
	}
	table.Flush()
	if len(orders) == 0 {
		fmt.Fprintln(w, "(không có đơn hàng)")
	}
}

// renderSettlementTable draws the shared settlement listing
func renderSettlementTable(w io.Writer, settlements []domain.Settlement) {
	table := newTable(w)
	fmt.Fprintln(table, "MÃ ĐỐI SOÁT\tSHOP\tSHIPPER\tSỐ ĐƠN\tTỔNG COD\tPHÍ SHIP\tCHUYỂN SHOP\tTRẠNG THÁI")
	for i := range settlements {
		s := &settlements[i]
		fmt.Fprintf(table, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			s.SettlementCode, s.ShopName, s.ShipperName, s.TotalOrders,
			ui.FormatMoney(s.TotalCodCollected), ui.FormatMoney(s.TotalShippingFee),
			ui.FormatMoney(s.AmountToTransfer), s.Status)
	}
	table.Flush()
	if len(settlements) == 0 {
		fmt.Fprintln(w, "(không có phiên đối soát)")
	}
}

// renderReport draws the COD report aggregate
func renderReport(w io.Writer, report *domain.CodReport) {
	table := newTable(w)
	fmt.Fprintf(table, "Tổng COD:\t%s\n", ui.FormatMoney(report.TotalCod))
	fmt.Fprintf(table, "Đã nhận:\t%s\n", ui.FormatMoney(report.Received))
	fmt.Fprintf(table, "Tổng phí ship:\t%s\n", ui.FormatMoney(report.TotalFees))
	fmt.Fprintf(table, "Đơn thành công:\t%d\n", report.SuccessfulOrders)
	fmt.Fprintf(table, "Chưa đối soát:\t%s\n", ui.FormatMoney(report.UnsettledNet))
	table.Flush()
}
