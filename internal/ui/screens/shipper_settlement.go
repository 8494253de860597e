package screens

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
)

// ShipperSettlementScreen shows the shipper's outstanding remittance
// (collected COD minus earned fees, as the backend ledger computes it)
// and lets the shipper open a settlement request
type ShipperSettlementScreen struct {
	settlements domain.SettlementService
}

// NewShipperSettlementScreen creates the shipper settlement screen
func NewShipperSettlementScreen(settlements domain.SettlementService) *ShipperSettlementScreen {
	return &ShipperSettlementScreen{settlements: settlements}
}

func (s *ShipperSettlementScreen) Title() string { return "Đối soát" }

func (s *ShipperSettlementScreen) Render(ctx context.Context, w io.Writer) error {
	summary, err := s.settlements.ShipperSummary(ctx)
	if err != nil {
		return err
	}

	table := newTable(w)
	fmt.Fprintf(table, "COD đã thu:\t%s\n", ui.FormatMoney(summary.TotalCod))
	fmt.Fprintf(table, "Phí ship được nhận:\t%s\n", ui.FormatMoney(summary.TotalFees))
	fmt.Fprintf(table, "Số tiền phải nộp:\t%s\n", ui.FormatMoney(summary.NetAmount))
	table.Flush()

	fmt.Fprintln(w, "\n  request   gửi yêu cầu đối soát")
	return nil
}

func (s *ShipperSettlementScreen) Handle(ctx context.Context, args []string, in *bufio.Reader, w io.Writer) (string, bool, error) {
	if args[0] != "request" {
		return "", false, nil
	}

	note := prompt(in, w, "Ghi chú (không bắt buộc)")
	if !strings.EqualFold(prompt(in, w, "Gửi yêu cầu đối soát? (y/n)"), "y") {
		fmt.Fprintln(w, "Đã hủy.")
		return "", true, nil
	}

	if err := s.settlements.RequestSettlement(ctx, note); err != nil {
		return "", true, err
	}

	fmt.Fprintln(w, "Đã gửi yêu cầu đối soát.")
	return "", true, nil
}
