package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vanchuyen/codctl/internal/domain"
)

// ShopSettlementsScreen lists the shop's settlements and lets the shop
// confirm receipt of a transfer. Amounts come from the backend ledger
// untouched.
type ShopSettlementsScreen struct {
	settlements domain.SettlementService
}

// NewShopSettlementsScreen creates the shop settlements screen
func NewShopSettlementsScreen(settlements domain.SettlementService) *ShopSettlementsScreen {
	return &ShopSettlementsScreen{settlements: settlements}
}

func (s *ShopSettlementsScreen) Title() string { return "Đối soát" }

func (s *ShopSettlementsScreen) Render(ctx context.Context, w io.Writer) error {
	page, err := s.settlements.ShopSettlements(ctx)
	if err != nil {
		return err
	}

	renderSettlementTable(w, page.Content)
	fmt.Fprintln(w, "\n  confirm <mã đối soát>   xác nhận đã nhận tiền")
	return nil
}

func (s *ShopSettlementsScreen) Handle(ctx context.Context, args []string, _ *bufio.Reader, w io.Writer) (string, bool, error) {
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
	if err := s.settlements.ConfirmShopSettlement(ctx, id); err != nil {
		return "", true, err
	}

	fmt.Fprintln(w, "Đã xác nhận đối soát.")
	return "", true, nil
}

func (s *ShopSettlementsScreen) findSettlementID(ctx context.Context, code string) (string, error) {
	page, err := s.settlements.ShopSettlements(ctx)
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
