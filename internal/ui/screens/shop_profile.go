package screens

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vanchuyen/codctl/internal/domain"
)

// ShopProfileScreen shows and edits the shop's profile and payout
// account
type ShopProfileScreen struct {
	shop domain.ShopService
}

// NewShopProfileScreen creates the profile screen
func NewShopProfileScreen(shop domain.ShopService) *ShopProfileScreen {
	return &ShopProfileScreen{shop: shop}
}

func (s *ShopProfileScreen) Title() string { return "Thông tin cửa hàng" }

func (s *ShopProfileScreen) Render(ctx context.Context, w io.Writer) error {
	profile, err := s.shop.Profile(ctx)
	if err != nil {
		return err
	}

	table := newTable(w)
	fmt.Fprintf(table, "Tên cửa hàng:\t%s\n", profile.ShopName)
	fmt.Fprintf(table, "Mã cửa hàng:\t%s\n", profile.ShopCode)
	fmt.Fprintf(table, "Email:\t%s\n", profile.Email)
	fmt.Fprintf(table, "SĐT:\t%s\n", profile.Phone)
	fmt.Fprintf(table, "Địa chỉ:\t%s\n", profile.Address)
	if bank := profile.BankAccount; bank != nil {
		fmt.Fprintf(table, "Ngân hàng:\t%s\n", bank.BankName)
		fmt.Fprintf(table, "Số tài khoản:\t%s\n", bank.AccountNumber)
		fmt.Fprintf(table, "Chủ tài khoản:\t%s\n", bank.AccountHolder)
	}
	table.Flush()

	fmt.Fprintln(w, "\n  edit   cập nhật thông tin")
	return nil
}

func (s *ShopProfileScreen) Handle(ctx context.Context, args []string, in *bufio.Reader, w io.Writer) (string, bool, error) {
	if args[0] != "edit" {
		return "", false, nil
	}

	current, err := s.shop.Profile(ctx)
	if err != nil {
		return "", true, err
	}

	// Empty input keeps the current value
	updated := *current
	if v := prompt(in, w, fmt.Sprintf("Tên cửa hàng [%s]", current.ShopName)); v != "" {
		updated.ShopName = v
	}
	if v := prompt(in, w, fmt.Sprintf("SĐT [%s]", current.Phone)); v != "" {
		updated.Phone = v
	}
	if v := prompt(in, w, fmt.Sprintf("Địa chỉ [%s]", current.Address)); v != "" {
		updated.Address = v
	}

	bank := domain.BankAccount{}
	if current.BankAccount != nil {
		bank = *current.BankAccount
	}
	if v := prompt(in, w, fmt.Sprintf("Ngân hàng [%s]", bank.BankName)); v != "" {
		bank.BankName = v
	}
	if v := prompt(in, w, fmt.Sprintf("Số tài khoản [%s]", bank.AccountNumber)); v != "" {
		bank.AccountNumber = v
	}
	if v := prompt(in, w, fmt.Sprintf("Chủ tài khoản [%s]", bank.AccountHolder)); v != "" {
		bank.AccountHolder = v
	}
	updated.BankAccount = &bank

	if _, err := s.shop.UpdateProfile(ctx, &updated); err != nil {
		return "", true, err
	}

	fmt.Fprintln(w, "Đã cập nhật thông tin.")
	return "", true, nil
}
