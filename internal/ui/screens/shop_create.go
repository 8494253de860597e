package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/ui"
)

// CreateOrderScreen is the shop's order creation form. The financial
// summary (what the shipper collects and what the shop nets) is shown
// before submission; a shipper must be chosen at creation time.
type CreateOrderScreen struct {
	orders domain.OrderService
}

// NewCreateOrderScreen creates the order form screen
func NewCreateOrderScreen(orders domain.OrderService) *CreateOrderScreen {
	return &CreateOrderScreen{orders: orders}
}

func (s *CreateOrderScreen) Title() string { return "Tạo đơn hàng" }

func (s *CreateOrderScreen) Render(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Gõ 'create' để nhập đơn mới, 'back' để quay lại danh sách.")
	return nil
}

func (s *CreateOrderScreen) Handle(ctx context.Context, args []string, in *bufio.Reader, w io.Writer) (string, bool, error) {
	switch args[0] {
	case "back":
		return "/shop/orders", true, nil
	case "create":
		return s.create(ctx, in, w)
	}
	return "", false, nil
}

func (s *CreateOrderScreen) create(ctx context.Context, in *bufio.Reader, w io.Writer) (string, bool, error) {
	shippers, err := s.orders.Shippers(ctx)
	if err != nil {
		return "", true, err
	}
	if len(shippers) == 0 {
		return "", true, errors.New("chưa có shipper nào để gán đơn")
	}

	req := domain.CreateOrderRequest{
		ReceiverName:    prompt(in, w, "Tên người nhận"),
		ReceiverPhone:   prompt(in, w, "SĐT người nhận"),
		ReceiverAddress: prompt(in, w, "Địa chỉ nhận"),
		PickupAddress:   prompt(in, w, "Địa chỉ lấy hàng"),
		ProductName:     prompt(in, w, "Tên sản phẩm"),
		Weight:          promptFloat(in, w, "Khối lượng (kg)"),
		CodAmount:       promptFloat(in, w, "Tiền COD (đ)"),
		ShippingFee:     promptFloat(in, w, "Phí vận chuyển (đ)"),
	}

	fmt.Fprintln(w, "\nChọn shipper:")
	for i, shipper := range shippers {
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, shipper.Name, shipper.Phone)
	}
	choice, err := strconv.Atoi(prompt(in, w, "Số thứ tự shipper"))
	if err != nil || choice < 1 || choice > len(shippers) {
		return "", true, errors.New("lựa chọn shipper không hợp lệ")
	}
	req.ShipperID = shippers[choice-1].ID

	if strings.EqualFold(prompt(in, w, "Cho xem hàng? (y/n)"), "y") {
		req.AllowInspection = domain.InspectionYes
	} else {
		req.AllowInspection = domain.InspectionNo
	}
	req.ShipperNote = prompt(in, w, "Ghi chú cho shipper")
	req.Note = prompt(in, w, "Ghi chú")

	fmt.Fprintln(w)
	RenderFinancialSummary(w, req.CodAmount, req.ShippingFee)

	if !strings.EqualFold(prompt(in, w, "Xác nhận tạo đơn? (y/n)"), "y") {
		fmt.Fprintln(w, "Đã hủy.")
		return "", true, nil
	}

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return "", true, errors.New("thông tin đơn hàng chưa đầy đủ")
		}
		return "", true, err
	}

	fmt.Fprintf(w, "Đã tạo đơn %s.\n", order.OrderCode)
	return "/shop/orders", true, nil
}

// RenderFinancialSummary shows the money flow of an order before it is
// submitted: COD collected from the receiver, the shipping fee, and
// the shop's net receive (codAmount - shippingFee). The net figure is
// display-only and never part of the request.
func RenderFinancialSummary(w io.Writer, codAmount, shippingFee float64) {
	fmt.Fprintln(w, "Tóm tắt tài chính")
	fmt.Fprintf(w, "  Tiền COD (Thu khách): %s\n", ui.FormatMoney(codAmount))
	fmt.Fprintf(w, "  Phí vận chuyển: - %s\n", ui.FormatMoney(shippingFee))
	fmt.Fprintf(w, "  Shipper thu khách: %s\n", ui.FormatMoney(codAmount))
	fmt.Fprintf(w, "  Shop thực nhận: %s\n", ui.FormatMoney(codAmount-shippingFee))
}
