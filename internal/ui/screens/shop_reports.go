package screens

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vanchuyen/codctl/internal/domain"
)

// reportExporter is the slice of ShopService/AdminService the report
// screens need; both services satisfy it
type reportExporter interface {
	CodReport(ctx context.Context, startDate, endDate string) (*domain.CodReport, error)
	ExportCodReport(ctx context.Context, format, startDate, endDate string) (string, error)
}

// ReportScreen shows the COD financial report for a date range and
// exports it to Excel or PDF. Shared between the shop and admin
// report routes; only the backing service differs.
type ReportScreen struct {
	title     string
	reports   reportExporter
	startDate string
	endDate   string
}

// NewReportScreen creates a report screen over the given exporter
func NewReportScreen(title string, reports reportExporter) *ReportScreen {
	return &ReportScreen{title: title, reports: reports}
}

func (s *ReportScreen) Title() string { return s.title }

func (s *ReportScreen) Render(ctx context.Context, w io.Writer) error {
	report, err := s.reports.CodReport(ctx, s.startDate, s.endDate)
	if err != nil {
		return err
	}

	if s.startDate != "" || s.endDate != "" {
		fmt.Fprintf(w, "Khoảng thời gian: %s → %s\n", orDefault(s.startDate), orDefault(s.endDate))
	}
	renderReport(w, report)
	fmt.Fprintln(w, "\n  range <từ ngày> <đến ngày>   lọc theo ngày (YYYY-MM-DD)")
	fmt.Fprintln(w, "  export excel | export pdf    xuất báo cáo")
	return nil
}

func (s *ReportScreen) Handle(ctx context.Context, args []string, _ *bufio.Reader, w io.Writer) (string, bool, error) {
	switch args[0] {
	case "range":
		if len(args) < 3 {
			return "", true, errors.New("cách dùng: range <từ ngày> <đến ngày>")
		}
		s.startDate, s.endDate = args[1], args[2]
		return "", true, nil

	case "export":
		if len(args) < 2 || (args[1] != "excel" && args[1] != "pdf") {
			return "", true, errors.New("cách dùng: export excel | export pdf")
		}
		path, err := s.reports.ExportCodReport(ctx, args[1], s.startDate, s.endDate)
		if err != nil {
			return "", true, err
		}
		fmt.Fprintf(w, "Đã lưu báo cáo: %s\n", path)
		return "", true, nil
	}

	return "", false, nil
}

func orDefault(date string) string {
	if date == "" {
		return "mặc định"
	}
	return date
}
