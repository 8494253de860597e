package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/vanchuyen/codctl/internal/api"
	"github.com/vanchuyen/codctl/internal/domain"
)

// ShopService implements domain.ShopService: profile, dashboard
// aggregates and COD reports with file exports
type ShopService struct {
	client      *api.Client
	downloadDir string
	now         func() time.Time
}

// NewShopService creates a new ShopService; exports are written to
// downloadDir
func NewShopService(client *api.Client, downloadDir string) *ShopService {
	return &ShopService{client: client, downloadDir: downloadDir, now: time.Now}
}

// Profile fetches the shop's own profile
func (s *ShopService) Profile(ctx context.Context) (*domain.ShopProfile, error) {
	var profile domain.ShopProfile
	if err := s.client.Get(ctx, "/shop/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("shop service: failed to fetch profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile updates the shop's profile
func (s *ShopService) UpdateProfile(ctx context.Context, profile *domain.ShopProfile) (*domain.ShopProfile, error) {
	var updated domain.ShopProfile
	if err := s.client.Put(ctx, "/shop/profile", profile, &updated); err != nil {
		return nil, fmt.Errorf("shop service: failed to update profile: %w", err)
	}
	return &updated, nil
}

// Dashboard fetches the shop dashboard aggregate
func (s *ShopService) Dashboard(ctx context.Context) (*domain.ShopStats, error) {
	var stats domain.ShopStats
	if err := s.client.Get(ctx, "/shop/dashboard", nil, &stats); err != nil {
		return nil, fmt.Errorf("shop service: failed to fetch dashboard: %w", err)
	}
	return &stats, nil
}

// Revenue7Days fetches the revenue chart series
func (s *ShopService) Revenue7Days(ctx context.Context) ([]domain.RevenuePoint, error) {
	var page domain.Page[domain.RevenuePoint]
	if err := s.client.Get(ctx, "/shop/dashboard/revenue-7-days", nil, &page); err != nil {
		return nil, fmt.Errorf("shop service: failed to fetch revenue series: %w", err)
	}
	return page.Content, nil
}

// Orders7Days fetches the order-count chart series
func (s *ShopService) Orders7Days(ctx context.Context) ([]domain.OrdersPoint, error) {
	var page domain.Page[domain.OrdersPoint]
	if err := s.client.Get(ctx, "/shop/dashboard/orders-7-days", nil, &page); err != nil {
		return nil, fmt.Errorf("shop service: failed to fetch orders series: %w", err)
	}
	return page.Content, nil
}

// CodReport fetches the COD financial report for the date range
// (YYYY-MM-DD, both optional)
func (s *ShopService) CodReport(ctx context.Context, startDate, endDate string) (*domain.CodReport, error) {
	var report domain.CodReport
	if err := s.client.Get(ctx, "/shop/reports/cod", dateRangeQuery(startDate, endDate), &report); err != nil {
		return nil, fmt.Errorf("shop service: failed to fetch COD report: %w", err)
	}
	return &report, nil
}

// ExportCodReport downloads the report in the given format ("excel" or
// "pdf") and writes it to the download dir, returning the file path
func (s *ShopService) ExportCodReport(ctx context.Context, format, startDate, endDate string) (string, error) {
	data, err := s.client.Download(ctx, "/shop/reports/cod/export/"+format, dateRangeQuery(startDate, endDate))
	if err != nil {
		return "", fmt.Errorf("shop service: failed to export COD report: %w", err)
	}

	path, err := writeExport(s.downloadDir, "shop", format, startDate, endDate, s.now(), data)
	if err != nil {
		return "", fmt.Errorf("shop service: %w", err)
	}
	return path, nil
}

// dateRangeQuery builds the startDate/endDate query, omitting empty
// bounds so the backend applies its defaults
func dateRangeQuery(startDate, endDate string) url.Values {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}
	if len(query) == 0 {
		return nil
	}
	return query
}

// writeExport saves an exported report named with the date range and
// the current date, e.g. shop-cod-report-2026-01-01-2026-01-31-20260901.xlsx
func writeExport(dir, scope, format, startDate, endDate string, now time.Time, data []byte) (string, error) {
	ext := "xlsx"
	if format == "pdf" {
		ext = "pdf"
	}
	if startDate == "" {
		startDate = "all"
	}
	if endDate == "" {
		endDate = "all"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download dir: %w", err)
	}

	name := fmt.Sprintf("%s-cod-report-%s-%s-%s.%s", scope, startDate, endDate, now.Format("20060102"), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
