package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vanchuyen/codctl/internal/api"
	"github.com/vanchuyen/codctl/internal/domain"
)

// AdminService implements domain.AdminService: read-only oversight of
// orders plus suspend authority over shops and shippers
type AdminService struct {
	client      *api.Client
	downloadDir string
	now         func() time.Time
}

// NewAdminService creates a new AdminService
func NewAdminService(client *api.Client, downloadDir string) *AdminService {
	return &AdminService{client: client, downloadDir: downloadDir, now: time.Now}
}

// Dashboard fetches the platform-wide aggregate
func (s *AdminService) Dashboard(ctx context.Context) (*domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := s.client.Get(ctx, "/admin/dashboard", nil, &stats); err != nil {
		return nil, fmt.Errorf("admin service: failed to fetch dashboard: %w", err)
	}
	return &stats, nil
}

// Shops lists all shops
func (s *AdminService) Shops(ctx context.Context) ([]domain.Shop, error) {
	var page domain.Page[domain.Shop]
	if err := s.client.Get(ctx, "/admin/shops", nil, &page); err != nil {
		return nil, fmt.Errorf("admin service: failed to list shops: %w", err)
	}
	return page.Content, nil
}

// UpdateShopStatus activates or suspends a shop account
func (s *AdminService) UpdateShopStatus(ctx context.Context, shopID string, status domain.AccountStatus) error {
	body := map[string]domain.AccountStatus{"status": status}
	if err := s.client.Patch(ctx, "/admin/shops/"+shopID+"/status", body, nil); err != nil {
		return fmt.Errorf("admin service: failed to update shop %s status: %w", shopID, err)
	}
	return nil
}

// Shippers lists all shippers
func (s *AdminService) Shippers(ctx context.Context) ([]domain.Shipper, error) {
	var page domain.Page[domain.Shipper]
	if err := s.client.Get(ctx, "/admin/shippers", nil, &page); err != nil {
		return nil, fmt.Errorf("admin service: failed to list shippers: %w", err)
	}
	return page.Content, nil
}

// UpdateShipperStatus activates or suspends a shipper account
func (s *AdminService) UpdateShipperStatus(ctx context.Context, shipperID string, status domain.AccountStatus) error {
	body := map[string]domain.AccountStatus{"status": status}
	if err := s.client.Patch(ctx, "/admin/shippers/"+shipperID+"/status", body, nil); err != nil {
		return fmt.Errorf("admin service: failed to update shipper %s status: %w", shipperID, err)
	}
	return nil
}

// Orders lists all orders; admin has no transition actions
func (s *AdminService) Orders(ctx context.Context) (*domain.Page[domain.Order], error) {
	var page domain.Page[domain.Order]
	if err := s.client.Get(ctx, "/admin/orders", nil, &page); err != nil {
		return nil, fmt.Errorf("admin service: failed to list orders: %w", err)
	}
	return &page, nil
}

// Settlements lists all settlements
func (s *AdminService) Settlements(ctx context.Context) (*domain.Page[domain.Settlement], error) {
	var page domain.Page[domain.Settlement]
	if err := s.client.Get(ctx, "/admin/settlements", nil, &page); err != nil {
		return nil, fmt.Errorf("admin service: failed to list settlements: %w", err)
	}
	return &page, nil
}

// ConfirmSettlement marks a settlement as received from the shipper
func (s *AdminService) ConfirmSettlement(ctx context.Context, settlementID string) error {
	if err := s.client.Post(ctx, "/admin/settlements/"+settlementID+"/confirm", nil, nil); err != nil {
		return fmt.Errorf("admin service: failed to confirm settlement %s: %w", settlementID, err)
	}
	return nil
}

// CodReport fetches the platform-wide COD report for the date range
func (s *AdminService) CodReport(ctx context.Context, startDate, endDate string) (*domain.CodReport, error) {
	var report domain.CodReport
	if err := s.client.Get(ctx, "/admin/reports/cod", dateRangeQuery(startDate, endDate), &report); err != nil {
		return nil, fmt.Errorf("admin service: failed to fetch COD report: %w", err)
	}
	return &report, nil
}

// ExportCodReport downloads the platform-wide report and writes it to
// the download dir, returning the file path
func (s *AdminService) ExportCodReport(ctx context.Context, format, startDate, endDate string) (string, error) {
	data, err := s.client.Download(ctx, "/admin/reports/cod/export/"+format, dateRangeQuery(startDate, endDate))
	if err != nil {
		return "", fmt.Errorf("admin service: failed to export COD report: %w", err)
	}

	path, err := writeExport(s.downloadDir, "admin", format, startDate, endDate, s.now(), data)
	if err != nil {
		return "", fmt.Errorf("admin service: %w", err)
	}
	return path, nil
}
