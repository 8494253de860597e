package service

import (
	"context"
	"fmt"

	"github.com/vanchuyen/codctl/internal/api"
	"github.com/vanchuyen/codctl/internal/domain"
)

// SettlementService implements domain.SettlementService. All amounts
// are computed by the backend ledger; the client only lists and
// toggles confirmation state.
type SettlementService struct {
	client *api.Client
}

// NewSettlementService creates a new SettlementService
func NewSettlementService(client *api.Client) *SettlementService {
	return &SettlementService{client: client}
}

// ShopSettlements lists the shop's settlements
func (s *SettlementService) ShopSettlements(ctx context.Context) (*domain.Page[domain.Settlement], error) {
	var page domain.Page[domain.Settlement]
	if err := s.client.Get(ctx, "/shop/settlements", nil, &page); err != nil {
		return nil, fmt.Errorf("settlement service: failed to list shop settlements: %w", err)
	}
	return &page, nil
}

// ConfirmShopSettlement confirms receipt of a settlement transfer
func (s *SettlementService) ConfirmShopSettlement(ctx context.Context, settlementID string) error {
	if err := s.client.Post(ctx, "/shop/settlements/"+settlementID+"/confirm", nil, nil); err != nil {
		return fmt.Errorf("settlement service: failed to confirm settlement %s: %w", settlementID, err)
	}
	return nil
}

// ShipperDashboard fetches the shipper dashboard aggregate
func (s *SettlementService) ShipperDashboard(ctx context.Context) (*domain.ShipperStats, error) {
	var stats domain.ShipperStats
	if err := s.client.Get(ctx, "/shipper/dashboard", nil, &stats); err != nil {
		return nil, fmt.Errorf("settlement service: failed to fetch shipper dashboard: %w", err)
	}
	return &stats, nil
}

// ShipperSummary fetches the shipper's outstanding remittance summary
func (s *SettlementService) ShipperSummary(ctx context.Context) (*domain.ShipperSettlementSummary, error) {
	var summary domain.ShipperSettlementSummary
	if err := s.client.Get(ctx, "/shipper/settlement/summary", nil, &summary); err != nil {
		return nil, fmt.Errorf("settlement service: failed to fetch settlement summary: %w", err)
	}
	return &summary, nil
}

// RequestSettlement asks the backend to open a settlement for the
// shipper's collected COD
func (s *SettlementService) RequestSettlement(ctx context.Context, note string) error {
	var body any
	if note != "" {
		body = map[string]string{"note": note}
	}
	if err := s.client.Post(ctx, "/shipper/settlement/request", body, nil); err != nil {
		return fmt.Errorf("settlement service: failed to request settlement: %w", err)
	}
	return nil
}
