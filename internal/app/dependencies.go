package app

import (
	"github.com/vanchuyen/codctl/internal/api"
	"github.com/vanchuyen/codctl/internal/config"
	"github.com/vanchuyen/codctl/internal/domain"
	"github.com/vanchuyen/codctl/internal/service"
	"github.com/vanchuyen/codctl/internal/session"
	"github.com/vanchuyen/codctl/internal/ui"
	"github.com/vanchuyen/codctl/internal/ui/screens"
	"go.uber.org/zap"
)

// services holds all domain services of the client
type services struct {
	auth          domain.AuthService
	orders        domain.OrderService
	shop          domain.ShopService
	settlements   domain.SettlementService
	admin         domain.AdminService
	notifications domain.NotificationService
}

// dependencies holds the wired client
type dependencies struct {
	sessions  domain.SessionStore
	client    *api.Client
	services  *services
	registry  *screens.Registry
	navigator *ui.Navigator
}

// initDependencies wires the session store, API client, services and
// the screen registry
func initDependencies(cfg *config.Config, logger *zap.Logger) *dependencies {
	sessions := session.NewFileStore(cfg.SessionFile)

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sessions, logger)

	svcs := &services{
		auth:          service.NewAuthService(client, sessions),
		orders:        service.NewOrderService(client),
		shop:          service.NewShopService(client, cfg.DownloadDir),
		settlements:   service.NewSettlementService(client),
		admin:         service.NewAdminService(client, cfg.DownloadDir),
		notifications: service.NewNotificationService(client),
	}

	navigator := ui.NewNavigator(sessions)

	// An invalidated token anywhere lands the user back on the login
	// screen; the client has already cleared the stored session
	client.OnAuthFailure(func() {
		navigator.ForceLogin()
		logger.Info("session invalidated by server, forcing login")
	})

	return &dependencies{
		sessions:  sessions,
		client:    client,
		services:  svcs,
		registry:  initScreens(svcs),
		navigator: navigator,
	}
}

// initScreens registers every screen at the path the route guard
// resolves to
func initScreens(svcs *services) *screens.Registry {
	registry := screens.NewRegistry()

	registry.Register(ui.PathLogin, screens.NewLoginScreen(svcs.auth))
	registry.Register(ui.PathUnauthorized, screens.NewUnauthorizedScreen())
	registry.Register(ui.PathNotFound, screens.NewNotFoundScreen())

	registry.Register("/shop/dashboard", screens.NewShopDashboardScreen(svcs.shop))
	registry.Register("/shop/orders", screens.NewShopOrdersScreen(svcs.orders))
	registry.Register("/shop/orders/new", screens.NewCreateOrderScreen(svcs.orders))
	registry.Register("/shop/settlements", screens.NewShopSettlementsScreen(svcs.settlements))
	registry.Register("/shop/reports", screens.NewReportScreen("Báo cáo COD", svcs.shop))
	registry.Register("/shop/profile", screens.NewShopProfileScreen(svcs.shop))

	registry.Register("/shipper/dashboard", screens.NewShipperDashboardScreen(svcs.settlements))
	registry.Register("/shipper/deliveries", screens.NewShipperDeliveriesScreen(svcs.orders))
	registry.Register("/shipper/settlements", screens.NewShipperSettlementScreen(svcs.settlements))
	registry.Register("/shipper/history", screens.NewShipperHistoryScreen(svcs.orders))

	registry.Register("/admin/dashboard", screens.NewAdminDashboardScreen(svcs.admin))
	registry.Register("/admin/shops", screens.NewAdminShopsScreen(svcs.admin))
	registry.Register("/admin/shippers", screens.NewAdminShippersScreen(svcs.admin))
	registry.Register("/admin/orders", screens.NewAdminOrdersScreen(svcs.admin))
	registry.Register("/admin/settlements", screens.NewAdminSettlementsScreen(svcs.admin))
	registry.Register("/admin/reports", screens.NewReportScreen("Báo cáo COD toàn hệ thống", svcs.admin))

	return registry
}
