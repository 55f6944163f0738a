package services

import (
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	portssvc "github.com/minivyapar/vyapar_ledger/internal/core/ports/services"
	"github.com/minivyapar/vyapar_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Inventory = NewInventoryService(
		repos.ProductRepo,
		WithDefaultLowStockThreshold(cfg.DefaultLowStockThreshold),
	)
	container.Recorder = NewRecorderService(
		repos.SaleRepo,
		repos.ExpenseRepo,
		WithRecentLimit(cfg.RecentSalesCacheSize),
	)
	container.Credit = NewCreditService(repos.CreditRepo)
	container.Settings = NewSettingsService(repos.PreferenceRepo, repos.Store)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InventorySvcFacade = (*inventoryService)(nil)
	_ portssvc.RecorderSvcFacade  = (*recorderService)(nil)
	_ portssvc.CreditSvcFacade    = (*creditService)(nil)
	_ portssvc.SettingsSvcFacade  = (*settingsService)(nil)
	_ portssvc.CartSessionSvc     = (*cartSession)(nil)
)
