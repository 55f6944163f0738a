package services

import (
	"context"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
)

// SettingsSvcFacade exposes the scalar preference surface: theme, language,
// last-viewed page, the shop profile, and the factory-reset flow.
type SettingsSvcFacade interface {
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error

	Language(ctx context.Context) string
	SetLanguage(ctx context.Context, language string) error

	LastPage(ctx context.Context) string
	SetLastPage(ctx context.Context, page string) error

	ShopSettings(ctx context.Context) (domain.ShopSettings, error)
	SetShopSettings(ctx context.Context, settings domain.ShopSettings) error

	// FactoryReset irreversibly wipes every collection and preference.
	FactoryReset(ctx context.Context) error
}
