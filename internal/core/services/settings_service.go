package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	portssvc "github.com/minivyapar/vyapar_ledger/internal/core/ports/services"
)

// Defaults applied when a preference has never been set.
const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
	DefaultLastPage = "home"
)

// settingsService exposes the scalar preference surface and the
// factory-reset flow.
type settingsService struct {
	BaseService
	prefs portsrepo.PreferenceRepository
	store portsrepo.DocumentStore
}

// NewSettingsService creates the settings service. The document store handle
// is needed for the factory-reset wipe.
func NewSettingsService(prefs portsrepo.PreferenceRepository, store portsrepo.DocumentStore) portssvc.SettingsSvcFacade {
	return &settingsService{prefs: prefs, store: store}
}

// Ensure settingsService implements the SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// Theme returns the stored theme, defaulting to light.
func (s *settingsService) Theme(ctx context.Context) string {
	return s.getString(ctx, domain.PrefTheme, DefaultTheme)
}

// SetTheme stores the theme preference.
func (s *settingsService) SetTheme(ctx context.Context, theme string) error {
	if theme == "" {
		return fmt.Errorf("%w: theme must not be empty", apperrors.ErrValidation)
	}
	return s.prefs.SetPreference(ctx, domain.PrefTheme, theme)
}

// Language returns the stored UI language, defaulting to English.
func (s *settingsService) Language(ctx context.Context) string {
	return s.getString(ctx, domain.PrefLanguage, DefaultLanguage)
}

// SetLanguage stores the UI language preference.
func (s *settingsService) SetLanguage(ctx context.Context, language string) error {
	if language == "" {
		return fmt.Errorf("%w: language must not be empty", apperrors.ErrValidation)
	}
	return s.prefs.SetPreference(ctx, domain.PrefLanguage, language)
}

// LastPage returns the last viewed page, defaulting to home.
func (s *settingsService) LastPage(ctx context.Context) string {
	return s.getString(ctx, domain.PrefLastPage, DefaultLastPage)
}

// SetLastPage stores the last viewed page.
func (s *settingsService) SetLastPage(ctx context.Context, page string) error {
	if page == "" {
		return fmt.Errorf("%w: page must not be empty", apperrors.ErrValidation)
	}
	return s.prefs.SetPreference(ctx, domain.PrefLastPage, page)
}

// ShopSettings returns the stored shop profile. A profile that was never
// saved comes back with the rupee symbol preset and everything else empty.
func (s *settingsService) ShopSettings(ctx context.Context) (domain.ShopSettings, error) {
	var settings domain.ShopSettings
	err := s.prefs.GetPreference(ctx, domain.PrefShopSettings, &settings)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.ShopSettings{CurrencySymbol: "₹"}, nil
		}
		return domain.ShopSettings{}, err
	}
	if settings.CurrencySymbol == "" {
		settings.CurrencySymbol = "₹"
	}
	return settings, nil
}

// SetShopSettings stores the shop profile.
func (s *settingsService) SetShopSettings(ctx context.Context, settings domain.ShopSettings) error {
	return s.prefs.SetPreference(ctx, domain.PrefShopSettings, settings)
}

// FactoryReset irreversibly wipes every collection and preference. There is
// no soft-delete and no undo; the UI gates this behind explicit confirmation.
func (s *settingsService) FactoryReset(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		s.LogError(ctx, err, "Factory reset failed")
		return fmt.Errorf("factory reset failed: %w", err)
	}
	s.LogInfo(ctx, "Factory reset completed, all data wiped")
	return nil
}

func (s *settingsService) getString(ctx context.Context, key, fallback string) string {
	var value string
	if err := s.prefs.GetPreference(ctx, key, &value); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Failed to read preference, using default",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return fallback
	}
	if value == "" {
		return fallback
	}
	return value
}
