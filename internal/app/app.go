// Package app is the composition root: it opens the document store, wires
// repositories and services, and hands the UI shell a single handle. The
// shell owns everything from here up (rendering, gestures, exports); the
// core owns everything from here down.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	portssvc "github.com/minivyapar/vyapar_ledger/internal/core/ports/services"
	"github.com/minivyapar/vyapar_ledger/internal/core/services"
	"github.com/minivyapar/vyapar_ledger/internal/platform/config"
	"github.com/minivyapar/vyapar_ledger/internal/repositories/database/resilient"
	"github.com/minivyapar/vyapar_ledger/internal/repositories/docstore"
)

// App bundles the wired core: services, the per-device cart session, and the
// store handle for mode checks and shutdown.
type App struct {
	Services *portssvc.ServiceContainer
	Cart     portssvc.CartSessionSvc
	Store    portsrepo.DocumentStore
	Logger   *slog.Logger
}

// Bootstrap wires the whole core. A store that cannot open durably is not
// fatal: the app comes up Degraded and keeps working against memory, which
// the caller can surface via Mode.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store := resilient.Open(ctx, cfg.StorePath, logger)
	if store.Mode() == portsrepo.ModeDegraded {
		logger.Warn("Running degraded: data will not survive a restart")
	}

	repos := docstore.NewRepositoryProvider(store)
	container := services.NewServiceContainer(cfg, repos)

	seedPreferenceDefaults(ctx, repos.PreferenceRepo, logger)

	cart := services.NewCartSession(container.Inventory, container.Recorder, repos.PreferenceRepo)
	if err := cart.Restore(ctx); err != nil {
		logger.Warn("Failed to restore cart snapshot", slog.String("error", err.Error()))
	}

	return &App{
		Services: container,
		Cart:     cart,
		Store:    store,
		Logger:   logger,
	}, nil
}

// Mode reports whether writes survive a restart.
func (a *App) Mode() portsrepo.StoreMode {
	return a.Store.Mode()
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.Store.Close()
}

// seedPreferenceDefaults writes the initial preference set on first run.
// Existing values are never overwritten.
func seedPreferenceDefaults(ctx context.Context, prefs portsrepo.PreferenceRepository, logger *slog.Logger) {
	defaults := []struct {
		key   string
		value any
	}{
		{domain.PrefTheme, services.DefaultTheme},
		{domain.PrefLanguage, services.DefaultLanguage},
		{domain.PrefLastPage, services.DefaultLastPage},
		{domain.PrefTutorialSeen, false},
		{domain.PrefSoundEnabled, true},
		{domain.PrefAutoBackup, true},
	}

	for _, d := range defaults {
		var existing any
		err := prefs.GetPreference(ctx, d.key, &existing)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Failed to check preference default",
				slog.String("key", d.key),
				slog.String("error", err.Error()))
			continue
		}
		if err := prefs.SetPreference(ctx, d.key, d.value); err != nil {
			logger.Warn("Failed to seed preference default",
				slog.String("key", d.key),
				slog.String("error", err.Error()))
		}
	}
}
