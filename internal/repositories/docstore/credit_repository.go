package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	"github.com/minivyapar/vyapar_ledger/internal/models"
	"github.com/minivyapar/vyapar_ledger/internal/utils/mapping"
)

type creditRepository struct {
	prefs portsrepo.PreferenceRepository
}

// NewCreditRepository creates the credit book repository. The whole book is
// one JSON array under the creditsData preference key, matching the layout
// earlier versions of the app persisted.
func NewCreditRepository(prefs portsrepo.PreferenceRepository) portsrepo.CreditRepository {
	return &creditRepository{prefs: prefs}
}

// Ensure implementation matches interface
var _ portsrepo.CreditRepository = (*creditRepository)(nil)

// ListCredits loads the full credit book. A book that was never written is
// an empty book, not an error.
func (r *creditRepository) ListCredits(ctx context.Context) ([]domain.Credit, error) {
	var stored []models.Credit
	if err := r.prefs.GetPreference(ctx, domain.PrefCreditsData, &stored); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Credit{}, nil
		}
		return nil, fmt.Errorf("failed to load credit book: %w", err)
	}
	return mapping.ToDomainCreditSlice(stored), nil
}

// SaveCredits overwrites the full credit book.
func (r *creditRepository) SaveCredits(ctx context.Context, credits []domain.Credit) error {
	if err := r.prefs.SetPreference(ctx, domain.PrefCreditsData, mapping.ToModelCreditSlice(credits)); err != nil {
		return fmt.Errorf("failed to save credit book: %w", err)
	}
	return nil
}
