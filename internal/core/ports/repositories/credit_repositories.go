package repositories

import (
	"context"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
)

// CreditRepository persists customer IOUs. The backing layout stores the
// whole credit book as one preference record, so implementations load and
// save the full list.
type CreditRepository interface {
	ListCredits(ctx context.Context) ([]domain.Credit, error)
	SaveCredits(ctx context.Context, credits []domain.Credit) error
}
