package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	portssvc "github.com/minivyapar/vyapar_ledger/internal/core/ports/services"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
)

// creditService tracks customer-owed balances. Credits are independent of
// inventory; status moves one way, active to paid.
type creditService struct {
	BaseService
	creditRepo portsrepo.CreditRepository
	validate   *validator.Validate
	now        func() time.Time
}

// CreditServiceOption is a functional option for configuring the credit service
type CreditServiceOption func(*creditService)

// WithCreditClock overrides the wall clock, for tests.
func WithCreditClock(now func() time.Time) CreditServiceOption {
	return func(s *creditService) {
		s.now = now
	}
}

// NewCreditService creates a new credit ledger service.
func NewCreditService(creditRepo portsrepo.CreditRepository, options ...CreditServiceOption) portssvc.CreditSvcFacade {
	svc := &creditService{
		creditRepo: creditRepo,
		validate:   validator.New(),
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure creditService implements the CreditSvcFacade interface
var _ portssvc.CreditSvcFacade = (*creditService)(nil)

// AddCredit records a new active IOU.
func (s *creditService) AddCredit(ctx context.Context, req dto.CreateCreditRequest) (*domain.Credit, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: credit amount must be positive", apperrors.ErrValidation)
	}

	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		return nil, err
	}

	credit := domain.Credit{
		CreditID:     uuid.NewString(),
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Amount:       req.Amount,
		Date:         s.now(),
		Status:       domain.CreditActive,
		Notes:        req.Notes,
	}
	credits = append(credits, credit)

	if err := s.creditRepo.SaveCredits(ctx, credits); err != nil {
		s.LogError(ctx, err, "Failed to save credit book", slog.String("credit_id", credit.CreditID))
		return nil, err
	}

	s.LogInfo(ctx, "Credit recorded",
		slog.String("credit_id", credit.CreditID),
		slog.String("customer", credit.CustomerName),
		slog.String("amount", credit.Amount.String()))
	return &credit, nil
}

// MarkPaid settles an active credit, stamping its paid date. The transition
// is monotonic: settling an already-paid credit is an error, not a no-op, so
// a double-tap in the UI surfaces instead of silently passing.
func (s *creditService) MarkPaid(ctx context.Context, creditID string) (*domain.Credit, error) {
	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		return nil, err
	}

	idx := findCredit(credits, creditID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	if credits[idx].Status == domain.CreditPaid {
		return nil, apperrors.ErrCreditSettled
	}

	paidDate := s.now()
	credits[idx].Status = domain.CreditPaid
	credits[idx].PaidDate = &paidDate

	if err := s.creditRepo.SaveCredits(ctx, credits); err != nil {
		s.LogError(ctx, err, "Failed to save settled credit", slog.String("credit_id", creditID))
		return nil, err
	}
	return &credits[idx], nil
}

// UpdateCredit patches a stored credit. Status is not patchable; the only
// transition is MarkPaid.
func (s *creditService) UpdateCredit(ctx context.Context, creditID string, req dto.UpdateCreditRequest) (*domain.Credit, error) {
	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		return nil, err
	}

	idx := findCredit(credits, creditID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	if req.CustomerName != nil {
		if *req.CustomerName == "" {
			return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
		}
		credits[idx].CustomerName = *req.CustomerName
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: credit amount must be positive", apperrors.ErrValidation)
		}
		credits[idx].Amount = *req.Amount
	}
	if req.Phone != nil {
		credits[idx].Phone = *req.Phone
	}
	if req.Notes != nil {
		credits[idx].Notes = *req.Notes
	}

	if err := s.creditRepo.SaveCredits(ctx, credits); err != nil {
		s.LogError(ctx, err, "Failed to save updated credit", slog.String("credit_id", creditID))
		return nil, err
	}
	return &credits[idx], nil
}

// DeleteCredit removes a credit from the book.
func (s *creditService) DeleteCredit(ctx context.Context, creditID string) error {
	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		return err
	}

	idx := findCredit(credits, creditID)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	credits = append(credits[:idx], credits[idx+1:]...)

	if err := s.creditRepo.SaveCredits(ctx, credits); err != nil {
		s.LogError(ctx, err, "Failed to save credit book after delete", slog.String("credit_id", creditID))
		return err
	}
	return nil
}

// ListCredits returns every credit, newest first.
func (s *creditService) ListCredits(ctx context.Context) ([]domain.Credit, error) {
	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(credits, func(i, j int) bool {
		return credits[i].Date.After(credits[j].Date)
	})
	return credits, nil
}

// OutstandingTotal sums the amounts of all active credits.
func (s *creditService) OutstandingTotal(ctx context.Context) (decimal.Decimal, error) {
	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, credit := range credits {
		if credit.Status == domain.CreditActive {
			total = total.Add(credit.Amount)
		}
	}
	return total, nil
}

func findCredit(credits []domain.Credit, creditID string) int {
	for i, credit := range credits {
		if credit.CreditID == creditID {
			return i
		}
	}
	return -1
}
