package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
)

// CreditReaderSvc defines read operations over the credit book.
type CreditReaderSvc interface {
	// ListCredits returns every credit, newest first.
	ListCredits(ctx context.Context) ([]domain.Credit, error)

	// OutstandingTotal sums the amounts of all active credits.
	OutstandingTotal(ctx context.Context) (decimal.Decimal, error)
}

// CreditWriterSvc defines credit book mutations.
type CreditWriterSvc interface {
	// AddCredit records a new active IOU.
	AddCredit(ctx context.Context, req dto.CreateCreditRequest) (*domain.Credit, error)

	// MarkPaid settles an active credit, stamping its paid date. Settling
	// an already-paid credit returns apperrors.ErrCreditSettled.
	MarkPaid(ctx context.Context, creditID string) (*domain.Credit, error)

	// UpdateCredit patches a stored credit.
	UpdateCredit(ctx context.Context, creditID string, req dto.UpdateCreditRequest) (*domain.Credit, error)

	// DeleteCredit removes a credit from the book.
	DeleteCredit(ctx context.Context, creditID string) error
}

// CreditSvcFacade combines the credit ledger interfaces.
type CreditSvcFacade interface {
	CreditReaderSvc
	CreditWriterSvc
}
