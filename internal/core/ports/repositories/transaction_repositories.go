package repositories

import (
	"context"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
)

// SaleRepository persists the append-only sale log.
type SaleRepository interface {
	// SaveSale appends a sale record. Sales are never updated in place.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// ListSales returns every recorded sale, order unspecified.
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// ExpenseRepository persists expense records. Expenses are mutable by id.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) (bool, error)
}
