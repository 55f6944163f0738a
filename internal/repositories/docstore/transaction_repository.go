package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	"github.com/minivyapar/vyapar_ledger/internal/models"
	"github.com/minivyapar/vyapar_ledger/internal/utils/mapping"
)

type saleRepository struct {
	store portsrepo.DocumentStore
}

// NewSaleRepository creates a repository for the append-only sale log.
func NewSaleRepository(store portsrepo.DocumentStore) portsrepo.SaleRepository {
	return &saleRepository{store: store}
}

// Ensure implementation matches interface
var _ portsrepo.SaleRepository = (*saleRepository)(nil)

// SaveSale appends a sale record.
func (r *saleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	model := mapping.ToModelSale(sale)
	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to encode sale %s: %w", sale.SaleID, err)
	}
	if _, err := r.store.Put(ctx, portsrepo.CollectionSales, sale.SaleID, data); err != nil {
		return fmt.Errorf("failed to save sale %s: %w", sale.SaleID, err)
	}
	return nil
}

// ListSales returns every recorded sale, order unspecified.
func (r *saleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	docs, err := r.store.GetAll(ctx, portsrepo.CollectionSales)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	ms := make([]models.Sale, 0, len(docs))
	for _, doc := range docs {
		var model models.Sale
		if err := json.Unmarshal(doc.Data, &model); err != nil {
			return nil, fmt.Errorf("failed to decode sale %s: %w", doc.ID, err)
		}
		ms = append(ms, model)
	}
	return mapping.ToDomainSaleSlice(ms), nil
}

type expenseRepository struct {
	store portsrepo.DocumentStore
}

// NewExpenseRepository creates a repository for expense records.
func NewExpenseRepository(store portsrepo.DocumentStore) portsrepo.ExpenseRepository {
	return &expenseRepository{store: store}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepository = (*expenseRepository)(nil)

// SaveExpense inserts or updates an expense by its id.
func (r *expenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	model := mapping.ToModelExpense(expense)
	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to encode expense %s: %w", expense.ExpenseID, err)
	}
	if _, err := r.store.Put(ctx, portsrepo.CollectionExpenses, expense.ExpenseID, data); err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its id.
func (r *expenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	data, err := r.store.Get(ctx, portsrepo.CollectionExpenses, expenseID)
	if err != nil {
		return nil, err
	}
	var model models.Expense
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to decode expense %s: %w", expenseID, err)
	}
	expense := mapping.ToDomainExpense(model)
	return &expense, nil
}

// ListExpenses returns every stored expense, order unspecified.
func (r *expenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	docs, err := r.store.GetAll(ctx, portsrepo.CollectionExpenses)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	ms := make([]models.Expense, 0, len(docs))
	for _, doc := range docs {
		var model models.Expense
		if err := json.Unmarshal(doc.Data, &model); err != nil {
			return nil, fmt.Errorf("failed to decode expense %s: %w", doc.ID, err)
		}
		ms = append(ms, model)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

// DeleteExpense reports whether the expense existed.
func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID string) (bool, error) {
	found, err := r.store.Delete(ctx, portsrepo.CollectionExpenses, expenseID)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return found, nil
}
