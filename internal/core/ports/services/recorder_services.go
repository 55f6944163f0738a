package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
)

// RecorderWriterSvc appends to the transaction logs.
type RecorderWriterSvc interface {
	// RecordSale appends an immutable sale record with an allocated id and
	// a now timestamp, and pushes it into the bounded recent cache.
	RecordSale(ctx context.Context, items []domain.SaleItem, total decimal.Decimal, paymentType domain.PaymentType) (*domain.Sale, error)

	// RecordExpense stores a new expense entry.
	RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense patches a stored expense in place.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes a stored expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// RecorderReaderSvc derives reporting views from the transaction logs.
type RecorderReaderSvc interface {
	// RecentSales returns the bounded in-memory recent view, newest first.
	RecentSales(ctx context.Context) []domain.Sale

	// ListExpenses returns every stored expense.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// AggregateByWindow sums one transaction kind over a reporting window.
	AggregateByWindow(ctx context.Context, window domain.Window, kind domain.AggregateKind) (domain.WindowTotals, error)

	// NetProfit sums (sellingPrice - costPrice) * quantity over sales in
	// the window. Sales lacking cost snapshots are excluded entirely.
	NetProfit(ctx context.Context, window domain.Window) (decimal.Decimal, error)

	// TopProducts ranks products sold in the window by revenue.
	TopProducts(ctx context.Context, window domain.Window, limit int) ([]domain.TopProduct, error)

	// PaymentMethodBreakdown groups the window's sales by payment type.
	PaymentMethodBreakdown(ctx context.Context, window domain.Window) ([]domain.PaymentMethodTotals, error)

	// HourlyBreakdown buckets today's sale totals by hour of day.
	HourlyBreakdown(ctx context.Context) ([24]decimal.Decimal, error)
}

// RecorderSvcFacade combines the transaction recorder interfaces.
type RecorderSvcFacade interface {
	RecorderWriterSvc
	RecorderReaderSvc
}
