package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
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

// defaultRecentLimit bounds the in-memory recent-sales view when no override
// is configured.
const defaultRecentLimit = 50

// recorderService owns the two transaction logs: an unbounded durable log
// and a bounded in-memory recent view. Sales are append-only; expenses are
// mutable by id.
type recorderService struct {
	BaseService
	saleRepo    portsrepo.SaleRepository
	expenseRepo portsrepo.ExpenseRepository
	validate    *validator.Validate
	now         func() time.Time

	mu          sync.Mutex
	recent      []domain.Sale // newest first
	recentLimit int
}

// RecorderServiceOption is a functional option for configuring the recorder service
type RecorderServiceOption func(*recorderService)

// WithRecentLimit bounds the in-memory recent-sales view.
func WithRecentLimit(limit int) RecorderServiceOption {
	return func(s *recorderService) {
		if limit > 0 {
			s.recentLimit = limit
		}
	}
}

// WithRecorderClock overrides the wall clock, for tests.
func WithRecorderClock(now func() time.Time) RecorderServiceOption {
	return func(s *recorderService) {
		s.now = now
	}
}

// NewRecorderService creates a new transaction recorder.
func NewRecorderService(saleRepo portsrepo.SaleRepository, expenseRepo portsrepo.ExpenseRepository, options ...RecorderServiceOption) portssvc.RecorderSvcFacade {
	svc := &recorderService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		validate:    validator.New(),
		now:         time.Now,
		recentLimit: defaultRecentLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure recorderService implements the RecorderSvcFacade interface
var _ portssvc.RecorderSvcFacade = (*recorderService)(nil)

// RecordSale appends an immutable sale record. The durable write is
// best-effort (the store degrades rather than fails), so a completed sale is
// always reflected in the recent view and the returned receipt data.
func (s *recorderService) RecordSale(ctx context.Context, items []domain.SaleItem, total decimal.Decimal, paymentType domain.PaymentType) (*domain.Sale, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: sale needs at least one item", apperrors.ErrValidation)
	}
	if paymentType == "" {
		paymentType = domain.PaymentCash
	}

	sale := domain.Sale{
		SaleID:      uuid.NewString(),
		Items:       items,
		Total:       total,
		PaymentType: paymentType,
		Timestamp:   s.now(),
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to persist sale", slog.String("sale_id", sale.SaleID))
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	s.pushRecent(sale)
	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("total", total.String()),
		slog.String("payment_type", string(paymentType)))
	return &sale, nil
}

// pushRecent prepends the sale to the bounded recent view, evicting the
// oldest entry when the bound is hit. Insertion order is recency.
func (s *recorderService) pushRecent(sale domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recent = append([]domain.Sale{sale}, s.recent...)
	if len(s.recent) > s.recentLimit {
		s.recent = s.recent[:s.recentLimit]
	}
}

// RecentSales returns the bounded in-memory recent view, newest first.
// It is independent of the persisted log and starts empty each session.
func (s *recorderService) RecentSales(ctx context.Context) []domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Sale, len(s.recent))
	copy(out, s.recent)
	return out
}

// RecordExpense stores a new expense entry.
func (s *recorderService) RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := s.now()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if expense.Category == "" {
		expense.Category = domain.DefaultProductCategory
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to persist expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}
	return &expense, nil
}

// UpdateExpense patches a stored expense in place. Expenses are mutable by
// id; only sales are append-only.
func (s *recorderService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: expense description is required", apperrors.ErrValidation)
		}
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.UpdatedAt = s.now()

	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to save updated expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return expense, nil
}

// DeleteExpense removes a stored expense.
func (s *recorderService) DeleteExpense(ctx context.Context, expenseID string) error {
	found, err := s.expenseRepo.DeleteExpense(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if !found {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListExpenses returns every stored expense, newest first by date.
func (s *recorderService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

// AggregateByWindow sums one transaction kind over a reporting window
// measured against wall-clock now.
func (s *recorderService) AggregateByWindow(ctx context.Context, window domain.Window, kind domain.AggregateKind) (domain.WindowTotals, error) {
	totals := domain.WindowTotals{Total: decimal.Zero}
	now := s.now()

	switch kind {
	case domain.AggregateExpenses:
		expenses, err := s.expenseRepo.ListExpenses(ctx)
		if err != nil {
			return totals, fmt.Errorf("failed to aggregate expenses: %w", err)
		}
		for _, expense := range expenses {
			if window.Contains(expense.Date, now) {
				totals.Total = totals.Total.Add(expense.Amount)
				totals.Count++
			}
		}
	default:
		sales, err := s.saleRepo.ListSales(ctx)
		if err != nil {
			return totals, fmt.Errorf("failed to aggregate sales: %w", err)
		}
		for _, sale := range sales {
			if window.Contains(sale.Timestamp, now) {
				totals.Total = totals.Total.Add(sale.Total)
				totals.Count++
			}
		}
	}
	return totals, nil
}

// NetProfit sums (sellingPrice - costPrice) * quantity over the window's
// sales. Sales lacking cost snapshots are excluded from the math entirely
// rather than counted as zero-profit, so missing data cannot skew margins.
func (s *recorderService) NetProfit(ctx context.Context, window domain.Window) (decimal.Decimal, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute net profit: %w", err)
	}

	now := s.now()
	profit := decimal.Zero
	for _, sale := range sales {
		if !window.Contains(sale.Timestamp, now) || !sale.HasCostSnapshots() {
			continue
		}
		for _, item := range sale.Items {
			margin := item.UnitPrice.Sub(*item.CostPriceSnapshot)
			profit = profit.Add(margin.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return profit, nil
}

// TopProducts ranks the window's sold products by revenue.
func (s *recorderService) TopProducts(ctx context.Context, window domain.Window, limit int) ([]domain.TopProduct, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	if limit <= 0 {
		limit = 5
	}

	now := s.now()
	stats := make(map[string]*domain.TopProduct)
	for _, sale := range sales {
		if !window.Contains(sale.Timestamp, now) {
			continue
		}
		for _, item := range sale.Items {
			row, ok := stats[item.Name]
			if !ok {
				row = &domain.TopProduct{Name: item.Name, Revenue: decimal.Zero}
				stats[item.Name] = row
			}
			row.Quantity += item.Quantity
			row.Revenue = row.Revenue.Add(item.LineTotal)
		}
	}

	ranked := make([]domain.TopProduct, 0, len(stats))
	for _, row := range stats {
		ranked = append(ranked, *row)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Revenue.Equal(ranked[j].Revenue) {
			return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// PaymentMethodBreakdown groups the window's sales by payment type, largest
// total first.
func (s *recorderService) PaymentMethodBreakdown(ctx context.Context, window domain.Window) ([]domain.PaymentMethodTotals, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to break down payment methods: %w", err)
	}

	now := s.now()
	stats := make(map[domain.PaymentType]*domain.PaymentMethodTotals)
	for _, sale := range sales {
		if !window.Contains(sale.Timestamp, now) {
			continue
		}
		row, ok := stats[sale.PaymentType]
		if !ok {
			row = &domain.PaymentMethodTotals{PaymentType: sale.PaymentType, Total: decimal.Zero}
			stats[sale.PaymentType] = row
		}
		row.Count++
		row.Total = row.Total.Add(sale.Total)
	}

	breakdown := make([]domain.PaymentMethodTotals, 0, len(stats))
	for _, row := range stats {
		breakdown = append(breakdown, *row)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].PaymentType < breakdown[j].PaymentType
	})
	return breakdown, nil
}

// HourlyBreakdown buckets today's sale totals by hour of day.
func (s *recorderService) HourlyBreakdown(ctx context.Context) ([24]decimal.Decimal, error) {
	var hourly [24]decimal.Decimal
	for i := range hourly {
		hourly[i] = decimal.Zero
	}

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return hourly, fmt.Errorf("failed to compute hourly breakdown: %w", err)
	}

	now := s.now()
	for _, sale := range sales {
		if !domain.WindowToday.Contains(sale.Timestamp, now) {
			continue
		}
		hour := sale.Timestamp.Hour()
		hourly[hour] = hourly[hour].Add(sale.Total)
	}
	return hourly, nil
}
