package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portssvc "github.com/minivyapar/vyapar_ledger/internal/core/ports/services"
	"github.com/minivyapar/vyapar_ledger/internal/core/services"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) (bool, error) {
	args := m.Called(ctx, expenseID)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite ---
type RecorderServiceTestSuite struct {
	suite.Suite
	mockSales    *MockSaleRepository
	mockExpenses *MockExpenseRepository
	service      portssvc.RecorderSvcFacade
	now          time.Time
}

func (suite *RecorderServiceTestSuite) SetupTest() {
	suite.mockSales = new(MockSaleRepository)
	suite.mockExpenses = new(MockExpenseRepository)
	suite.now = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	suite.service = services.NewRecorderService(
		suite.mockSales,
		suite.mockExpenses,
		services.WithRecorderClock(func() time.Time { return suite.now }),
	)
}

func saleAt(ts time.Time, total string, payment domain.PaymentType, items ...domain.SaleItem) domain.Sale {
	return domain.Sale{
		SaleID:      "sale-" + ts.Format("150405"),
		Items:       items,
		Total:       decimal.RequireFromString(total),
		PaymentType: payment,
		Timestamp:   ts,
	}
}

func saleItem(name, unitPrice string, qty int, costPrice string) domain.SaleItem {
	item := domain.SaleItem{
		Name:      name,
		UnitPrice: decimal.RequireFromString(unitPrice),
		Quantity:  qty,
		LineTotal: decimal.RequireFromString(unitPrice).Mul(decimal.NewFromInt(int64(qty))),
	}
	if costPrice != "" {
		cost := decimal.RequireFromString(costPrice)
		item.CostPriceSnapshot = &cost
	}
	return item
}

// --- RecordSale ---

func (suite *RecorderServiceTestSuite) TestRecordSale_AssignsIDAndTimestamp() {
	ctx := context.Background()
	items := []domain.SaleItem{saleItem("Tea", "10", 2, "6")}

	suite.mockSales.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.SaleID != "" && s.Timestamp.Equal(suite.now) && s.PaymentType == domain.PaymentUPI
	})).Return(nil).Once()

	sale, err := suite.service.RecordSale(ctx, items, decimal.RequireFromString("20"), domain.PaymentUPI)

	suite.Require().NoError(err)
	suite.NotEmpty(sale.SaleID)
	suite.True(sale.Timestamp.Equal(suite.now))
	suite.mockSales.AssertExpectations(suite.T())
}

func (suite *RecorderServiceTestSuite) TestRecordSale_EmptyItemsRejected() {
	ctx := context.Background()

	sale, err := suite.service.RecordSale(ctx, nil, decimal.Zero, domain.PaymentCash)

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSales.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *RecorderServiceTestSuite) TestRecordSale_DefaultsPaymentToCash() {
	ctx := context.Background()
	suite.mockSales.On("SaveSale", ctx, mock.MatchedBy(func(s domain.Sale) bool {
		return s.PaymentType == domain.PaymentCash
	})).Return(nil).Once()

	sale, err := suite.service.RecordSale(ctx, []domain.SaleItem{saleItem("Tea", "10", 1, "")}, decimal.RequireFromString("10"), "")

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentCash, sale.PaymentType)
}

// --- RecentSales ---

func (suite *RecorderServiceTestSuite) TestRecentSales_NewestFirstAndBounded() {
	ctx := context.Background()
	svc := services.NewRecorderService(
		suite.mockSales,
		suite.mockExpenses,
		services.WithRecentLimit(3),
		services.WithRecorderClock(func() time.Time { return suite.now }),
	)
	suite.mockSales.On("SaveSale", ctx, mock.Anything).Return(nil).Times(5)

	var totals []string
	for i := 1; i <= 5; i++ {
		total := decimal.NewFromInt(int64(i * 10))
		totals = append(totals, total.String())
		_, err := svc.RecordSale(ctx, []domain.SaleItem{saleItem(fmt.Sprintf("Item %d", i), total.String(), 1, "")}, total, domain.PaymentCash)
		suite.Require().NoError(err)
	}

	recent := svc.RecentSales(ctx)
	suite.Require().Len(recent, 3)
	suite.Equal(totals[4], recent[0].Total.String())
	suite.Equal(totals[3], recent[1].Total.String())
	suite.Equal(totals[2], recent[2].Total.String())
}

func (suite *RecorderServiceTestSuite) TestRecentSales_StartsEmpty() {
	recent := suite.service.RecentSales(context.Background())
	suite.Empty(recent)
}

// --- AggregateByWindow ---

func (suite *RecorderServiceTestSuite) TestAggregateByWindow_TodaySales() {
	ctx := context.Background()
	today := suite.now
	yesterday := suite.now.AddDate(0, 0, -1)
	sales := []domain.Sale{
		saleAt(today.Add(-2*time.Hour), "100", domain.PaymentCash),
		saleAt(today.Add(-1*time.Hour), "250", domain.PaymentUPI),
		saleAt(today, "75", domain.PaymentCash),
		saleAt(yesterday, "999", domain.PaymentCash),
	}
	suite.mockSales.On("ListSales", ctx).Return(sales, nil).Once()

	totals, err := suite.service.AggregateByWindow(ctx, domain.WindowToday, domain.AggregateSales)

	suite.Require().NoError(err)
	suite.Equal("425", totals.Total.String())
	suite.Equal(3, totals.Count)
	suite.Equal("141.67", totals.Average().StringFixed(2))
}

func (suite *RecorderServiceTestSuite) TestAggregateByWindow_WeekExpenses() {
	ctx := context.Background()
	expenses := []domain.Expense{
		{ExpenseID: "e1", Description: "Rent", Amount: decimal.RequireFromString("5000"), Date: suite.now.AddDate(0, 0, -2)},
		{ExpenseID: "e2", Description: "Tea", Amount: decimal.RequireFromString("50"), Date: suite.now.AddDate(0, 0, -10)},
	}
	suite.mockExpenses.On("ListExpenses", ctx).Return(expenses, nil).Once()

	totals, err := suite.service.AggregateByWindow(ctx, domain.WindowWeek, domain.AggregateExpenses)

	suite.Require().NoError(err)
	suite.Equal("5000", totals.Total.String())
	suite.Equal(1, totals.Count)
}

func (suite *RecorderServiceTestSuite) TestAggregateByWindow_EmptyLedger() {
	ctx := context.Background()
	suite.mockSales.On("ListSales", ctx).Return([]domain.Sale{}, nil).Once()

	totals, err := suite.service.AggregateByWindow(ctx, domain.WindowMonth, domain.AggregateSales)

	suite.Require().NoError(err)
	suite.True(totals.Total.IsZero())
	suite.Equal(0, totals.Count)
	suite.True(totals.Average().IsZero())
}

// --- NetProfit ---

func (suite *RecorderServiceTestSuite) TestNetProfit_ExcludesSalesWithoutCostSnapshots() {
	ctx := context.Background()
	sales := []domain.Sale{
		// (10-6)*2 = 8 profit
		saleAt(suite.now.Add(-time.Hour), "20", domain.PaymentCash, saleItem("Tea", "10", 2, "6")),
		// Legacy sale without cost data, excluded entirely.
		saleAt(suite.now.Add(-2*time.Hour), "50", domain.PaymentCash, saleItem("Mystery", "50", 1, "")),
		// Mixed sale: one line missing a snapshot poisons the whole sale.
		saleAt(suite.now.Add(-3*time.Hour), "35", domain.PaymentCash,
			saleItem("Milk", "25", 1, "18"),
			saleItem("Bread", "10", 1, "")),
	}
	suite.mockSales.On("ListSales", ctx).Return(sales, nil).Once()

	profit, err := suite.service.NetProfit(ctx, domain.WindowToday)

	suite.Require().NoError(err)
	suite.Equal("8", profit.String())
}

// --- TopProducts ---

func (suite *RecorderServiceTestSuite) TestTopProducts_RankedByRevenue() {
	ctx := context.Background()
	sales := []domain.Sale{
		saleAt(suite.now.Add(-time.Hour), "70", domain.PaymentCash,
			saleItem("Tea", "10", 2, ""),
			saleItem("Milk", "25", 2, "")),
		saleAt(suite.now.Add(-2*time.Hour), "30", domain.PaymentUPI,
			saleItem("Tea", "10", 3, "")),
	}
	suite.mockSales.On("ListSales", ctx).Return(sales, nil).Once()

	top, err := suite.service.TopProducts(ctx, domain.WindowToday, 5)

	suite.Require().NoError(err)
	suite.Require().Len(top, 2)
	suite.Equal("Milk", top[0].Name)
	suite.Equal("50", top[0].Revenue.String())
	suite.Equal(2, top[0].Quantity)
	suite.Equal("Tea", top[1].Name)
	suite.Equal("50", top[1].Revenue.String())
	suite.Equal(5, top[1].Quantity)
}

// --- PaymentMethodBreakdown ---

func (suite *RecorderServiceTestSuite) TestPaymentMethodBreakdown_LargestFirst() {
	ctx := context.Background()
	sales := []domain.Sale{
		saleAt(suite.now.Add(-1*time.Hour), "100", domain.PaymentCash),
		saleAt(suite.now.Add(-2*time.Hour), "300", domain.PaymentUPI),
		saleAt(suite.now.Add(-3*time.Hour), "50", domain.PaymentCash),
	}
	suite.mockSales.On("ListSales", ctx).Return(sales, nil).Once()

	breakdown, err := suite.service.PaymentMethodBreakdown(ctx, domain.WindowToday)

	suite.Require().NoError(err)
	suite.Require().Len(breakdown, 2)
	suite.Equal(domain.PaymentUPI, breakdown[0].PaymentType)
	suite.Equal("300", breakdown[0].Total.String())
	suite.Equal(1, breakdown[0].Count)
	suite.Equal(domain.PaymentCash, breakdown[1].PaymentType)
	suite.Equal("150", breakdown[1].Total.String())
	suite.Equal(2, breakdown[1].Count)
}

// --- HourlyBreakdown ---

func (suite *RecorderServiceTestSuite) TestHourlyBreakdown_BucketsByHour() {
	ctx := context.Background()
	morning := time.Date(2024, 6, 15, 9, 15, 0, 0, time.UTC)
	noon := time.Date(2024, 6, 15, 12, 5, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt(morning, "100", domain.PaymentCash),
		saleAt(morning.Add(20*time.Minute), "50", domain.PaymentCash),
		saleAt(noon, "200", domain.PaymentUPI),
		saleAt(noon.AddDate(0, 0, -1), "999", domain.PaymentCash),
	}
	suite.mockSales.On("ListSales", ctx).Return(sales, nil).Once()

	hourly, err := suite.service.HourlyBreakdown(ctx)

	suite.Require().NoError(err)
	suite.Equal("150", hourly[9].String())
	suite.Equal("200", hourly[12].String())
	suite.True(hourly[0].IsZero())
}

// --- Expenses ---

func (suite *RecorderServiceTestSuite) TestRecordExpense_DefaultsDateAndCategory() {
	ctx := context.Background()
	suite.mockExpenses.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ExpenseID != "" && e.Date.Equal(suite.now) && e.Category == domain.DefaultProductCategory
	})).Return(nil).Once()

	expense, err := suite.service.RecordExpense(ctx, dto.CreateExpenseRequest{
		Description: "Electricity",
		Amount:      decimal.RequireFromString("1200"),
	})

	suite.Require().NoError(err)
	suite.True(expense.Date.Equal(suite.now))
	suite.mockExpenses.AssertExpectations(suite.T())
}

func (suite *RecorderServiceTestSuite) TestRecordExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()

	expense, err := suite.service.RecordExpense(ctx, dto.CreateExpenseRequest{
		Description: "Nothing",
		Amount:      decimal.Zero,
	})

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RecorderServiceTestSuite) TestUpdateExpense_PatchesInPlace() {
	ctx := context.Background()
	existing := domain.Expense{
		ExpenseID:   "e1",
		Description: "Rent",
		Amount:      decimal.RequireFromString("5000"),
		Category:    "Fixed",
		Date:        suite.now.AddDate(0, 0, -1),
	}
	suite.mockExpenses.On("FindExpenseByID", ctx, "e1").Return(&existing, nil).Once()
	suite.mockExpenses.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(decimal.RequireFromString("5500")) && e.Description == "Rent"
	})).Return(nil).Once()

	newAmount := decimal.RequireFromString("5500")
	updated, err := suite.service.UpdateExpense(ctx, "e1", dto.UpdateExpenseRequest{Amount: &newAmount})

	suite.Require().NoError(err)
	suite.Equal("5500", updated.Amount.String())
	suite.mockExpenses.AssertExpectations(suite.T())
}

func (suite *RecorderServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()
	suite.mockExpenses.On("DeleteExpense", ctx, "missing").Return(false, nil).Once()

	err := suite.service.DeleteExpense(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RecorderServiceTestSuite) TestListExpenses_NewestFirst() {
	ctx := context.Background()
	expenses := []domain.Expense{
		{ExpenseID: "old", Date: suite.now.AddDate(0, 0, -5)},
		{ExpenseID: "new", Date: suite.now},
		{ExpenseID: "mid", Date: suite.now.AddDate(0, 0, -2)},
	}
	suite.mockExpenses.On("ListExpenses", ctx).Return(expenses, nil).Once()

	listed, err := suite.service.ListExpenses(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"new", "mid", "old"}, []string{listed[0].ExpenseID, listed[1].ExpenseID, listed[2].ExpenseID})
}

func TestRecorderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecorderServiceTestSuite))
}
