package domain

import "github.com/shopspring/decimal"

// AggregateKind selects which transaction log a window aggregate reads.
type AggregateKind string

const (
	AggregateSales    AggregateKind = "SALES"
	AggregateExpenses AggregateKind = "EXPENSES"
)

// WindowTotals is the result of aggregating one transaction kind over a window.
type WindowTotals struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Average returns the mean transaction value, zero when the window is empty.
func (w WindowTotals) Average() decimal.Decimal {
	if w.Count == 0 {
		return decimal.Zero
	}
	return w.Total.Div(decimal.NewFromInt(int64(w.Count)))
}

// TopProduct is one row of the best-sellers report, ranked by revenue.
type TopProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// PaymentMethodTotals summarises sales settled with one payment type.
type PaymentMethodTotals struct {
	PaymentType PaymentType     `json:"paymentType"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
}
