package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType indicates how a sale was settled.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentUPI    PaymentType = "upi"
	PaymentCard   PaymentType = "card"
	PaymentCredit PaymentType = "credit"
)

// SaleItem is one line of a committed sale. Prices are captured at sale time
// and never re-read from the catalog. CostPriceSnapshot is nil for lines
// recorded before cost tracking existed; such lines are excluded from profit
// math rather than treated as zero-profit.
type SaleItem struct {
	ProductID         string           `json:"productID"`
	Name              string           `json:"name"`
	UnitPrice         decimal.Decimal  `json:"unitPrice"`
	Quantity          int              `json:"quantity"`
	LineTotal         decimal.Decimal  `json:"lineTotal"`
	CostPriceSnapshot *decimal.Decimal `json:"costPriceSnapshot,omitempty"`
}

// Sale is an immutable record of a completed checkout. Once recorded it is
// never mutated; corrections are new records.
type Sale struct {
	SaleID      string          `json:"saleID"`
	Items       []SaleItem      `json:"items"`
	Total       decimal.Decimal `json:"total"`
	PaymentType PaymentType     `json:"paymentType"`
	Timestamp   time.Time       `json:"timestamp"`
}

// HasCostSnapshots reports whether every line of the sale carries a cost
// price snapshot, making the sale eligible for profit aggregation.
func (s Sale) HasCostSnapshots() bool {
	for _, item := range s.Items {
		if item.CostPriceSnapshot == nil {
			return false
		}
	}
	return len(s.Items) > 0
}

// Expense is a recorded business cost. Unlike sales, expenses are mutable by
// id: the edit flow patches the stored record in place.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	AuditFields
}
