package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is one stored line of a sale document. The price/total key names
// match documents written by earlier versions of the app; costPrice is
// optional because old documents predate cost tracking.
type SaleItem struct {
	ProductID string           `json:"productId"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	Quantity  int              `json:"quantity"`
	Total     decimal.Decimal  `json:"total"`
	CostPrice *decimal.Decimal `json:"costPrice,omitempty"`
}

// Sale is the stored document shape of a committed sale.
type Sale struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Items       []SaleItem      `json:"items"`
	Total       decimal.Decimal `json:"total"`
	PaymentType string          `json:"paymentType"`
}

// Expense is the stored document shape of an expense entry.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	AuditFields
}
