package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit is the stored shape of a customer IOU. The whole credit book is
// persisted as one JSON array under the creditsData preference key.
type Credit struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
	PaidDate     *time.Time      `json:"paidDate,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// CartLine is the stored shape of one reload-snapshot cart line.
type CartLine struct {
	ProductID string           `json:"productId"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	Quantity  int              `json:"quantity"`
	CostPrice *decimal.Decimal `json:"costPrice,omitempty"`
}
