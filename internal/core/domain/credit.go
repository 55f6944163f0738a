package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditStatus indicates whether a customer IOU is still owed.
type CreditStatus string

const (
	CreditActive CreditStatus = "active"
	CreditPaid   CreditStatus = "paid"
)

// Credit is a customer IOU. Status moves monotonically from active to paid;
// a settled credit is never reopened.
type Credit struct {
	CreditID     string          `json:"creditID"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Status       CreditStatus    `json:"status"`
	PaidDate     *time.Time      `json:"paidDate,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}
