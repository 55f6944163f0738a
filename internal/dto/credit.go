package dto

import "github.com/shopspring/decimal"

// CreateCreditRequest carries a new customer IOU.
type CreateCreditRequest struct {
	CustomerName string          `json:"customerName" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	Phone        string          `json:"phone,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// UpdateCreditRequest is a partial patch applied to a stored credit.
// Status cannot be patched; the only status transition is MarkPaid.
type UpdateCreditRequest struct {
	CustomerName *string          `json:"customerName,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}
