package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
)

// AddLineStatus reports how much of an AddLine request could be honoured.
type AddLineStatus string

const (
	// LineAdded means the full requested quantity went into the cart.
	LineAdded AddLineStatus = "ADDED"
	// LinePartiallyFulfilled means the quantity was clamped to what the
	// catalog had left beyond what the cart already held.
	LinePartiallyFulfilled AddLineStatus = "PARTIALLY_FULFILLED"
)

// AddLineResult describes the outcome of adding a product to the cart.
type AddLineResult struct {
	Status    AddLineStatus   `json:"status"`
	Requested int             `json:"requested"`
	Added     int             `json:"added"`
	Line      domain.CartLine `json:"line"`
}

// Receipt is the caller-facing copy of a committed checkout.
type Receipt struct {
	SaleID      string             `json:"saleID"`
	Items       []domain.SaleItem  `json:"items"`
	Total       decimal.Decimal    `json:"total"`
	PaymentType domain.PaymentType `json:"paymentType"`
	Timestamp   time.Time          `json:"timestamp"`
}
