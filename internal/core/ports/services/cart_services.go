package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
)

// CartSessionSvc is the single mutable staging area for an in-progress sale.
// One session exists per device; the caller must serialize Checkout calls
// since the core provides no locking across suspend points.
type CartSessionSvc interface {
	// AddLine stages quantity units of a product, clamping to what the
	// catalog has left beyond the cart's existing claim. Returns
	// apperrors.ErrOutOfStock when nothing can be added.
	AddLine(ctx context.Context, productID string, quantity int) (*dto.AddLineResult, error)

	// RemoveLine decrements a line; at or below zero the line is dropped.
	RemoveLine(ctx context.Context, productID string, quantity int) error

	// Lines returns a copy of the staged lines in insertion order.
	Lines() []domain.CartLine

	// Total is the sum of staged line totals.
	Total() decimal.Decimal

	// Clear empties the cart and removes the persisted reload snapshot.
	Clear(ctx context.Context) error

	// Restore rebuilds the cart from the persisted reload snapshot, if any.
	Restore(ctx context.Context) error

	// Checkout re-validates every line against live stock, reconciles the
	// sale, records it, clears the cart and returns a receipt. On
	// insufficient stock the cart is left untouched for correction.
	Checkout(ctx context.Context, paymentType domain.PaymentType) (*dto.Receipt, error)
}
