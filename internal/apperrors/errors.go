package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("record not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrEmptyCart indicates a checkout was attempted on a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// ErrOutOfStock indicates a product has no remaining stock to add to a cart.
var ErrOutOfStock = errors.New("product is out of stock")

// ErrCreditSettled indicates a credit has already been marked paid.
var ErrCreditSettled = errors.New("credit already settled")

// ErrStorageDegraded indicates the durable store is unavailable and state is
// memory-only for the current session.
var ErrStorageDegraded = errors.New("durable storage unavailable")

// StockShortfall describes a single sale line whose requested quantity
// exceeds the available stock. It carries exactly what a UI needs to render
// an actionable message ("Only 3 units of Milk available").
type StockShortfall struct {
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func (s StockShortfall) String() string {
	return fmt.Sprintf("only %d units of %s available (requested %d)", s.Available, s.Name, s.Requested)
}

// InsufficientStockError is returned when a sale cannot be reconciled because
// one or more lines would drive stock negative. No stock is mutated when this
// error is returned.
type InsufficientStockError struct {
	Shortfalls []StockShortfall
}

func (e *InsufficientStockError) Error() string {
	msgs := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		msgs = append(msgs, s.String())
	}
	return "insufficient stock: " + strings.Join(msgs, "; ")
}

// AsInsufficientStock unwraps err into an InsufficientStockError, if it is one.
func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}
