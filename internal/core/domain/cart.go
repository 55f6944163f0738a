package domain

import "github.com/shopspring/decimal"

// CartLine is an ephemeral selection of a product with a quantity. UnitPrice
// and CostPriceSnapshot are captured when the line is added and do not track
// later catalog edits.
type CartLine struct {
	ProductID         string           `json:"productID"`
	Name              string           `json:"name"`
	UnitPrice         decimal.Decimal  `json:"unitPrice"`
	Quantity          int              `json:"quantity"`
	CostPriceSnapshot *decimal.Decimal `json:"costPriceSnapshot,omitempty"`
}

// LineTotal is the line's price contribution to the cart total.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// StockRequest identifies a product and the quantity a sale wants to take
// from it. Resolution tries the stable id first and falls back to a
// name+price match for legacy lines recorded without an id.
type StockRequest struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}
