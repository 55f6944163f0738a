package dto

import "github.com/shopspring/decimal"

// CreateProductRequest carries everything needed to create a catalog product.
// Optional fields are pointers so the smart constructor can tell "absent"
// from "explicit zero" and apply defaults exactly once, at creation.
type CreateProductRequest struct {
	ProductID         string           `json:"productID"` // optional; allocated when empty
	Name              string           `json:"name" validate:"required"`
	Category          string           `json:"category"`
	CostPrice         *decimal.Decimal `json:"costPrice,omitempty"`
	SellingPrice      decimal.Decimal  `json:"sellingPrice" validate:"required"`
	Stock             int              `json:"stock" validate:"gte=0"`
	LowStockThreshold *int             `json:"lowStockThreshold,omitempty"`
	Supplier          string           `json:"supplier,omitempty"`
	Code              string           `json:"code,omitempty"`
	Icon              string           `json:"icon,omitempty"`
}

// UpdateProductRequest is a partial patch; nil fields are left untouched.
// Stock cannot be patched here; stock moves only through the ledger's
// reconciliation and adjustment paths.
type UpdateProductRequest struct {
	Name              *string          `json:"name,omitempty"`
	Category          *string          `json:"category,omitempty"`
	CostPrice         *decimal.Decimal `json:"costPrice,omitempty"`
	SellingPrice      *decimal.Decimal `json:"sellingPrice,omitempty"`
	LowStockThreshold *int             `json:"lowStockThreshold,omitempty"`
	Supplier          *string          `json:"supplier,omitempty"`
	Code              *string          `json:"code,omitempty"`
	Icon              *string          `json:"icon,omitempty"`
}
