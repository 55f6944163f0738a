package domain

import "github.com/shopspring/decimal"

// DefaultProductIcon is the placeholder glyph assigned to products created
// without one.
const DefaultProductIcon = "\U0001F4E6" // 📦

// DefaultProductCategory is assigned to products created without a category.
const DefaultProductCategory = "General"

// DefaultLowStockThreshold is assigned to products created, or stored,
// without one.
const DefaultLowStockThreshold = 10

// Product is a sellable catalog entry. Stock is owned exclusively by the
// inventory ledger; nothing else writes it.
type Product struct {
	ProductID         string          `json:"productID"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	Supplier          string          `json:"supplier,omitempty"`
	Code              string          `json:"code,omitempty"`
	Icon              string          `json:"icon"`
	AuditFields
}

// IsLowStock reports whether the product is at or below its low-stock threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
