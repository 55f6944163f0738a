package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for stored documents.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Product is the stored document shape of a catalog product. The emoji key
// name is kept for compatibility with documents written by earlier versions
// of the app.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Emoji             string          `json:"emoji"`
	Category          string          `json:"category"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	Stock             int             `json:"stock"`
	Supplier          string          `json:"supplier,omitempty"`
	Code              string          `json:"code,omitempty"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	AuditFields
}
