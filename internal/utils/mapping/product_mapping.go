package mapping

import (
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	"github.com/minivyapar/vyapar_ledger/internal/models"
)

// ToModelProduct converts a domain Product to its stored document shape.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ID:                d.ProductID,
		Name:              d.Name,
		Emoji:             d.Icon,
		Category:          d.Category,
		CostPrice:         d.CostPrice,
		SellingPrice:      d.SellingPrice,
		Stock:             d.Stock,
		Supplier:          d.Supplier,
		Code:              d.Code,
		LowStockThreshold: d.LowStockThreshold,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainProduct converts a stored product document to a domain Product.
// Documents written before the icon/category defaults existed are patched up
// here so downstream code never needs fallback checks.
func ToDomainProduct(m models.Product) domain.Product {
	icon := m.Emoji
	if icon == "" {
		icon = domain.DefaultProductIcon
	}
	category := m.Category
	if category == "" {
		category = domain.DefaultProductCategory
	}
	threshold := m.LowStockThreshold
	if threshold <= 0 {
		threshold = domain.DefaultLowStockThreshold
	}
	return domain.Product{
		ProductID:         m.ID,
		Name:              m.Name,
		Category:          category,
		CostPrice:         m.CostPrice,
		SellingPrice:      m.SellingPrice,
		Stock:             m.Stock,
		LowStockThreshold: threshold,
		Supplier:          m.Supplier,
		Code:              m.Code,
		Icon:              icon,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainProductSlice converts a slice of stored products to domain Products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
