package mapping

import (
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	"github.com/minivyapar/vyapar_ledger/internal/models"
)

// ToModelSale converts a domain Sale to its stored document shape.
func ToModelSale(d domain.Sale) models.Sale {
	items := make([]models.SaleItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = models.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
			Total:     item.LineTotal,
			CostPrice: item.CostPriceSnapshot,
		}
	}
	return models.Sale{
		ID:          d.SaleID,
		Timestamp:   d.Timestamp,
		Items:       items,
		Total:       d.Total,
		PaymentType: string(d.PaymentType),
	}
}

// ToDomainSale converts a stored sale document to a domain Sale.
func ToDomainSale(m models.Sale) domain.Sale {
	items := make([]domain.SaleItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = domain.SaleItem{
			ProductID:         item.ProductID,
			Name:              item.Name,
			UnitPrice:         item.Price,
			Quantity:          item.Quantity,
			LineTotal:         item.Total,
			CostPriceSnapshot: item.CostPrice,
		}
	}
	return domain.Sale{
		SaleID:      m.ID,
		Timestamp:   m.Timestamp,
		Items:       items,
		Total:       m.Total,
		PaymentType: domain.PaymentType(m.PaymentType),
	}
}

// ToDomainSaleSlice converts stored sale documents to domain Sales.
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}

// ToModelExpense converts a domain Expense to its stored document shape.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ID:          d.ExpenseID,
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        d.Date,
		Notes:       d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainExpense converts a stored expense document to a domain Expense.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		Date:        m.Date,
		Notes:       m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainExpenseSlice converts stored expense documents to domain Expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
