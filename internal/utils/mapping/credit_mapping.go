package mapping

import (
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	"github.com/minivyapar/vyapar_ledger/internal/models"
)

// ToModelCredit converts a domain Credit to its stored shape.
func ToModelCredit(d domain.Credit) models.Credit {
	return models.Credit{
		ID:           d.CreditID,
		CustomerName: d.CustomerName,
		Phone:        d.Phone,
		Amount:       d.Amount,
		Date:         d.Date,
		Status:       string(d.Status),
		PaidDate:     d.PaidDate,
		Notes:        d.Notes,
	}
}

// ToDomainCredit converts a stored credit to a domain Credit. Documents
// written without a status are treated as still active.
func ToDomainCredit(m models.Credit) domain.Credit {
	status := domain.CreditStatus(m.Status)
	if status == "" {
		status = domain.CreditActive
	}
	return domain.Credit{
		CreditID:     m.ID,
		CustomerName: m.CustomerName,
		Phone:        m.Phone,
		Amount:       m.Amount,
		Date:         m.Date,
		Status:       status,
		PaidDate:     m.PaidDate,
		Notes:        m.Notes,
	}
}

// ToModelCreditSlice converts domain Credits to their stored shapes.
func ToModelCreditSlice(ds []domain.Credit) []models.Credit {
	ms := make([]models.Credit, len(ds))
	for i, d := range ds {
		ms[i] = ToModelCredit(d)
	}
	return ms
}

// ToDomainCreditSlice converts stored credits to domain Credits.
func ToDomainCreditSlice(ms []models.Credit) []domain.Credit {
	ds := make([]domain.Credit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCredit(m)
	}
	return ds
}

// ToModelCartLine converts a domain cart line to its snapshot shape.
func ToModelCartLine(d domain.CartLine) models.CartLine {
	return models.CartLine{
		ProductID: d.ProductID,
		Name:      d.Name,
		Price:     d.UnitPrice,
		Quantity:  d.Quantity,
		CostPrice: d.CostPriceSnapshot,
	}
}

// ToDomainCartLine converts a snapshot cart line to its domain shape.
func ToDomainCartLine(m models.CartLine) domain.CartLine {
	return domain.CartLine{
		ProductID:         m.ProductID,
		Name:              m.Name,
		UnitPrice:         m.Price,
		Quantity:          m.Quantity,
		CostPriceSnapshot: m.CostPrice,
	}
}
