package docstore

import (
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every typed repository over one document store.
func NewRepositoryProvider(store portsrepo.DocumentStore) *portsrepo.RepositoryProvider {
	prefs := NewPreferenceRepository(store)
	return &portsrepo.RepositoryProvider{
		ProductRepo:    NewProductRepository(store),
		SaleRepo:       NewSaleRepository(store),
		ExpenseRepo:    NewExpenseRepository(store),
		CreditRepo:     NewCreditRepository(prefs),
		PreferenceRepo: prefs,
		Store:          store,
	}
}
