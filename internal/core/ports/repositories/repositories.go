package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProductRepo    ProductRepository
	SaleRepo       SaleRepository
	ExpenseRepo    ExpenseRepository
	CreditRepo     CreditRepository
	PreferenceRepo PreferenceRepository

	// Store is the underlying document store; exposed for mode checks and
	// the factory-reset flow.
	Store DocumentStore
}
