package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	portssvc "github.com/minivyapar/vyapar_ledger/internal/core/ports/services"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
)

var (
	ErrNameRequired      = errors.New("product name is required")
	ErrNonPositivePrice  = errors.New("selling price must be positive")
	ErrNegativeCostPrice = errors.New("cost price must not be negative")
	ErrNegativeStock     = errors.New("stock must not be negative")
	ErrNegativeThreshold = errors.New("low stock threshold must not be negative")
)

// inventoryService is the single source of truth for product stock. Nothing
// outside this service writes the stock field.
type inventoryService struct {
	BaseService
	productRepo     portsrepo.ProductRepository
	validate        *validator.Validate
	defaultLowStock int
	now             func() time.Time
}

// InventoryServiceOption is a functional option for configuring the inventory service
type InventoryServiceOption func(*inventoryService)

// WithDefaultLowStockThreshold overrides the threshold applied to products
// created without one.
func WithDefaultLowStockThreshold(threshold int) InventoryServiceOption {
	return func(s *inventoryService) {
		if threshold >= 0 {
			s.defaultLowStock = threshold
		}
	}
}

// WithInventoryClock overrides the wall clock, for tests.
func WithInventoryClock(now func() time.Time) InventoryServiceOption {
	return func(s *inventoryService) {
		s.now = now
	}
}

// NewInventoryService creates a new inventory ledger service.
func NewInventoryService(productRepo portsrepo.ProductRepository, options ...InventoryServiceOption) portssvc.InventorySvcFacade {
	svc := &inventoryService{
		productRepo:     productRepo,
		validate:        validator.New(),
		defaultLowStock: domain.DefaultLowStockThreshold,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure inventoryService implements the InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// CreateProduct validates the request, applies defaults for absent optional
// fields and persists the new product. Every product leaving this
// constructor is fully populated; downstream code never needs fallbacks.
func (s *inventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNameRequired)
	}
	if !req.SellingPrice.IsPositive() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNonPositivePrice)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeStock)
	}

	costPrice := decimal.Zero
	if req.CostPrice != nil {
		if req.CostPrice.IsNegative() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeCostPrice)
		}
		costPrice = *req.CostPrice
	}

	threshold := s.defaultLowStock
	if req.LowStockThreshold != nil {
		if *req.LowStockThreshold < 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeThreshold)
		}
		threshold = *req.LowStockThreshold
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = domain.DefaultProductCategory
	}
	icon := req.Icon
	if icon == "" {
		icon = domain.DefaultProductIcon
	}

	productID := req.ProductID
	if productID == "" {
		productID = uuid.NewString()
	}

	now := s.now()
	product := domain.Product{
		ProductID:         productID,
		Name:              name,
		Category:          category,
		CostPrice:         costPrice,
		SellingPrice:      req.SellingPrice,
		Stock:             req.Stock,
		LowStockThreshold: threshold,
		Supplier:          req.Supplier,
		Code:              req.Code,
		Icon:              icon,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save new product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created",
		slog.String("product_id", productID),
		slog.String("name", product.Name))
	return &product, nil
}

// UpdateProduct merges a partial patch into the stored product and
// re-validates the catalog invariants.
func (s *inventoryService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNameRequired)
		}
		product.Name = name
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			category = domain.DefaultProductCategory
		}
		product.Category = category
	}
	if req.CostPrice != nil {
		if req.CostPrice.IsNegative() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeCostPrice)
		}
		product.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		if !req.SellingPrice.IsPositive() {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNonPositivePrice)
		}
		product.SellingPrice = *req.SellingPrice
	}
	if req.LowStockThreshold != nil {
		if *req.LowStockThreshold < 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeThreshold)
		}
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.Supplier != nil {
		product.Supplier = *req.Supplier
	}
	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Icon != nil && *req.Icon != "" {
		product.Icon = *req.Icon
	}

	product.UpdatedAt = s.now()

	if err := s.productRepo.SaveProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to save updated product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog. A second delete of the
// same id reports apperrors.ErrNotFound, which callers treat as a normal
// outcome of an idempotent delete.
func (s *inventoryService) DeleteProduct(ctx context.Context, productID string) error {
	found, err := s.productRepo.DeleteProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if !found {
		return apperrors.ErrNotFound
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}

// GetProduct retrieves a product by id.
func (s *inventoryService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves the whole catalog.
func (s *inventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

// SearchProducts filters the catalog by a case-insensitive substring match
// over name, category, supplier and code.
func (s *inventoryService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return products, nil
	}

	matches := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Supplier), term) ||
			strings.Contains(strings.ToLower(p.Code), term) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// LowStockProducts returns products at or below their low-stock threshold,
// lowest stock first so the most urgent restock leads, ties broken by name.
func (s *inventoryService) LowStockProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		if low[i].Stock != low[j].Stock {
			return low[i].Stock < low[j].Stock
		}
		return low[i].Name < low[j].Name
	})
	return low, nil
}

// AdjustStock applies a signed stock correction (restock or shrinkage)
// outside the sale path. The ledger stays the sole writer of stock.
func (s *inventoryService) AdjustStock(ctx context.Context, productID string, delta int) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	newStock := product.Stock + delta
	if newStock < 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeStock)
	}
	product.Stock = newStock
	product.UpdatedAt = s.now()

	if err := s.productRepo.SaveProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to save stock adjustment", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to adjust stock for %s: %w", productID, err)
	}

	s.LogInfo(ctx, "Stock adjusted",
		slog.String("product_id", productID),
		slog.Int("delta", delta),
		slog.Int("stock", product.Stock))
	return product, nil
}

// ReconcileSale applies a sale's stock impact. Every request is validated
// against current stock before anything mutates: if any line falls short the
// whole batch is rejected with per-line shortfall details and no stock
// changes. On success every affected product is decremented and persisted.
func (s *inventoryService) ReconcileSale(ctx context.Context, requests []domain.StockRequest) ([]domain.Product, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: no lines to reconcile", apperrors.ErrValidation)
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for reconciliation: %w", err)
	}

	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ProductID] = &products[i]
	}

	// Requests for the same product are summed so a sale holding two lines
	// of one product cannot slip past the per-line check.
	wanted := make(map[string]int)
	order := make([]string, 0, len(requests))
	var shortfalls []apperrors.StockShortfall

	for _, req := range requests {
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for %s", apperrors.ErrValidation, req.Name)
		}

		product := s.resolve(byID, products, req)
		if product == nil {
			shortfalls = append(shortfalls, apperrors.StockShortfall{
				Name:      req.Name,
				Requested: req.Quantity,
				Available: 0,
			})
			continue
		}
		if _, seen := wanted[product.ProductID]; !seen {
			order = append(order, product.ProductID)
		}
		wanted[product.ProductID] += req.Quantity
	}

	for _, productID := range order {
		product := byID[productID]
		if wanted[productID] > product.Stock {
			shortfalls = append(shortfalls, apperrors.StockShortfall{
				Name:      product.Name,
				Requested: wanted[productID],
				Available: product.Stock,
			})
		}
	}

	if len(shortfalls) > 0 {
		s.LogInfo(ctx, "Sale rejected, insufficient stock", slog.Int("lines_short", len(shortfalls)))
		return nil, &apperrors.InsufficientStockError{Shortfalls: shortfalls}
	}

	now := s.now()
	updated := make([]domain.Product, 0, len(order))
	for _, productID := range order {
		product := byID[productID]
		// Floors at zero even if a concurrent edit shrank stock between
		// validation and decrement. Conservative policy: never crash the
		// session over a negative that validation already screened.
		product.Stock = max(0, product.Stock-wanted[productID])
		product.UpdatedAt = now
		updated = append(updated, *product)
	}

	if err := s.productRepo.SaveProducts(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to persist reconciled stock")
		return nil, fmt.Errorf("failed to persist reconciled stock: %w", err)
	}

	s.LogInfo(ctx, "Sale reconciled", slog.Int("products", len(updated)))
	return updated, nil
}

// resolve finds the catalog product for a stock request: stable id first,
// then the legacy name+price match for lines recorded without an id.
func (s *inventoryService) resolve(byID map[string]*domain.Product, products []domain.Product, req domain.StockRequest) *domain.Product {
	if req.ProductID != "" {
		if product, ok := byID[req.ProductID]; ok {
			return product
		}
	}
	if req.Name == "" {
		return nil
	}
	for i := range products {
		if products[i].Name == req.Name && products[i].SellingPrice.Equal(req.UnitPrice) {
			return &products[i]
		}
	}
	return nil
}
