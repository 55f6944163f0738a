package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	portssvc "github.com/minivyapar/vyapar_ledger/internal/core/ports/services"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
	"github.com/minivyapar/vyapar_ledger/internal/models"
	"github.com/minivyapar/vyapar_ledger/internal/utils/mapping"
)

// cartSession is the single mutable staging area for an in-progress sale.
// One session exists per device. It is not safe for concurrent use: the
// caller disables re-entrant triggers while a checkout is in flight, exactly
// as the UI disables its checkout control.
type cartSession struct {
	BaseService
	inventory portssvc.InventorySvcFacade
	recorder  portssvc.RecorderWriterSvc
	prefs     portsrepo.PreferenceRepository
	lines     []domain.CartLine
}

// NewCartSession creates an empty cart session bound to the ledger and
// recorder it checks out through.
func NewCartSession(inventory portssvc.InventorySvcFacade, recorder portssvc.RecorderWriterSvc, prefs portsrepo.PreferenceRepository) portssvc.CartSessionSvc {
	return &cartSession{
		inventory: inventory,
		recorder:  recorder,
		prefs:     prefs,
	}
}

// Ensure cartSession implements the CartSessionSvc interface
var _ portssvc.CartSessionSvc = (*cartSession)(nil)

// AddLine stages quantity units of a product. Live stock is consulted at
// call time: the request is clamped to what the catalog has left beyond the
// cart's existing claim, and re-validated again at checkout because stock
// can change between the two calls.
func (s *cartSession) AddLine(ctx context.Context, productID string, quantity int) (*dto.AddLineResult, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	product, err := s.inventory.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrOutOfStock, product.Name)
	}

	lineIdx := s.findLine(productID)
	inCart := 0
	if lineIdx >= 0 {
		inCart = s.lines[lineIdx].Quantity
	}

	available := product.Stock - inCart
	if available <= 0 {
		return nil, fmt.Errorf("%w: cart already holds all %d units of %s", apperrors.ErrOutOfStock, product.Stock, product.Name)
	}

	added := min(quantity, available)
	if lineIdx >= 0 {
		s.lines[lineIdx].Quantity += added
	} else {
		costSnapshot := product.CostPrice
		s.lines = append(s.lines, domain.CartLine{
			ProductID:         product.ProductID,
			Name:              product.Name,
			UnitPrice:         product.SellingPrice,
			Quantity:          added,
			CostPriceSnapshot: &costSnapshot,
		})
		lineIdx = len(s.lines) - 1
	}
	s.persistSnapshot(ctx)

	status := dto.LineAdded
	if added < quantity {
		status = dto.LinePartiallyFulfilled
	}
	return &dto.AddLineResult{
		Status:    status,
		Requested: quantity,
		Added:     added,
		Line:      s.lines[lineIdx],
	}, nil
}

// RemoveLine decrements a staged line; at or below zero the line is dropped.
func (s *cartSession) RemoveLine(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	lineIdx := s.findLine(productID)
	if lineIdx < 0 {
		return apperrors.ErrNotFound
	}

	s.lines[lineIdx].Quantity -= quantity
	if s.lines[lineIdx].Quantity <= 0 {
		s.lines = append(s.lines[:lineIdx], s.lines[lineIdx+1:]...)
	}
	s.persistSnapshot(ctx)
	return nil
}

// Lines returns a copy of the staged lines in insertion order.
func (s *cartSession) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of staged line totals.
func (s *cartSession) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// Clear empties the cart and removes the persisted reload snapshot, so an
// empty cart cannot resurrect on the next reload.
func (s *cartSession) Clear(ctx context.Context) error {
	s.lines = nil
	if err := s.prefs.DeletePreference(ctx, domain.PrefCartSnapshot); err != nil {
		return fmt.Errorf("failed to clear cart snapshot: %w", err)
	}
	return nil
}

// Restore rebuilds the cart from the persisted reload snapshot. A missing
// snapshot leaves the cart empty; the snapshot is best-effort recovery, not
// a transactional guarantee.
func (s *cartSession) Restore(ctx context.Context) error {
	var stored []models.CartLine
	if err := s.prefs.GetPreference(ctx, domain.PrefCartSnapshot, &stored); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to restore cart snapshot: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(stored))
	for _, m := range stored {
		if m.Quantity <= 0 {
			continue
		}
		lines = append(lines, mapping.ToDomainCartLine(m))
	}
	s.lines = lines
	return nil
}

// Checkout re-validates every line's current availability, reconciles the
// sale against the ledger, records the transaction and clears the cart. On
// insufficient stock the cart is left untouched so the operator can adjust
// quantities and retry.
func (s *cartSession) Checkout(ctx context.Context, paymentType domain.PaymentType) (*dto.Receipt, error) {
	if len(s.lines) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	requests := make([]domain.StockRequest, len(s.lines))
	for i, line := range s.lines {
		requests[i] = domain.StockRequest{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
	}

	if _, err := s.inventory.ReconcileSale(ctx, requests); err != nil {
		if _, short := apperrors.AsInsufficientStock(err); short {
			s.LogInfo(ctx, "Checkout rejected, cart left for correction")
		}
		return nil, err
	}

	items := make([]domain.SaleItem, len(s.lines))
	for i, line := range s.lines {
		items[i] = domain.SaleItem{
			ProductID:         line.ProductID,
			Name:              line.Name,
			UnitPrice:         line.UnitPrice,
			Quantity:          line.Quantity,
			LineTotal:         line.LineTotal(),
			CostPriceSnapshot: line.CostPriceSnapshot,
		}
	}
	total := s.Total()

	sale, err := s.recorder.RecordSale(ctx, items, total, paymentType)
	if err != nil {
		// Stock is already reconciled at this point; surfacing the error
		// without clearing lets the operator retry the recording alone.
		s.LogError(ctx, err, "Failed to record reconciled sale")
		return nil, err
	}

	s.lines = nil
	if err := s.prefs.DeletePreference(ctx, domain.PrefCartSnapshot); err != nil {
		s.LogWarn(ctx, "Failed to clear cart snapshot after checkout", slog.String("error", err.Error()))
	}

	return &dto.Receipt{
		SaleID:      sale.SaleID,
		Items:       sale.Items,
		Total:       sale.Total,
		PaymentType: sale.PaymentType,
		Timestamp:   sale.Timestamp,
	}, nil
}

func (s *cartSession) findLine(productID string) int {
	for i, line := range s.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// persistSnapshot writes the reload snapshot best-effort; a failed write
// never aborts the cart mutation that triggered it.
func (s *cartSession) persistSnapshot(ctx context.Context) {
	stored := make([]models.CartLine, len(s.lines))
	for i, line := range s.lines {
		stored[i] = mapping.ToModelCartLine(line)
	}
	if err := s.prefs.SetPreference(ctx, domain.PrefCartSnapshot, stored); err != nil {
		s.LogWarn(ctx, "Failed to persist cart snapshot", slog.String("error", err.Error()))
	}
}
