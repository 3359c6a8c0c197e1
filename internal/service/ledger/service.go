// Package ledger orchestrates sales: it validates payment terms, consumes
// stock from the current lot and appends the resulting sale record.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/repository"
)

var (
	// ErrInvalidPaymentType rejects payment types outside {cash, credit}.
	ErrInvalidPaymentType = errors.New("payment type must be cash or credit")

	// ErrInvalidCreditTerm rejects credit terms outside {8, 15} days.
	ErrInvalidCreditTerm = errors.New("credit term must be 8 or 15 days")

	// ErrStockUnavailable means there is no current lot, it is depleted, or
	// another sale won the race for the last unit. Nothing was mutated.
	ErrStockUnavailable = errors.New("no stock available in the current lot")

	// ErrSaleNotFound means the sale id does not exist.
	ErrSaleNotFound = errors.New("sale not found")
)

// Service is the sales ledger.
type Service struct {
	inventory repository.InventoryRepository
	sales     repository.SalesRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a new ledger instance.
func NewService(inventory repository.InventoryRepository, sales repository.SalesRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		inventory: inventory,
		sales:     sales,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterSale sells exactly one unit from the current lot on behalf of the
// authenticated seller. The decrement is atomic, so losing a race for the
// last unit surfaces as ErrStockUnavailable rather than negative stock.
func (s *Service) RegisterSale(ctx context.Context, req models.RegisterSaleRequest, seller models.Seller) (models.Sale, error) {
	if req.PaymentType != models.PaymentCash && req.PaymentType != models.PaymentCredit {
		return models.Sale{}, ErrInvalidPaymentType
	}

	creditDays := models.DefaultCreditDays
	if req.PaymentType == models.PaymentCredit && req.CreditDays != 0 {
		if req.CreditDays != models.DefaultCreditDays && req.CreditDays != models.LongCreditDays {
			return models.Sale{}, ErrInvalidCreditTerm
		}
		creditDays = req.CreditDays
	}

	lot, err := s.inventory.CurrentLot(ctx)
	if err != nil {
		return models.Sale{}, fmt.Errorf("load current lot: %w", err)
	}
	if lot == nil || lot.UnitsAvailable <= 0 {
		return models.Sale{}, ErrStockUnavailable
	}

	ok, err := s.inventory.DecrementStock(ctx, lot.ID, 1)
	if err != nil {
		return models.Sale{}, fmt.Errorf("decrement stock: %w", err)
	}
	if !ok {
		return models.Sale{}, ErrStockUnavailable
	}

	today := s.now()
	sale := models.Sale{
		LotID:         lot.ID,
		SellerID:      seller.ID,
		SellerName:    seller.Name,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PaymentType:   req.PaymentType,
		SaleDate:      today.Format(models.DateLayout),
		Paid:          req.PaymentType == models.PaymentCash,
		Price:         lot.UnitPrice,
	}
	if req.PaymentType == models.PaymentCredit {
		sale.DueDate = today.AddDate(0, 0, creditDays).Format(models.DateLayout)
	}

	saved, err := s.sales.Append(ctx, sale)
	if err != nil {
		// The unit was already consumed; give it back so stock and the sale
		// record stay reconciled.
		if restoreErr := s.inventory.RestoreStock(ctx, lot.ID, 1); restoreErr != nil {
			s.logger.Error("failed to restore stock after append failure",
				zap.Int("lot_id", lot.ID), zap.Error(restoreErr))
		}
		return models.Sale{}, fmt.Errorf("append sale: %w", err)
	}

	s.logger.Info("sale registered",
		zap.Int("sale_id", saved.ID),
		zap.Int("lot_id", saved.LotID),
		zap.String("payment_type", string(saved.PaymentType)),
		zap.String("seller", saved.SellerName))

	return saved, nil
}

// ListSales returns the full sale sequence.
func (s *Service) ListSales(ctx context.Context) ([]models.Sale, error) {
	sales, err := s.sales.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// ListOverdueCredit returns unpaid credit sales whose due date has passed.
// Dates are ISO formatted, so the string comparison is chronological.
func (s *Service) ListOverdueCredit(ctx context.Context) ([]models.Sale, error) {
	sales, err := s.sales.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	today := s.now().Format(models.DateLayout)

	overdue := []models.Sale{}
	for _, sale := range sales {
		if sale.PaymentType == models.PaymentCredit && !sale.Paid && sale.DueDate != "" && sale.DueDate <= today {
			overdue = append(overdue, sale)
		}
	}

	return overdue, nil
}

// MarkPaid flips a sale to paid. Calling it again on an already-paid sale is
// a no-op success.
func (s *Service) MarkPaid(ctx context.Context, saleID int) error {
	ok, err := s.sales.SetPaid(ctx, saleID)
	if err != nil {
		return fmt.Errorf("mark sale %d paid: %w", saleID, err)
	}
	if !ok {
		return ErrSaleNotFound
	}

	s.logger.Info("sale marked as paid", zap.Int("sale_id", saleID))
	return nil
}
