// Package stats reduces the inventory and sales stores into a statistics
// snapshot. It holds no state of its own; every call recomputes from scratch.
package stats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/repository"
)

// Service is the read-side statistics aggregator.
type Service struct {
	inventory repository.InventoryRepository
	sales     repository.SalesRepository
	logger    *zap.Logger
}

// NewService wires a new aggregator instance.
func NewService(inventory repository.InventoryRepository, sales repository.SalesRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{inventory: inventory, sales: sales, logger: logger}
}

// Aggregate builds the full statistics snapshot from current store state.
func (s *Service) Aggregate(ctx context.Context) (models.Statistics, error) {
	lots, err := s.inventory.ListLots(ctx)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("list lots: %w", err)
	}

	sales, err := s.sales.All(ctx)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("list sales: %w", err)
	}

	var unitsAvailable, unitsProduced int
	for _, lot := range lots {
		unitsAvailable += lot.UnitsAvailable
		unitsProduced += lot.UnitsProduced
	}
	unitsSold := unitsProduced - unitsAvailable

	bySeller := map[string]models.SellerStats{}
	var totalCash, totalReceivable, totalRevenue float64
	for _, sale := range sales {
		entry := bySeller[sale.SellerName]
		entry.Count++

		switch sale.PaymentType {
		case models.PaymentCash:
			entry.CashTotal += sale.Price
			totalCash += sale.Price
		case models.PaymentCredit:
			entry.CreditTotal += sale.Price
			if !sale.Paid {
				totalReceivable += sale.Price
			}
		}

		totalRevenue += sale.Price
		bySeller[sale.SellerName] = entry
	}

	// Gross profit uses only the current lot's cost basis even when sold
	// units came from older lots. Known approximation, kept deliberately.
	var grossProfit float64
	if current := currentLot(lots); current != nil && current.UnitsProduced > 0 {
		grossProfit = totalRevenue - current.TotalProductionCost*(float64(unitsSold)/float64(current.UnitsProduced))
	}

	return models.Statistics{
		Lots:           lots,
		TotalLots:      len(lots),
		UnitsAvailable: unitsAvailable,
		UnitsProduced:  unitsProduced,
		UnitsSold:      unitsSold,
		Sales: models.SalesStats{
			TotalSales: len(sales),
			BySeller:   bySeller,
		},
		Finances: models.FinanceStats{
			TotalCash:       totalCash,
			TotalReceivable: totalReceivable,
			TotalRevenue:    totalRevenue,
			GrossProfit:     grossProfit,
		},
	}, nil
}

func currentLot(lots []models.Lot) *models.Lot {
	var current *models.Lot
	for i := range lots {
		if current == nil || lots[i].ID > current.ID {
			current = &lots[i]
		}
	}
	return current
}
