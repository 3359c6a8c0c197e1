// Package inventory validates and opens production lots.
package inventory

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
	// ErrNoIngredients rejects a lot without at least one ingredient.
	ErrNoIngredients = errors.New("a lot needs at least one ingredient")

	// ErrInvalidUnits rejects non-positive production counts.
	ErrInvalidUnits = errors.New("units produced must be positive")

	// ErrInvalidPrice rejects non-positive unit prices or production costs.
	ErrInvalidPrice = errors.New("unit price and production cost must be positive")
)

// Service owns lot creation and current-lot lookups.
type Service struct {
	inventory repository.InventoryRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a new inventory service instance.
func NewService(inventory repository.InventoryRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		inventory: inventory,
		logger:    logger,
		now:       time.Now,
	}
}

// AddLot validates the request, derives each ingredient's total cost and
// persists the new lot with its full production count available.
func (s *Service) AddLot(ctx context.Context, req models.AddLotRequest) (models.Lot, error) {
	if len(req.Ingredients) == 0 {
		return models.Lot{}, ErrNoIngredients
	}
	if req.UnitsProduced <= 0 {
		return models.Lot{}, ErrInvalidUnits
	}
	if req.UnitPrice <= 0 || req.TotalProductionCost <= 0 {
		return models.Lot{}, ErrInvalidPrice
	}

	ingredients := make([]models.Ingredient, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ing.TotalCost = ing.UnitCost * ing.QuantityPurchased
		ingredients[i] = ing
	}

	lot := models.Lot{
		CreatedDate:         s.now().Format(models.DateLayout),
		Ingredients:         ingredients,
		TotalProductionCost: req.TotalProductionCost,
		UnitsProduced:       req.UnitsProduced,
		UnitPrice:           req.UnitPrice,
		UnitsAvailable:      req.UnitsProduced,
	}

	saved, err := s.inventory.AddLot(ctx, lot)
	if err != nil {
		return models.Lot{}, fmt.Errorf("add lot: %w", err)
	}

	s.logger.Info("lot opened",
		zap.Int("lot_id", saved.ID),
		zap.Int("units_produced", saved.UnitsProduced),
		zap.Float64("unit_price", saved.UnitPrice))

	return saved, nil
}

// CurrentLot returns the most recently created lot, nil when none exists.
func (s *Service) CurrentLot(ctx context.Context) (*models.Lot, error) {
	lot, err := s.inventory.CurrentLot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load current lot: %w", err)
	}
	return lot, nil
}
