// Package repository declares the storage contracts the services depend on.
// MongoDB implementations back production; the memory implementations back
// unit tests and local runs without a database.
package repository

import (
	"context"

	"github.com/mvalderrama/ventas/internal/domain/models"
)

// InventoryRepository owns the ordered sequence of production lots.
type InventoryRepository interface {
	// CurrentLot returns the lot with the highest id, or nil when no lot
	// exists yet. A depleted current lot is still the current lot.
	CurrentLot(ctx context.Context) (*models.Lot, error)

	// AddLot assigns the next sequential id, persists the lot and returns it.
	AddLot(ctx context.Context, lot models.Lot) (models.Lot, error)

	// DecrementStock atomically subtracts qty from the lot's available units.
	// It reports false without mutating anything when the lot is missing or
	// holds fewer than qty units. This is the single enforcement point of the
	// non-negative stock invariant.
	DecrementStock(ctx context.Context, lotID, qty int) (bool, error)

	// RestoreStock re-adds qty units to a lot. Only used to compensate a sale
	// append that failed after the stock was already consumed.
	RestoreStock(ctx context.Context, lotID, qty int) error

	// ListLots returns every lot ordered by id.
	ListLots(ctx context.Context) ([]models.Lot, error)
}

// SalesRepository owns the append-only sequence of sales.
type SalesRepository interface {
	// Append assigns the next sequential id, persists the sale and returns it.
	Append(ctx context.Context, sale models.Sale) (models.Sale, error)

	// All returns every sale ordered by id.
	All(ctx context.Context) ([]models.Sale, error)

	// SetPaid marks a sale as paid. It reports false when the id is unknown
	// and succeeds idempotently when the sale was already paid.
	SetPaid(ctx context.Context, saleID int) (bool, error)
}

// UserRepository owns seller accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
}
