// Package memory holds mutex-guarded in-memory implementations of the
// repository contracts. They are the storage backend for unit tests and for
// running the server without a MongoDB instance.
package memory

import (
	"context"
	"sync"

	"github.com/mvalderrama/ventas/internal/domain/models"
)

// InventoryRepository keeps lots in a slice ordered by id.
type InventoryRepository struct {
	mu   sync.Mutex
	lots []models.Lot
}

// NewInventoryRepository returns an empty in-memory inventory store.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

func (r *InventoryRepository) CurrentLot(_ context.Context) (*models.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.currentIndex()
	if idx < 0 {
		return nil, nil
	}
	lot := r.lots[idx]
	return &lot, nil
}

func (r *InventoryRepository) AddLot(_ context.Context, lot models.Lot) (models.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot.ID = len(r.lots) + 1
	r.lots = append(r.lots, lot)
	return lot, nil
}

func (r *InventoryRepository) DecrementStock(_ context.Context, lotID, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lots {
		if r.lots[i].ID != lotID {
			continue
		}
		if r.lots[i].UnitsAvailable < qty {
			return false, nil
		}
		r.lots[i].UnitsAvailable -= qty
		return true, nil
	}
	return false, nil
}

func (r *InventoryRepository) RestoreStock(_ context.Context, lotID, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lots {
		if r.lots[i].ID == lotID {
			r.lots[i].UnitsAvailable += qty
			return nil
		}
	}
	return nil
}

func (r *InventoryRepository) ListLots(_ context.Context) ([]models.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Lot, len(r.lots))
	copy(out, r.lots)
	return out, nil
}

// currentIndex returns the index of the lot with the highest id, or -1.
// Ids are the ordering key, not slice position, so out-of-order loads stay
// correct.
func (r *InventoryRepository) currentIndex() int {
	idx := -1
	for i := range r.lots {
		if idx < 0 || r.lots[i].ID > r.lots[idx].ID {
			idx = i
		}
	}
	return idx
}

// SalesRepository keeps sales in a slice ordered by id.
type SalesRepository struct {
	mu    sync.Mutex
	sales []models.Sale
}

// NewSalesRepository returns an empty in-memory sales store.
func NewSalesRepository() *SalesRepository {
	return &SalesRepository{}
}

func (r *SalesRepository) Append(_ context.Context, sale models.Sale) (models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sale.ID = len(r.sales) + 1
	r.sales = append(r.sales, sale)
	return sale, nil
}

func (r *SalesRepository) All(_ context.Context) ([]models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

func (r *SalesRepository) SetPaid(_ context.Context, saleID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sales {
		if r.sales[i].ID == saleID {
			r.sales[i].Paid = true
			return true, nil
		}
	}
	return false, nil
}

// Seed inserts a sale as-is, keeping its id. Test helper for building
// historical fixtures (overdue credit sales and the like).
func (r *SalesRepository) Seed(sale models.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, sale)
}

// UserRepository keeps seller accounts in a slice.
type UserRepository struct {
	mu    sync.Mutex
	users []models.User
}

// NewUserRepository returns an empty in-memory user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = len(r.users) + 1
	r.users = append(r.users, user)
	return user, nil
}

func (r *UserRepository) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Phone == phone {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, nil
}
