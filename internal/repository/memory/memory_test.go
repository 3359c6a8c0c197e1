package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/ventas/internal/domain/models"
)

func TestInventoryCurrentLot(t *testing.T) {
	repo := NewInventoryRepository()

	lot, err := repo.CurrentLot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, lot)

	first, err := repo.AddLot(context.Background(), models.Lot{UnitsProduced: 5, UnitsAvailable: 5})
	require.NoError(t, err)
	second, err := repo.AddLot(context.Background(), models.Lot{UnitsProduced: 8, UnitsAvailable: 8})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	current, err := repo.CurrentLot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)
}

func TestInventoryDecrementStock(t *testing.T) {
	repo := NewInventoryRepository()
	lot, err := repo.AddLot(context.Background(), models.Lot{UnitsProduced: 2, UnitsAvailable: 2})
	require.NoError(t, err)

	ok, err := repo.DecrementStock(context.Background(), lot.ID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DecrementStock(context.Background(), lot.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok, "insufficient stock must not mutate")

	ok, err = repo.DecrementStock(context.Background(), 99, 1)
	require.NoError(t, err)
	assert.False(t, ok, "unknown lot must report false")

	current, err := repo.CurrentLot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, current.UnitsAvailable)
}

func TestInventoryDecrementStockConcurrent(t *testing.T) {
	repo := NewInventoryRepository()
	lot, err := repo.AddLot(context.Background(), models.Lot{UnitsProduced: 10, UnitsAvailable: 10})
	require.NoError(t, err)

	var wg sync.WaitGroup
	hits := make(chan bool, 30)

	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.DecrementStock(context.Background(), lot.ID, 1)
			require.NoError(t, err)
			hits <- ok
		}()
	}
	wg.Wait()
	close(hits)

	var succeeded int
	for ok := range hits {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 10, succeeded)

	current, err := repo.CurrentLot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, current.UnitsAvailable)
}

func TestInventoryRestoreStock(t *testing.T) {
	repo := NewInventoryRepository()
	lot, err := repo.AddLot(context.Background(), models.Lot{UnitsProduced: 5, UnitsAvailable: 5})
	require.NoError(t, err)

	ok, err := repo.DecrementStock(context.Background(), lot.ID, 3)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repo.RestoreStock(context.Background(), lot.ID, 3))

	current, err := repo.CurrentLot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, current.UnitsAvailable)
}

func TestSalesAppendAndSetPaid(t *testing.T) {
	repo := NewSalesRepository()

	first, err := repo.Append(context.Background(), models.Sale{PaymentType: models.PaymentCredit})
	require.NoError(t, err)
	second, err := repo.Append(context.Background(), models.Sale{PaymentType: models.PaymentCash, Paid: true})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	ok, err := repo.SetPaid(context.Background(), first.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second call is an idempotent success.
	ok, err = repo.SetPaid(context.Background(), first.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetPaid(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)

	sales, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.True(t, sales[0].Paid)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()

	missing, err := repo.FindByPhone(context.Background(), "555")
	require.NoError(t, err)
	assert.Nil(t, missing)

	user, err := repo.Create(context.Background(), models.User{Name: "Maria", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	found, err := repo.FindByPhone(context.Background(), "555")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Maria", found.Name)
}
