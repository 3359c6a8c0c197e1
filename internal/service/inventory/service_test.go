package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/repository/memory"
)

func validRequest() models.AddLotRequest {
	return models.AddLotRequest{
		Ingredients: []models.Ingredient{
			{Name: "X", UnitCost: 1000, QuantityPurchased: 2},
		},
		TotalProductionCost: 2000,
		UnitsProduced:       10,
		UnitPrice:           500,
	}
}

func TestAddLot(t *testing.T) {
	svc := NewService(memory.NewInventoryRepository(), nil)
	day := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	lot, err := svc.AddLot(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, lot.ID)
	assert.Equal(t, "2026-03-02", lot.CreatedDate)
	assert.Equal(t, 10, lot.UnitsAvailable)
	assert.Equal(t, 10, lot.UnitsProduced)
	require.Len(t, lot.Ingredients, 1)
	assert.Equal(t, 2000.0, lot.Ingredients[0].TotalCost)
}

func TestAddLotSequentialIDs(t *testing.T) {
	svc := NewService(memory.NewInventoryRepository(), nil)

	first, err := svc.AddLot(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.AddLot(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	current, err := svc.CurrentLot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

func TestAddLotValidation(t *testing.T) {
	svc := NewService(memory.NewInventoryRepository(), nil)

	tests := []struct {
		name    string
		mutate  func(*models.AddLotRequest)
		wantErr error
	}{
		{"no ingredients", func(r *models.AddLotRequest) { r.Ingredients = nil }, ErrNoIngredients},
		{"zero units", func(r *models.AddLotRequest) { r.UnitsProduced = 0 }, ErrInvalidUnits},
		{"negative units", func(r *models.AddLotRequest) { r.UnitsProduced = -1 }, ErrInvalidUnits},
		{"zero price", func(r *models.AddLotRequest) { r.UnitPrice = 0 }, ErrInvalidPrice},
		{"zero cost", func(r *models.AddLotRequest) { r.TotalProductionCost = 0 }, ErrInvalidPrice},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.AddLot(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// Nothing was persisted by the rejected requests.
	current, err := svc.CurrentLot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}
