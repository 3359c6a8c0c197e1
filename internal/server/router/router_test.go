package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/repository/memory"
	"github.com/mvalderrama/ventas/internal/server/handlers"
	authsvc "github.com/mvalderrama/ventas/internal/service/auth"
	inventorysvc "github.com/mvalderrama/ventas/internal/service/inventory"
	ledgersvc "github.com/mvalderrama/ventas/internal/service/ledger"
	statssvc "github.com/mvalderrama/ventas/internal/service/stats"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	inventoryRepo := memory.NewInventoryRepository()
	salesRepo := memory.NewSalesRepository()
	userRepo := memory.NewUserRepository()

	ledgerSvc := ledgersvc.NewService(inventoryRepo, salesRepo, nil)
	inventorySvc := inventorysvc.NewService(inventoryRepo, nil)
	statsSvc := statssvc.NewService(inventoryRepo, salesRepo, nil)
	authSvc := authsvc.NewService(userRepo, "router-test-secret", nil)

	return New(
		handlers.NewAuthHandler(authSvc, nil),
		handlers.NewSalesHandler(ledgerSvc, nil),
		handlers.NewInventoryHandler(inventorySvc, statsSvc, nil),
		authSvc,
		nil,
	)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func loginSeller(t *testing.T, engine *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", models.RegisterUserRequest{
		Name: "Maria", Phone: "3001234567", Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, engine, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Phone: "3001234567", Password: "correct-horse",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/sales", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/sales", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSaleLifecycle(t *testing.T) {
	engine := newTestEngine(t)
	token := loginSeller(t, engine)

	// No lot yet: selling is a conflict.
	rec := doJSON(t, engine, http.MethodPost, "/api/sales", token, models.RegisterSaleRequest{
		PaymentType: models.PaymentCash,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/inventory/lots", token, models.AddLotRequest{
		Ingredients:         []models.Ingredient{{Name: "X", UnitCost: 1000, QuantityPurchased: 2}},
		TotalProductionCost: 2000,
		UnitsProduced:       10,
		UnitPrice:           500,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, engine, http.MethodPost, "/api/sales", token, models.RegisterSaleRequest{
		PaymentType:  models.PaymentCredit,
		CustomerName: "Carlos",
		CreditDays:   15,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var sale models.Sale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sale))
	assert.Equal(t, 1, sale.ID)
	assert.Equal(t, "Maria", sale.SellerName)
	assert.False(t, sale.Paid)
	assert.NotEmpty(t, sale.DueDate)

	rec = doJSON(t, engine, http.MethodGet, "/api/inventory/current-lot", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lot models.Lot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lot))
	assert.Equal(t, 9, lot.UnitsAvailable)

	rec = doJSON(t, engine, http.MethodPatch, "/api/sales/1/paid", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPatch, "/api/sales/999/paid", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/inventory/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot models.Statistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 1, snapshot.UnitsSold)
	assert.Equal(t, 500.0, snapshot.Finances.TotalRevenue)
}

func TestRegisterSaleRejectsBadTerms(t *testing.T) {
	engine := newTestEngine(t)
	token := loginSeller(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/api/inventory/lots", token, models.AddLotRequest{
		Ingredients:         []models.Ingredient{{Name: "X", UnitCost: 1000, QuantityPurchased: 2}},
		TotalProductionCost: 2000,
		UnitsProduced:       10,
		UnitPrice:           500,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/sales", token, map[string]any{
		"payment_type": "barter",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/sales", token, models.RegisterSaleRequest{
		PaymentType: models.PaymentCredit,
		CreditDays:  30,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
