package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/service/ledger"
)

// SellerContextKey is where the auth middleware stores the verified seller.
const SellerContextKey = "seller"

// SalesHandler exposes the ledger operations over HTTP.
type SalesHandler struct {
	svc    *ledger.Service
	logger *zap.Logger
}

// NewSalesHandler constructs the HTTP handler adapter.
func NewSalesHandler(svc *ledger.Service, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{svc: svc, logger: logger}
}

// Register records a sale of one unit from the current lot.
func (h *SalesHandler) Register(c *gin.Context) {
	var req models.RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid sale payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	seller, ok := sellerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing seller identity"})
		return
	}

	sale, err := h.svc.RegisterSale(c.Request.Context(), req, seller)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidPaymentType), errors.Is(err, ledger.ErrInvalidCreditTerm):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ledger.ErrStockUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed registering sale", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// List returns the full sale sequence.
func (h *SalesHandler) List(c *gin.Context) {
	sales, err := h.svc.ListSales(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}

// ListOverdue returns unpaid credit sales past their due date.
func (h *SalesHandler) ListOverdue(c *gin.Context) {
	overdue, err := h.svc.ListOverdueCredit(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing overdue sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list overdue sales"})
		return
	}

	c.JSON(http.StatusOK, overdue)
}

// MarkPaid flips a sale to paid.
func (h *SalesHandler) MarkPaid(c *gin.Context) {
	saleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale id"})
		return
	}

	if err := h.svc.MarkPaid(c.Request.Context(), saleID); err != nil {
		if errors.Is(err, ledger.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed marking sale paid", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark sale paid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"paid": true})
}

func sellerFromContext(c *gin.Context) (models.Seller, bool) {
	value, exists := c.Get(SellerContextKey)
	if !exists {
		return models.Seller{}, false
	}
	seller, ok := value.(models.Seller)
	return seller, ok
}
