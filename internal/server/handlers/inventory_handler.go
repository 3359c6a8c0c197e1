package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/service/inventory"
	"github.com/mvalderrama/ventas/internal/service/stats"
)

// InventoryHandler exposes lot management and statistics.
type InventoryHandler struct {
	svc      *inventory.Service
	statsSvc *stats.Service
	logger   *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(svc *inventory.Service, statsSvc *stats.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, statsSvc: statsSvc, logger: logger}
}

// AddLot opens a new production lot; it becomes the current lot.
func (h *InventoryHandler) AddLot(c *gin.Context) {
	var req models.AddLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid lot payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lot, err := h.svc.AddLot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrNoIngredients),
			errors.Is(err, inventory.ErrInvalidUnits),
			errors.Is(err, inventory.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed adding lot", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add lot"})
		}
		return
	}

	c.JSON(http.StatusCreated, lot)
}

// CurrentLot returns the most recently created lot, null when none exists.
func (h *InventoryHandler) CurrentLot(c *gin.Context) {
	lot, err := h.svc.CurrentLot(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading current lot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load current lot"})
		return
	}

	c.JSON(http.StatusOK, lot)
}

// Stats returns the aggregated statistics snapshot.
func (h *InventoryHandler) Stats(c *gin.Context) {
	snapshot, err := h.statsSvc.Aggregate(c.Request.Context())
	if err != nil {
		h.logger.Error("failed aggregating statistics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate statistics"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
