package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mvalderrama/ventas/internal/server/handlers"
	"github.com/mvalderrama/ventas/internal/service/auth"
)

// New wires the Gin engine with required routes and middlewares.
func New(authHandler *handlers.AuthHandler, salesHandler *handlers.SalesHandler, inventoryHandler *handlers.InventoryHandler, authSvc *auth.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(authMiddleware(authSvc))

	protected.POST("/sales", salesHandler.Register)
	protected.GET("/sales", salesHandler.List)
	protected.GET("/sales/overdue", salesHandler.ListOverdue)
	protected.PATCH("/sales/:id/paid", salesHandler.MarkPaid)

	protected.GET("/inventory/current-lot", inventoryHandler.CurrentLot)
	protected.POST("/inventory/lots", inventoryHandler.AddLot)
	protected.GET("/inventory/stats", inventoryHandler.Stats)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// authMiddleware verifies the Bearer token and stores the seller identity for
// downstream handlers.
func authMiddleware(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be 'Bearer <token>'"})
			return
		}

		seller, err := authSvc.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(handlers.SellerContextKey, seller)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
