package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mvalderrama/ventas/internal/config"
	"github.com/mvalderrama/ventas/internal/repository/mongodb"
	"github.com/mvalderrama/ventas/internal/repository/sheets"
	"github.com/mvalderrama/ventas/internal/scheduler"
	"github.com/mvalderrama/ventas/internal/server/handlers"
	"github.com/mvalderrama/ventas/internal/server/router"
	authsvc "github.com/mvalderrama/ventas/internal/service/auth"
	inventorysvc "github.com/mvalderrama/ventas/internal/service/inventory"
	ledgersvc "github.com/mvalderrama/ventas/internal/service/ledger"
	reportingsvc "github.com/mvalderrama/ventas/internal/service/reporting"
	statssvc "github.com/mvalderrama/ventas/internal/service/stats"
	"github.com/mvalderrama/ventas/pkg/clients/notify"
	"github.com/mvalderrama/ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb client", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	inventoryRepo := mongodb.NewInventoryRepository(mongoClient)
	salesRepo := mongodb.NewSalesRepository(mongoClient)
	userRepo := mongodb.NewUserRepository(mongoClient)

	ledgerSvc := ledgersvc.NewService(inventoryRepo, salesRepo, baseLogger.Named("svc.ledger"))
	inventorySvc := inventorysvc.NewService(inventoryRepo, baseLogger.Named("svc.inventory"))
	statsSvc := statssvc.NewService(inventoryRepo, salesRepo, baseLogger.Named("svc.stats"))
	authSvc := authsvc.NewService(userRepo, cfg.JWT.Secret, baseLogger.Named("svc.auth"))
	reportingSvc := reportingsvc.NewService(ledgerSvc, statsSvc, baseLogger.Named("svc.reporting"))

	var notifier notify.Client
	if cfg.Notify.Enabled() {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("reminder webhook enabled")
	} else {
		baseLogger.Warn("reminder webhook not configured, overdue reminders stay in the logs")
	}

	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		exporter, err = sheets.NewSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("daily summary export enabled")
	} else {
		baseLogger.Warn("sheets export not configured, daily summary export disabled")
	}

	authHandler := handlers.NewAuthHandler(authSvc, baseLogger.Named("handlers.auth"))
	salesHandler := handlers.NewSalesHandler(ledgerSvc, baseLogger.Named("handlers.sales"))
	inventoryHandler := handlers.NewInventoryHandler(inventorySvc, statsSvc, baseLogger.Named("handlers.inventory"))
	engine := router.New(authHandler, salesHandler, inventoryHandler, authSvc, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, notifier, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
