// Package scheduler runs the recurring ledger jobs: the morning overdue-sale
// reminder sweep and the evening summary export.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mvalderrama/ventas/internal/config"
	"github.com/mvalderrama/ventas/internal/repository/sheets"
	"github.com/mvalderrama/ventas/internal/service/reporting"
	"github.com/mvalderrama/ventas/pkg/clients/notify"
)

const jobTimeout = 2 * time.Minute

// Scheduler manages the cron jobs. Notifier and exporter are optional; when
// absent the overdue sweep still logs every reminder and the export job is
// not scheduled at all.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	notifier     notify.Client
	exporter     sheets.Exporter
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ReportingConfig, reportingSvc *reporting.Service, notifier notify.Client, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		reportingSvc: reportingSvc,
		notifier:     notifier,
		exporter:     exporter,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.OverdueCron, s.checkOverdueSales); err != nil {
		s.logger.Error("failed to schedule overdue check", zap.Error(err))
	}

	if s.exporter != nil {
		if _, err := s.cron.AddFunc(s.cfg.ExportCron, s.exportDailySummary); err != nil {
			s.logger.Error("failed to schedule summary export", zap.Error(err))
		}
	}

	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) checkOverdueSales() {
	s.logger.Info("checking overdue credit sales")
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	reminders, err := s.reportingSvc.OverdueReminders(ctx)
	if err != nil {
		s.logger.Error("failed to load overdue sales", zap.Error(err))
		return
	}

	if len(reminders) == 0 {
		s.logger.Info("no overdue credit sales today")
		return
	}

	s.logger.Info("found overdue credit sales", zap.Int("count", len(reminders)))

	for _, reminder := range reminders {
		s.logger.Warn(reminder)

		if s.notifier == nil {
			continue
		}
		if err := s.notifier.SendReminder(ctx, reminder); err != nil {
			s.logger.Error("failed to push reminder", zap.Error(err))
		}
	}
}

func (s *Scheduler) exportDailySummary() {
	s.logger.Info("exporting daily summary")
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	row, err := s.reportingSvc.DailySummaryRow(ctx, time.Now())
	if err != nil {
		s.logger.Error("failed to build daily summary", zap.Error(err))
		return
	}

	if err := s.exporter.AppendSummaryRow(ctx, row); err != nil {
		s.logger.Error("failed to export daily summary", zap.Error(err))
		return
	}

	s.logger.Info("daily summary exported")
}
