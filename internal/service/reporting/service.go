// Package reporting turns ledger state into human-readable payment reminders
// and the daily summary row exported to the owner's spreadsheet.
package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mvalderrama/ventas/internal/domain/models"
	"github.com/mvalderrama/ventas/internal/service/ledger"
	"github.com/mvalderrama/ventas/internal/service/stats"
)

// Service builds reminder texts and summary rows from the ledger.
type Service struct {
	ledger *ledger.Service
	stats  *stats.Service
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(ledgerSvc *ledger.Service, statsSvc *stats.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{ledger: ledgerSvc, stats: statsSvc, logger: logger}
}

// OverdueReminders returns one reminder message per overdue credit sale.
func (s *Service) OverdueReminders(ctx context.Context) ([]string, error) {
	overdue, err := s.ledger.ListOverdueCredit(ctx)
	if err != nil {
		return nil, fmt.Errorf("load overdue sales: %w", err)
	}

	reminders := make([]string, 0, len(overdue))
	for _, sale := range overdue {
		reminders = append(reminders, ReminderMessage(sale))
	}

	return reminders, nil
}

// ReminderMessage formats a collection reminder for a single overdue sale.
func ReminderMessage(sale models.Sale) string {
	if sale.CustomerName != "" {
		return fmt.Sprintf("PAYMENT REMINDER: sale #%d to %s (phone %s) was due %s. Amount: $%.0f.",
			sale.ID, sale.CustomerName, sale.CustomerPhone, sale.DueDate, sale.Price)
	}
	return fmt.Sprintf("PAYMENT REMINDER: sale #%d without customer details was due %s. Amount: $%.0f. Seller: %s.",
		sale.ID, sale.DueDate, sale.Price, sale.SellerName)
}

// DailySummaryRow builds the spreadsheet row for the given day:
// date, sales, revenue, cash, receivable, overdue count.
func (s *Service) DailySummaryRow(ctx context.Context, day time.Time) ([]interface{}, error) {
	snapshot, err := s.stats.Aggregate(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate statistics: %w", err)
	}

	overdue, err := s.ledger.ListOverdueCredit(ctx)
	if err != nil {
		return nil, fmt.Errorf("load overdue sales: %w", err)
	}

	return []interface{}{
		day.Format(models.DateLayout),
		snapshot.Sales.TotalSales,
		snapshot.Finances.TotalRevenue,
		snapshot.Finances.TotalCash,
		snapshot.Finances.TotalReceivable,
		len(overdue),
	}, nil
}
