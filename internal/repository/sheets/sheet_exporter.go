// Package sheets appends daily sales summaries to a Google Sheets
// spreadsheet so the owner can follow the ledger without touching the API.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mvalderrama/ventas/internal/config"
)

// summaryRange is the sheet tab the exporter appends into. Columns:
// date, sales, revenue, cash, receivable, overdue count.
const summaryRange = "Summary!A:F"

// Exporter is the contract the reporting side writes through.
type Exporter interface {
	AppendSummaryRow(ctx context.Context, values []interface{}) error
}

// SheetExporter implements Exporter using the official Google Sheets API.
type SheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewSheetExporter builds a Google Sheets backed exporter instance.
func NewSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &SheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendSummaryRow appends one summary row to the configured spreadsheet.
func (e *SheetExporter) AppendSummaryRow(ctx context.Context, values []interface{}) error {
	if len(values) == 0 {
		return fmt.Errorf("summary row must not be empty")
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, summaryRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append summary row: %w", err)
	}

	e.logger.Debug("summary row appended to sheet", zap.String("range", summaryRange))
	return nil
}
