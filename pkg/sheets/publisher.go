package sheets

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Ramsey-B/fern/pkg/report"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Publisher overwrites a spreadsheet view with a frame.
type Publisher interface {
	Publish(ctx context.Context, category string, frame report.Frame) error
}

// Category names map to fixed worksheet titles.
var sheetTitles = map[string]string{
	"tb":      "Trial Balance",
	"pnl":     "PnL comp chart",
	"expense": "accounttrans",
}

// GoogleSheetsPublisher writes frames to a Google spreadsheet. Each publish
// clears the target worksheet and rewrites header plus rows from A1.
type GoogleSheetsPublisher struct {
	service       *sheets.Service
	spreadsheetID string
	logger        ectologger.Logger
}

func NewGoogleSheetsPublisher(ctx context.Context, credentialsFile, spreadsheetID string, logger ectologger.Logger) (*GoogleSheetsPublisher, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsPublisher{
		service:       service,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

func (p *GoogleSheetsPublisher) Publish(ctx context.Context, category string, frame report.Frame) error {
	ctx, span := tracing.StartSpan(ctx, "GoogleSheetsPublisher.Publish")
	defer span.End()

	title, ok := sheetTitles[category]
	if !ok {
		return fmt.Errorf("no worksheet configured for category %q", category)
	}

	if _, err := p.service.Spreadsheets.Values.
		Clear(p.spreadsheetID, title, &sheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear worksheet %q: %w", title, err)
	}

	values := &sheets.ValueRange{Values: frame.Values()}
	if _, err := p.service.Spreadsheets.Values.
		Update(p.spreadsheetID, title+"!A1", values).
		ValueInputOption("RAW").
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to write worksheet %q: %w", title, err)
	}

	p.logger.WithContext(ctx).Infof("Published %d rows to worksheet %q", len(frame.Rows), title)
	return nil
}
