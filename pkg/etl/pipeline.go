package etl

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/internal/repositories/account"
	"github.com/Ramsey-B/fern/internal/repositories/journal"
	"github.com/Ramsey-B/fern/internal/repositories/manualjournal"
	"github.com/Ramsey-B/fern/internal/repositories/processedjournal"
	"github.com/Ramsey-B/fern/internal/repositories/profitloss"
	"github.com/Ramsey-B/fern/internal/repositories/tenant"
	"github.com/Ramsey-B/fern/internal/repositories/trialbalance"
	"github.com/Ramsey-B/fern/pkg/flatten"
	"github.com/Ramsey-B/fern/pkg/normalize"
	"github.com/Ramsey-B/fern/pkg/pivot"
	"github.com/Ramsey-B/fern/pkg/report"
	"github.com/Ramsey-B/fern/pkg/sheets"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/transform"
	"github.com/Ramsey-B/fern/pkg/xero"
)

// Pipeline runs one pull-transform-load cycle per invocation. Every run
// registers the tenant first, then fetches, flattens, projects and merges one
// entity's batch. publisher may be nil, in which case spreadsheet publication
// is skipped.
type Pipeline struct {
	executionID    string
	client         *xero.Client
	tenants        *tenant.Repository
	trialBalances  *trialbalance.Repository
	profitLosses   *profitloss.Repository
	journals          *journal.Repository
	manualJournals    *manualjournal.Repository
	accounts          *account.Repository
	processedJournals *processedjournal.Repository
	publisher         sheets.Publisher
	logger            ectologger.Logger
}

func NewPipeline(
	executionID string,
	client *xero.Client,
	tenants *tenant.Repository,
	trialBalances *trialbalance.Repository,
	profitLosses *profitloss.Repository,
	journals *journal.Repository,
	manualJournals *manualjournal.Repository,
	accounts *account.Repository,
	processedJournals *processedjournal.Repository,
	publisher sheets.Publisher,
	logger ectologger.Logger,
) *Pipeline {
	return &Pipeline{
		executionID:       executionID,
		client:            client,
		tenants:           tenants,
		trialBalances:     trialBalances,
		profitLosses:      profitLosses,
		journals:          journals,
		manualJournals:    manualJournals,
		accounts:          accounts,
		processedJournals: processedJournals,
		publisher:         publisher,
		logger:            logger,
	}
}

func (p *Pipeline) begin(ctx context.Context) (string, error) {
	tenantID, err := p.client.TenantID(ctx)
	if err != nil {
		return "", err
	}
	if err := p.tenants.Register(ctx, tenantID); err != nil {
		return "", err
	}
	return tenantID, nil
}

func (p *Pipeline) logLoaded(ctx context.Context, entity string, rows int, inserted, updated int64) {
	p.logger.WithContext(ctx).WithFields(map[string]any{
		"execution_id": p.executionID,
		"entity":       entity,
		"rows":         rows,
		"inserted":     inserted,
		"updated":      updated,
	}).Infof("Loaded %s batch", entity)
}

// RunTrialBalance pulls the trial balance as at date and loads it. The frame
// is published to the spreadsheet afterwards; a publish failure is logged but
// does not fail the run.
func (p *Pipeline) RunTrialBalance(ctx context.Context, date string) (report.Frame, error) {
	ctx, span := tracing.StartSpan(ctx, "Pipeline.RunTrialBalance")
	defer span.End()

	tenantID, err := p.begin(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	rep, err := p.client.TrialBalance(ctx, date)
	if err != nil {
		return report.Frame{}, err
	}

	records := flatten.Report(rep, true)
	rows, frame := transform.TrialBalance(tenantID, date, records)

	result, err := p.trialBalances.Load(ctx, rows)
	if err != nil {
		return report.Frame{}, err
	}
	p.logLoaded(ctx, "trial_balance", len(rows), result.Inserted, result.Updated)

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, "tb", frame); err != nil {
			p.logger.WithContext(ctx).WithError(err).Warn("Trial balance publish failed, data load already committed")
		}
	}

	return frame, nil
}

// RunProfitAndLoss pulls the profit and loss report for the range, loads the
// snapshot rows and publishes the comparison table for the to-date's month.
func (p *Pipeline) RunProfitAndLoss(ctx context.Context, fromDate, toDate string, periods int, timeframe string) (report.Frame, error) {
	ctx, span := tracing.StartSpan(ctx, "Pipeline.RunProfitAndLoss")
	defer span.End()

	tenantID, err := p.begin(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	rep, err := p.client.ProfitAndLoss(ctx, fromDate, toDate, periods, timeframe)
	if err != nil {
		return report.Frame{}, err
	}

	records := flatten.Report(rep, true)
	rows, _ := transform.ProfitAndLoss(tenantID, records)

	result, err := p.profitLosses.Load(ctx, rows)
	if err != nil {
		return report.Frame{}, err
	}
	p.logLoaded(ctx, "profit_loss", len(rows), result.Inserted, result.Updated)

	referenceMonth, err := monthPrefix(toDate)
	if err != nil {
		return report.Frame{}, err
	}
	comparison := pivot.Comparison(rows, referenceMonth)

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, "pnl", comparison); err != nil {
			return report.Frame{}, err
		}
	}

	return comparison, nil
}

// RunJournals pulls every journal page and loads the exploded lines.
func (p *Pipeline) RunJournals(ctx context.Context) (report.Frame, error) {
	ctx, span := tracing.StartSpan(ctx, "Pipeline.RunJournals")
	defer span.End()

	tenantID, err := p.begin(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	journals, err := p.client.Journals(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	records := flatten.Journals(journals)
	rows, frame := transform.Journals(tenantID, records)

	result, err := p.journals.Load(ctx, rows)
	if err != nil {
		return report.Frame{}, err
	}
	p.logLoaded(ctx, "journal", len(rows), result.Inserted, result.Updated)

	return frame, nil
}

// RunManualJournals pulls and loads all manual journals.
func (p *Pipeline) RunManualJournals(ctx context.Context) (report.Frame, error) {
	ctx, span := tracing.StartSpan(ctx, "Pipeline.RunManualJournals")
	defer span.End()

	tenantID, err := p.begin(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	manualJournals, err := p.client.ManualJournals(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	records := flatten.ManualJournals(manualJournals)
	rows, frame := transform.ManualJournals(tenantID, records)

	result, err := p.manualJournals.Load(ctx, rows)
	if err != nil {
		return report.Frame{}, err
	}
	p.logLoaded(ctx, "manual_journal", len(rows), result.Inserted, result.Updated)

	return frame, nil
}

// RunAccounts pulls and loads the chart of accounts.
func (p *Pipeline) RunAccounts(ctx context.Context) (report.Frame, error) {
	ctx, span := tracing.StartSpan(ctx, "Pipeline.RunAccounts")
	defer span.End()

	tenantID, err := p.begin(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	accounts, err := p.client.Accounts(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	records := flatten.Accounts(accounts)
	rows, frame := transform.Accounts(tenantID, records)

	result, err := p.accounts.Load(ctx, rows)
	if err != nil {
		return report.Frame{}, err
	}
	p.logLoaded(ctx, "account", len(rows), result.Inserted, result.Updated)

	return frame, nil
}

// RunProcessedJournals rebuilds the enriched journal view (journal lines
// joined with manual journals and accounts, narrowed to the configured
// account codes and year) and republishes it. The view derives entirely from
// already-loaded tables, so no API pull happens here. A publish failure is
// logged but does not fail the run.
func (p *Pipeline) RunProcessedJournals(ctx context.Context, accountCodes []string, year string) (report.Frame, error) {
	ctx, span := tracing.StartSpan(ctx, "Pipeline.RunProcessedJournals")
	defer span.End()

	tenantID, err := p.begin(ctx)
	if err != nil {
		return report.Frame{}, err
	}

	result, err := p.processedJournals.Refresh(ctx, tenantID, accountCodes, year)
	if err != nil {
		return report.Frame{}, err
	}

	rows, err := p.processedJournals.List(ctx, tenantID)
	if err != nil {
		return report.Frame{}, err
	}
	p.logLoaded(ctx, "processed_journal", len(rows), result.Inserted, result.Updated)

	frame := transform.ProcessedJournals(rows)

	if p.publisher != nil {
		if err := p.publisher.Publish(ctx, "expense", frame); err != nil {
			p.logger.WithContext(ctx).WithError(err).Warn("Processed journal publish failed, view refresh already committed")
		}
	}

	return frame, nil
}

// monthPrefix reduces an input date to its YYYY-MM reference month.
func monthPrefix(date string) (string, error) {
	iso := normalize.ISODate(date)
	if iso == "" {
		return "", fmt.Errorf("unparseable reference date %q", date)
	}
	return iso[:7], nil
}
