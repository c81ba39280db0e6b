package xero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/httpclient"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// JournalsPageSize is the fixed page size of the Journals endpoint.
const JournalsPageSize = 100

// Client pulls accounting data from the Xero API. Every call refreshes the
// access token first so long gaps between runs never hit an expired token.
type Client struct {
	http     *httpclient.Client
	auth     *Authenticator
	baseURL  string
	tenantID string
	logger   ectologger.Logger
}

func NewClient(
	http *httpclient.Client,
	auth *Authenticator,
	baseURL string,
	tenantID string,
	logger ectologger.Logger,
) *Client {
	return &Client{
		http:     http,
		auth:     auth,
		baseURL:  baseURL,
		tenantID: tenantID,
		logger:   logger,
	}
}

// TenantID returns the tenant scope for this run: the configured override
// when set, otherwise the tenant recorded in the token file.
func (c *Client) TenantID(ctx context.Context) (string, error) {
	if c.tenantID != "" {
		return c.tenantID, nil
	}

	tokens, err := c.auth.store.Load()
	if err != nil {
		return "", err
	}
	if tokens.TenantID == "" {
		return "", fmt.Errorf("no tenant id configured and token file carries none")
	}
	return tokens.TenantID, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	tokens, err := c.auth.Refresh(ctx)
	if err != nil {
		return err
	}

	tenantID := c.tenantID
	if tenantID == "" {
		tenantID = tokens.TenantID
	}

	endpoint := c.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	headers := map[string]string{
		"Authorization":  "Bearer " + tokens.AccessToken,
		"xero-tenant-id": tenantID,
		"Accept":         "application/json",
	}

	resp, err := c.http.Get(ctx, endpoint, headers)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithContext(ctx).WithFields(map[string]any{
			"status_code": resp.StatusCode,
			"path":        path,
		}).Error("Xero API call failed")
		return httperror.NewHTTPErrorf(resp.StatusCode, "xero %s returned status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(resp.Body, dest); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) report(ctx context.Context, path string, query url.Values) (*Report, error) {
	var rr ReportResponse
	if err := c.get(ctx, path, query, &rr); err != nil {
		return nil, err
	}
	if len(rr.Reports) == 0 {
		return nil, fmt.Errorf("%s returned no report", path)
	}
	return &rr.Reports[0], nil
}

// TrialBalance fetches the trial balance as at the given ISO date.
func (c *Client) TrialBalance(ctx context.Context, date string) (*Report, error) {
	ctx, span := tracing.StartSpan(ctx, "XeroClient.TrialBalance")
	defer span.End()

	query := url.Values{}
	query.Set("date", date)
	return c.report(ctx, "Reports/TrialBalance", query)
}

// ProfitAndLoss fetches the profit and loss report for the given range.
// periods of 0 and an empty timeframe leave the API defaults in place.
func (c *Client) ProfitAndLoss(ctx context.Context, fromDate, toDate string, periods int, timeframe string) (*Report, error) {
	ctx, span := tracing.StartSpan(ctx, "XeroClient.ProfitAndLoss")
	defer span.End()

	query := url.Values{}
	query.Set("fromDate", fromDate)
	query.Set("toDate", toDate)
	if periods > 0 {
		query.Set("periods", fmt.Sprintf("%d", periods))
	}
	if timeframe != "" {
		query.Set("timeframe", timeframe)
	}
	return c.report(ctx, "Reports/ProfitAndLoss", query)
}

// Journals walks the offset-paged Journals endpoint until an empty page.
func (c *Client) Journals(ctx context.Context) ([]Journal, error) {
	ctx, span := tracing.StartSpan(ctx, "XeroClient.Journals")
	defer span.End()

	var all []Journal
	offset := int64(0)
	for {
		query := url.Values{}
		query.Set("offset", fmt.Sprintf("%d", offset))

		var page JournalsResponse
		if err := c.get(ctx, "Journals", query, &page); err != nil {
			return nil, err
		}

		if len(page.Journals) == 0 {
			break
		}

		all = append(all, page.Journals...)
		offset = page.Journals[len(page.Journals)-1].JournalNumber

		c.logger.WithContext(ctx).Debugf("Fetched %d journals (total %d)", len(page.Journals), len(all))

		if len(page.Journals) < JournalsPageSize {
			break
		}
	}
	return all, nil
}

// ManualJournals fetches all manual journals.
func (c *Client) ManualJournals(ctx context.Context) ([]ManualJournal, error) {
	ctx, span := tracing.StartSpan(ctx, "XeroClient.ManualJournals")
	defer span.End()

	var resp ManualJournalsResponse
	if err := c.get(ctx, "ManualJournals", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ManualJournals, nil
}

// Accounts fetches the chart of accounts.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	ctx, span := tracing.StartSpan(ctx, "XeroClient.Accounts")
	defer span.End()

	var resp AccountsResponse
	if err := c.get(ctx, "Accounts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}
