package xero

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/httpclient"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Authenticator exchanges the stored refresh token for a fresh access token.
type Authenticator struct {
	http         *httpclient.Client
	store        *TokenStore
	tokenURL     string
	clientID     string
	clientSecret string
	logger       ectologger.Logger
}

func NewAuthenticator(
	http *httpclient.Client,
	store *TokenStore,
	tokenURL string,
	clientID string,
	clientSecret string,
	logger ectologger.Logger,
) *Authenticator {
	return &Authenticator{
		http:         http,
		store:        store,
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// Refresh performs the refresh-token grant and returns the token set to use
// for the pull. The rotated refresh token is persisted before returning;
// losing it would strand the connection and force a manual re-consent.
func (a *Authenticator) Refresh(ctx context.Context) (*Tokens, error) {
	ctx, span := tracing.StartSpan(ctx, "Authenticator.Refresh")
	defer span.End()

	current, err := a.store.Load()
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", current.RefreshToken)

	basic := base64.StdEncoding.EncodeToString([]byte(a.clientID + ":" + a.clientSecret))
	headers := map[string]string{
		"Authorization": "Basic " + basic,
		"Accept":        "application/json",
	}

	resp, err := a.http.PostForm(ctx, a.tokenURL, form, headers)
	if err != nil {
		return nil, fmt.Errorf("token refresh request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.WithContext(ctx).WithFields(map[string]any{"status_code": resp.StatusCode}).Error("Token refresh rejected")
		return nil, httperror.NewHTTPErrorf(resp.StatusCode, "token refresh rejected with status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(resp.Body, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if tr.AccessToken == "" || tr.RefreshToken == "" {
		return nil, fmt.Errorf("token response missing access or refresh token")
	}

	tokens := &Tokens{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TenantID:     current.TenantID,
	}

	if err := a.store.Save(tokens); err != nil {
		return nil, fmt.Errorf("failed to persist rotated tokens: %w", err)
	}

	a.logger.WithContext(ctx).Debug("Refreshed access token and persisted rotated refresh token")
	return tokens, nil
}
