package xero

import (
	"encoding/json"
	"fmt"
	"os"
)

// Tokens is the on-disk token state. Xero rotates the refresh token on every
// use, so the file has to be rewritten the moment a refresh succeeds.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TenantID     string `json:"tenant_id"`
}

// TokenStore reads and writes the token file.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

func (s *TokenStore) Load() (*Tokens, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}

	var tokens Tokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", s.path, err)
	}

	if tokens.RefreshToken == "" {
		return nil, fmt.Errorf("token file %s has no refresh token", s.path)
	}

	return &tokens, nil
}

func (s *TokenStore) Save(tokens *Tokens) error {
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", s.path, err)
	}
	return nil
}
