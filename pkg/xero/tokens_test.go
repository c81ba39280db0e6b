package xero

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewTokenStore(path)

	err := store.Save(&Tokens{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TenantID:     "tenant-1",
	})
	require.NoError(t, err)

	tokens, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, "tenant-1", tokens.TenantID)
}

func TestTokenStoreLoadMissingFile(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.Load()
	assert.Error(t, err)
}

func TestTokenStoreLoadRequiresRefreshToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewTokenStore(path)
	require.NoError(t, store.Save(&Tokens{AccessToken: "access"}))

	_, err := store.Load()
	assert.ErrorContains(t, err, "no refresh token")
}
