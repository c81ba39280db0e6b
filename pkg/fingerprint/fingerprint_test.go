package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := Generate("tenant", "2025-01-31", "Assets", "Cash", "id-1", "090")
		b := Generate("tenant", "2025-01-31", "Assets", "Cash", "id-1", "090")
		assert.Equal(t, a, b)
		assert.Len(t, a, 64)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		a := Generate("Tenant", " Cash ")
		b := Generate("tenant", "cash")
		assert.Equal(t, a, b)
	})

	t.Run("field order matters", func(t *testing.T) {
		a := Generate("x", "y")
		b := Generate("y", "x")
		assert.NotEqual(t, a, b)
	})

	t.Run("different values differ", func(t *testing.T) {
		a := Generate("tenant", "2025-01-31", "Assets", "Cash")
		b := Generate("tenant", "2025-01-31", "Assets", "Bank")
		assert.NotEqual(t, a, b)
	})
}
