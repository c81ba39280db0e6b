package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Generate returns the content hash for a row. Fields are lowercased and
// trimmed before hashing so cosmetic differences in upstream payloads do not
// produce new snapshot rows.
func Generate(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, strings.ToLower(strings.TrimSpace(f)))
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
