package normalize

import "strings"

// Column normalizes a display name to a column identifier.
func Column(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "_")
}
