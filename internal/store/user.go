package store

import "strings"

// NormalizeEmail returns the canonical form under which emails are stored
// and looked up: surrounding whitespace removed, lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
