// Package normalize holds the canonical forms for user-entered identity
// fields. Emails are compared lowercase; names keep their case but lose
// surrounding whitespace.
package normalize

import "strings"

// Email lowercases and trims an email address for storage and lookup.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}
