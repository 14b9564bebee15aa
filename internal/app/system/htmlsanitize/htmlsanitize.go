// Package htmlsanitize strips dangerous markup from user-authored content
// before it is stored. Profile note bodies pass through here on every write.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// policy allows basic formatting (p, strong, em, lists, safe links) and
// removes scripts, event handlers, and javascript: URLs.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
