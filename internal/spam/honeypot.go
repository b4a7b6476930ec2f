// Package spam classifies submissions that should be quietly dropped.
package spam

import "strings"

// IsHoneypot reports whether the hidden website field was filled in. Humans
// never see the field, so any non-empty value marks an automated submission.
// Callers must still report success upstream to avoid signaling bots.
func IsHoneypot(website string) bool {
	return strings.TrimSpace(website) != ""
}
