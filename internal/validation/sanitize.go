package validation

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// SanitizePlain strips all HTML from user-supplied text fields such as
// names, titles and message bodies.
func SanitizePlain(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// SanitizeRich allows a safe subset of HTML in long-form content such as
// post bodies and profile bios.
func SanitizeRich(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}
