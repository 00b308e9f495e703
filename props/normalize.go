package props

import (
	"regexp"
	"strings"
)

var nonPropertyNameChars = regexp.MustCompile(`[^a-z0-9.]`)

// NormalizePropertyName normalizes a raw property name by lower-casing all
// letters, replacing each space with a period, and removing every remaining
// character that is not a lowercase letter, digit, or period. Spaces are
// substituted before the strip, so space-separated words become period-joined
// tokens; any other whitespace is stripped outright. Blank input is returned
// unchanged. The function is idempotent.
func NormalizePropertyName(rawPropertyName string) string {
	if strings.TrimSpace(rawPropertyName) == "" {
		return rawPropertyName
	}
	name := strings.ReplaceAll(strings.ToLower(rawPropertyName), " ", ".")
	return nonPropertyNameChars.ReplaceAllString(name, "")
}
