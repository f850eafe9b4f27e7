package csvtext

import "strings"

// EscapeField returns the CSV representation of value: quote-wrapped with
// internal quotes doubled when forceQuote is set or the value contains a
// comma, quote or line break, otherwise the value unchanged.
func EscapeField(value string, forceQuote bool) string {
	if !forceQuote && !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
