// file: internal/naming/sanitize.go
// version: 1.0.0
// guid: 3af4b0a5-16ee-4c7b-8915-137df4c93f3b

package naming

import "strings"

// ReservedChars are the characters rejected by at least one common filesystem.
const ReservedChars = `\/:*?"<>|`

var reservedReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(ReservedChars)*2)
	for _, r := range ReservedChars {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}()

// Sanitize replaces reserved filesystem characters with spaces, collapses
// whitespace and trims the result. Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	return collapseSpace(reservedReplacer.Replace(s))
}
