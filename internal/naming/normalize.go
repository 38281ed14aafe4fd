// file: internal/naming/normalize.go
// version: 1.0.0
// guid: d07fc758-a1bb-4bc2-a1c0-10901d97111f

package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// bracketRe matches one (), [] or {} span up to the first closing bracket
	// of any kind. Nested brackets are not balanced.
	bracketRe = regexp.MustCompile(`\s*[\(\[\{].*?[\)\]\}]\s*`)
	// doubleDashRe repairs "A - - B" left behind after bracket removal.
	doubleDashRe = regexp.MustCompile(`\s+-\s+-\s*`)
	// trackPrefixRe matches "01 - ", "1. ", "A1_", "(01) " and similar.
	trackPrefixRe = regexp.MustCompile(`^\s*[\(\[]?\s*[A-Za-z]?\s*\d{1,3}\s*[\)\]]?\s*[-._)]?\s*`)
)

// Normalize cleans decorative text out of an artist or title fragment.
//
// The input is NFKC-normalized, whitespace runs are collapsed, bracketed
// annotations are dropped and the ends are trimmed of spaces, hyphens,
// periods and underscores. Brackets are removed in a single pass, so
// nested brackets can leave residue behind.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = collapseSpace(s)
	s = bracketRe.ReplaceAllString(s, " ")
	s = collapseSpace(s)
	s = doubleDashRe.ReplaceAllString(s, " - ")
	return strings.TrimFunc(s, isDecoration)
}

// StripTrackPrefix removes a single leading track-number marker from stem.
func StripTrackPrefix(stem string) string {
	if loc := trackPrefixRe.FindStringIndex(stem); loc != nil {
		stem = stem[loc[1]:]
	}
	return strings.TrimSpace(stem)
}

// collapseSpace joins whitespace-separated fields with a single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isDecoration(r rune) bool {
	switch r {
	case ' ', '-', '.', '_':
		return true
	}
	return unicode.IsSpace(r)
}
