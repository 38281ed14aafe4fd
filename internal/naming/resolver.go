// file: internal/naming/resolver.go
// version: 1.1.0
// guid: 035eab73-4180-49d7-abca-ae4b13334823

package naming

import (
	"fmt"
	"strings"
)

// Hint is the optional artist and title read from embedded tags.
// Empty fields mean the value was absent.
type Hint struct {
	Artist string
	Title  string
}

// ResolvedName is a filesystem-safe artist and title, both non-empty.
type ResolvedName struct {
	Artist string
	Title  string
}

// Filename builds "Artist - Title.ext" with ext lower-cased.
func (n ResolvedName) Filename(ext string) string {
	return fmt.Sprintf("%s - %s%s", n.Artist, n.Title, strings.ToLower(ext))
}

// SkipReason explains why a file could not be resolved.
type SkipReason string

const (
	// SkipNoTitle means neither tags nor filename produced a usable title.
	SkipNoTitle SkipReason = "no usable title"
)

// Resolution is the per-file outcome of name resolution. Files with
// OK == false are left alone without being reported as errors.
type Resolution struct {
	Name   ResolvedName
	OK     bool
	Reason SkipReason
}

// Resolver combines tag hints with filename parsing.
type Resolver struct {
	parser *Parser
}

// NewResolver creates a resolver. A nil parser uses the default strategies.
func NewResolver(parser *Parser) *Resolver {
	if parser == nil {
		parser = defaultParser
	}
	return &Resolver{parser: parser}
}

// Resolve picks artist and title for one file. Each field comes from the
// hint when the hint value is non-blank, otherwise from the filename; the
// chosen values are cleaned afterwards. A missing artist becomes
// UnknownArtist; a title that cleans to nothing makes the file unresolvable.
func (r *Resolver) Resolve(raw RawName, hint Hint) Resolution {
	artist := strings.TrimSpace(hint.Artist)
	title := strings.TrimSpace(hint.Title)

	if artist == "" || title == "" {
		parsedArtist, parsedTitle := r.parser.ParseFields(raw.Stem)
		if artist == "" {
			artist = parsedArtist
		}
		if title == "" {
			title = parsedTitle
		}
	}

	artist = clean(artist)
	title = clean(title)

	if title == "" {
		return Resolution{Reason: SkipNoTitle}
	}
	if artist == "" {
		artist = UnknownArtist
	}
	return Resolution{
		Name: ResolvedName{Artist: artist, Title: title},
		OK:   true,
	}
}

func clean(s string) string {
	return Sanitize(Normalize(s))
}
