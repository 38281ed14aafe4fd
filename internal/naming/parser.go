// file: internal/naming/parser.go
// version: 1.0.0
// guid: e60cfa27-ef2d-4f24-b073-ff4a1e1c6886

package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Placeholders used when a field cannot be derived from a filename.
const (
	UnknownArtist = "Unknown Artist"
	UnknownTitle  = "Unknown Title"
)

var (
	spacedHyphenRe   = regexp.MustCompile(`\s+-\s+`)
	looseSeparatorRe = regexp.MustCompile(`[_–—-]{1,2}`)
)

// RawName is the original stem and extension of a file.
type RawName struct {
	Stem string
	Ext  string
}

// NewRawName splits a base filename into stem and extension. A leading dot
// on its own (".hidden") is part of the stem.
func NewRawName(filename string) RawName {
	ext := filepath.Ext(filename)
	if ext == filename || ext == "." {
		ext = ""
	}
	return RawName{Stem: strings.TrimSuffix(filename, ext), Ext: ext}
}

// Strategy tries to split a prefix-stripped stem into artist and title.
type Strategy func(stem string) (artist, title string, ok bool)

// DefaultStrategies are tried in order; the first one that succeeds wins.
var DefaultStrategies = []Strategy{
	SplitSpacedHyphen,
	SplitLooseSeparator,
}

// SplitSpacedHyphen splits "Artist - Title" on the first spaced hyphen.
// Both halves must be non-empty.
func SplitSpacedHyphen(stem string) (string, string, bool) {
	parts := spacedHyphenRe.Split(stem, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	artist, title := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if artist == "" || title == "" {
		return "", "", false
	}
	return artist, title, true
}

// SplitLooseSeparator splits on the first run of one or two underscores,
// hyphens, en dashes or em dashes ("Artist_Title", "Artist--Title").
func SplitLooseSeparator(stem string) (string, string, bool) {
	parts := looseSeparatorRe.Split(stem, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// Parser derives artist and title from a filename stem.
type Parser struct {
	Strategies []Strategy
}

// NewParser returns a parser using the given strategies, or
// DefaultStrategies when none are given.
func NewParser(strategies ...Strategy) *Parser {
	if len(strategies) == 0 {
		strategies = DefaultStrategies
	}
	return &Parser{Strategies: strategies}
}

// ParseFields returns the normalized artist and title found in stem.
// Either value may be empty.
func (p *Parser) ParseFields(stem string) (artist, title string) {
	stem = StripTrackPrefix(stem)
	title = stem
	for _, try := range p.Strategies {
		if a, t, ok := try(stem); ok {
			artist, title = a, t
			break
		}
	}
	return Normalize(artist), Normalize(title)
}

// Parse is ParseFields with placeholders substituted for empty fields.
func (p *Parser) Parse(stem string) (artist, title string) {
	artist, title = p.ParseFields(stem)
	if artist == "" {
		artist = UnknownArtist
	}
	if title == "" {
		title = UnknownTitle
	}
	return artist, title
}

var defaultParser = NewParser()

// Parse splits stem with the default strategies. It never fails; missing
// fields come back as UnknownArtist or UnknownTitle.
func Parse(stem string) (artist, title string) {
	return defaultParser.Parse(stem)
}
