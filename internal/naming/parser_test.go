// file: internal/naming/parser_test.go
// version: 1.0.0
// guid: deaa0fa3-c704-4f49-9861-35ffbbfeb929

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		stem   string
		artist string
		title  string
	}{
		{"07 - The Beatles - Let It Be", "The Beatles", "Let It Be"},
		{"DJSnake_Turn Down", "DJSnake", "Turn Down"},
		{"Daft Punk - One More Time (Radio Edit)", "Daft Punk", "One More Time"},
		{"01 - Massive Attack - Teardrop [Remastered]", "Massive Attack", "Teardrop"},
		{"Artist – Title", "Artist", "Title"},
		{"Artist--Title", "Artist", "Title"},
		{"Song", UnknownArtist, "Song"},
		{"(Intro)", UnknownArtist, UnknownTitle},
		{"Song-", "Song", UnknownTitle},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			artist, title := Parse(tt.stem)
			assert.Equal(t, tt.artist, artist)
			assert.Equal(t, tt.title, title)
		})
	}
}

func TestParseFieldsLeavesEmptyFields(t *testing.T) {
	artist, title := NewParser().ParseFields("(Intro)")
	assert.Empty(t, artist)
	assert.Empty(t, title)
}

func TestSplitSpacedHyphen(t *testing.T) {
	artist, title, ok := SplitSpacedHyphen("A - B - C")
	assert.True(t, ok)
	assert.Equal(t, "A", artist)
	assert.Equal(t, "B - C", title)

	_, _, ok = SplitSpacedHyphen("A-B")
	assert.False(t, ok)
}

func TestSplitLooseSeparator(t *testing.T) {
	artist, title, ok := SplitLooseSeparator("Left__Right")
	assert.True(t, ok)
	assert.Equal(t, "Left", artist)
	assert.Equal(t, "Right", title)

	_, _, ok = SplitLooseSeparator("NoSeparator")
	assert.False(t, ok)
}

func TestParserCustomStrategies(t *testing.T) {
	reversed := func(stem string) (string, string, bool) {
		artist, title, ok := SplitSpacedHyphen(stem)
		return title, artist, ok
	}
	p := NewParser(reversed)

	artist, title := p.Parse("Title Here - Some Artist")
	assert.Equal(t, "Some Artist", artist)
	assert.Equal(t, "Title Here", title)
}

func TestNewRawName(t *testing.T) {
	tests := []struct {
		filename string
		want     RawName
	}{
		{"Song.MP3", RawName{Stem: "Song", Ext: ".MP3"}},
		{"a.b.flac", RawName{Stem: "a.b", Ext: ".flac"}},
		{"noext", RawName{Stem: "noext"}},
		{".hidden", RawName{Stem: ".hidden"}},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRawName(tt.filename))
		})
	}
}
