// file: internal/metadata/metadata.go
// version: 2.0.0
// guid: 9d0e1f2a-3b4c-5d6e-7f8a-9b0c1d2e3f4a

package metadata

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
	"github.com/jdfalk/music-renamer/internal/logging"
	"github.com/jdfalk/music-renamer/internal/naming"
)

// Prober reads an optional artist and title for a file. Implementations
// never fail: anything they cannot read comes back empty.
type Prober interface {
	Probe(path string) naming.Hint
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(path string) naming.Hint

// Probe calls f(path).
func (f ProberFunc) Probe(path string) naming.Hint {
	return f(path)
}

// NopProber is used when tag reading is disabled.
type NopProber struct{}

// Probe always returns an empty hint.
func (NopProber) Probe(string) naming.Hint {
	return naming.Hint{}
}

// TagProber reads ID3, MP4 and Vorbis/FLAC tags.
type TagProber struct{}

// Probe returns the artist and title tags of path. Read errors are logged at
// debug level and produce an empty hint.
func (TagProber) Probe(path string) naming.Hint {
	hint, err := ReadTags(path)
	if err != nil {
		logging.Debugf("metadata: no tags for %s: %v", path, err)
		return naming.Hint{}
	}
	return hint
}

// ReadTags extracts artist and title from the embedded tags of filePath.
func ReadTags(filePath string) (naming.Hint, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return naming.Hint{}, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return naming.Hint{}, fmt.Errorf("error reading tags: %w", err)
	}

	hint := naming.Hint{
		Artist: strings.TrimSpace(m.Artist()),
		Title:  strings.TrimSpace(m.Title()),
	}
	// Some rippers only fill the album artist.
	if hint.Artist == "" {
		hint.Artist = strings.TrimSpace(m.AlbumArtist())
	}
	return hint, nil
}
