// file: internal/metadata/metadata_test.go
// version: 1.1.0
// guid: 19b8efc4-fe12-4184-90ce-ddb5362ff557

package metadata

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jdfalk/music-renamer/internal/naming"
	"github.com/jdfalk/music-renamer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeID3File(t *testing.T, name string, frames testutil.ID3Frames) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	testutil.WriteID3File(t, path, frames)
	return path
}

func TestReadTags(t *testing.T) {
	path := writeID3File(t, "track.mp3", testutil.ID3Frames{
		"TPE1": "The Beatles",
		"TIT2": "Let It Be",
	})

	hint, err := ReadTags(path)
	require.NoError(t, err)
	assert.Equal(t, naming.Hint{Artist: "The Beatles", Title: "Let It Be"}, hint)
}

func TestReadTagsFallsBackToAlbumArtist(t *testing.T) {
	path := writeID3File(t, "track.mp3", testutil.ID3Frames{
		"TPE2": "Various",
		"TIT2": "Song",
	})

	hint, err := ReadTags(path)
	require.NoError(t, err)
	assert.Equal(t, "Various", hint.Artist)
	assert.Equal(t, "Song", hint.Title)
}

func TestTagProberSwallowsErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "noise.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("not an audio file at all"), 0o644))

	var p TagProber
	assert.Equal(t, naming.Hint{}, p.Probe(garbage))
	assert.Equal(t, naming.Hint{}, p.Probe(filepath.Join(dir, "missing.mp3")))
}

func TestNopProber(t *testing.T) {
	assert.Equal(t, naming.Hint{}, NopProber{}.Probe("anything.mp3"))
}

func TestCachedProber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	var calls atomic.Int32
	inner := ProberFunc(func(string) naming.Hint {
		n := calls.Add(1)
		return naming.Hint{Title: string(rune('0' + n))}
	})
	p := NewCachedProber(inner, time.Hour)

	first := p.Probe(path)
	second := p.Probe(path)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	// A changed file gets a new cache key.
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.WriteFile(path, []byte("version two"), 0o644))
	require.NoError(t, os.Chtimes(path, later, later))
	third := p.Probe(path)
	assert.NotEqual(t, first, third)
	assert.Equal(t, int32(2), calls.Load())

	assert.Equal(t, 0, p.Prune())
}
