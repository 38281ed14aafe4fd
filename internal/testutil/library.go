// file: internal/testutil/library.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

// Package testutil builds throwaway music folders for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// MakeLibrary creates a temp folder holding a small placeholder file for
// each slash-separated relative name and returns the folder.
func MakeLibrary(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))
	}
	return dir
}

// ListFiles returns every regular file under dir as sorted slash paths
// relative to dir.
func ListFiles(t *testing.T, dir string) []string {
	t.Helper()
	var names []string
	require.NoError(t, filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	}))
	sort.Strings(names)
	return names
}

// ID3Frames maps ID3v2.3 text frame ids (TPE1, TPE2, TIT2, ...) to values.
type ID3Frames map[string]string

// WriteID3File writes a file at path that starts with a minimal ID3v2.3
// tag holding frames. Frames are written in sorted id order.
func WriteID3File(t *testing.T, path string, frames ID3Frames) {
	t.Helper()

	ids := make([]string, 0, len(frames))
	for id := range frames {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var body bytes.Buffer
	for _, id := range ids {
		// 0x00 selects ISO-8859-1 text.
		data := append([]byte{0x00}, []byte(frames[id])...)
		body.WriteString(id)
		require.NoError(t, binary.Write(&body, binary.BigEndian, uint32(len(data))))
		body.Write([]byte{0x00, 0x00})
		body.Write(data)
	}

	// Tag size is a 28-bit syncsafe integer.
	size := body.Len()
	header := []byte{
		'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(size>>21) & 0x7f, byte(size>>14) & 0x7f, byte(size>>7) & 0x7f, byte(size) & 0x7f,
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, append(header, body.Bytes()...), 0o644))
}
