// file: internal/fileops/safe_operations.go
// version: 2.1.0
// guid: 8f7e6d5c-4b3a-2918-7f6e-5d4c3b2a1908

package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrDestinationExists is returned when something appeared at the
	// destination between planning and renaming.
	ErrDestinationExists = errors.New("destination already exists")
	// ErrCrossDirectory is returned when source and destination do not
	// share a parent directory.
	ErrCrossDirectory = errors.New("source and destination are in different directories")
)

// Exists reports whether any filesystem entry, including a dangling
// symlink, is present at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// SameFile reports whether a and b name the same file on disk. On
// case-insensitive filesystems "song.mp3" and "Song.mp3" are the same file.
func SameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// RenameInPlace renames src to dst inside a single directory. It refuses to
// overwrite an existing destination unless dst differs from src only by
// case and is the same file (a case-only rename on a case-insensitive
// filesystem). A hard link to src is an existing destination.
func RenameInPlace(src, dst string) error {
	if filepath.Clean(filepath.Dir(src)) != filepath.Clean(filepath.Dir(dst)) {
		return fmt.Errorf("rename %s -> %s: %w", src, dst, ErrCrossDirectory)
	}
	if Exists(dst) && !(strings.EqualFold(filepath.Base(src), filepath.Base(dst)) && SameFile(src, dst)) {
		return fmt.Errorf("rename %s -> %s: %w", src, dst, ErrDestinationExists)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", src, dst, err)
	}
	return nil
}
