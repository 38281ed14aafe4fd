// file: internal/scanner/scanner.go
// version: 2.0.0
// guid: 3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f

package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jdfalk/music-renamer/internal/logging"
	"github.com/jdfalk/music-renamer/internal/naming"
)

// File is an audio file found during discovery.
type File struct {
	Path string
	Dir  string
	Name naming.RawName
}

// Options controls discovery.
type Options struct {
	Recursive  bool
	Extensions []string
}

// Discover lists audio files under root in lexical walk order. Only regular
// files (or symlinks to them) whose lower-cased extension is in
// opts.Extensions are returned.
func Discover(root string, opts Options) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	exts := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		exts[strings.ToLower(ext)] = true
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logging.Warnf("scanner: skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if path != root && !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !isFile(path, d) {
			return nil
		}

		raw := naming.NewRawName(d.Name())
		if !exts[strings.ToLower(raw.Ext)] {
			return nil
		}
		files = append(files, File{
			Path: path,
			Dir:  filepath.Dir(path),
			Name: raw,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Debugf("scanner: %d matching files under %s", len(files), root)
	return files, nil
}

func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsAudioFile reports whether name carries one of exts, ignoring case.
func IsAudioFile(name string, exts []string) bool {
	ext := strings.ToLower(naming.NewRawName(filepath.Base(name)).Ext)
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
