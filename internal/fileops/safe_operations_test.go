// file: internal/fileops/safe_operations_test.go
// version: 2.1.0
// guid: 3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f

package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.mp3")
	if Exists(path) {
		t.Fatal("expected missing file")
	}
	writeFile(t, path, "x")
	if !Exists(path) {
		t.Fatal("expected file to exist")
	}
}

func TestRenameInPlace(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "01 - a.mp3")
	dst := filepath.Join(dir, "Artist - Title.mp3")
	writeFile(t, src, "audio")

	if err := RenameInPlace(src, dst); err != nil {
		t.Fatalf("RenameInPlace: %v", err)
	}
	if Exists(src) {
		t.Error("source still present")
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(data) != "audio" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestRenameInPlaceRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mp3")
	dst := filepath.Join(dir, "b.mp3")
	writeFile(t, src, "a")
	writeFile(t, dst, "b")

	err := RenameInPlace(src, dst)
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "b" {
		t.Error("destination was overwritten")
	}
}

func TestRenameInPlaceRejectsOtherDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mp3")
	writeFile(t, src, "a")

	err := RenameInPlace(src, filepath.Join(dir, "sub", "a.mp3"))
	if !errors.Is(err, ErrCrossDirectory) {
		t.Fatalf("expected ErrCrossDirectory, got %v", err)
	}
}

func TestRenameInPlaceMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := RenameInPlace(filepath.Join(dir, "gone.mp3"), filepath.Join(dir, "new.mp3"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.mp3")
	b := filepath.Join(dir, "b.mp3")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	if !SameFile(a, a) {
		t.Error("expected a to be the same file as itself")
	}
	if SameFile(a, b) {
		t.Error("expected different files")
	}
	if SameFile(a, filepath.Join(dir, "missing")) {
		t.Error("missing file cannot be the same file")
	}
}

func TestRenameInPlaceRefusesHardLink(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "01 - Artist - Title.mp3")
	dst := filepath.Join(dir, "Artist - Title.mp3")
	writeFile(t, src, "audio")
	if err := os.Link(src, dst); err != nil {
		t.Skipf("hard links not supported: %v", err)
	}

	err := RenameInPlace(src, dst)
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
	if !Exists(src) {
		t.Error("source must be left in place")
	}
}
