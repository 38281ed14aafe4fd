// file: internal/fileops/lock.go
// version: 1.0.0
// guid: bf5caff0-e89a-41fc-b585-80cc1d62e189

package fileops

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked means another apply run holds the lock for the same folder.
var ErrLocked = errors.New("folder is locked by another run")

// FolderLock is an advisory lock scoped to one music folder. The lock file
// lives in the temp directory so the folder itself is never touched.
type FolderLock struct {
	lock *flock.Flock
}

// LockPath returns the lock file used for folder.
func LockPath(folder string) string {
	abs, err := filepath.Abs(folder)
	if err != nil {
		abs = folder
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "music-renamer-"+hex.EncodeToString(sum[:8])+".lock")
}

// LockFolder takes the lock for folder without blocking.
func LockFolder(folder string) (*FolderLock, error) {
	l := flock.New(LockPath(folder))
	ok, err := l.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", folder, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s: %w", folder, ErrLocked)
	}
	return &FolderLock{lock: l}, nil
}

// Unlock releases the lock and removes the lock file.
func (fl *FolderLock) Unlock() error {
	if fl == nil || fl.lock == nil {
		return nil
	}
	path := fl.lock.Path()
	if err := fl.lock.Unlock(); err != nil {
		return err
	}
	_ = os.Remove(path)
	return nil
}
