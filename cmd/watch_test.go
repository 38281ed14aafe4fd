// file: cmd/watch_test.go
// version: 1.0.0
// guid: 0c2f5e0b-58a3-4d0b-9e2c-3c6c4a2f7b11

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jdfalk/music-renamer/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the watcher goroutine write while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunWatchReplansOnChange(t *testing.T) {
	dir := t.TempDir()
	origConfig := config.AppConfig
	t.Cleanup(func() { config.AppConfig = origConfig })
	config.AppConfig = config.Config{
		Extensions:    config.ParseExtensions(config.DefaultExtensions),
		Format:        "text",
		WatchDebounce: 50 * time.Millisecond,
	}

	out := &syncBuffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runWatch(ctx, cmd, dir) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "No files to rename.")
	}, 2*time.Second, 20*time.Millisecond)

	// Give the watcher time to register before the file appears.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Band_Song.mp3"), []byte("audio"), 0o644))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "- Band_Song.mp3  ->  Band - Song.mp3")
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runWatch did not return after cancel")
	}

	_, err := os.Stat(filepath.Join(dir, "Band_Song.mp3"))
	assert.NoError(t, err, "watch without apply must not rename")
}

func TestWatchFolderNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	out, err := executeCommand(t, "watch", missing)
	require.NoError(t, err)
	assert.Equal(t, "Folder not found: "+missing+"\n", out)
}
