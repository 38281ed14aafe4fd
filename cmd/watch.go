// file: cmd/watch.go
// version: 1.0.0
// guid: 61f830d6-6fd7-4d0f-bbc7-5fd687aa917d

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jdfalk/music-renamer/internal/config"
	"github.com/jdfalk/music-renamer/internal/logging"
	"github.com/jdfalk/music-renamer/internal/metadata"
	"github.com/jdfalk/music-renamer/internal/watcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// probeCacheTTL bounds how long a tag read is reused between watch passes.
const probeCacheTTL = 30 * time.Minute

func newWatchCmd() *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch <folder>",
		Short: "Re-run the rename plan whenever audio files change",
		Long: `Watch a music folder and re-run the rename plan each time audio files
are added, removed or renamed. Without --apply every pass is a dry run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, ok, err := resolveFolder(cmd.OutOrStdout(), args[0])
			if err != nil || !ok {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, cmd, folder)
		},
	}

	watchCmd.Flags().Duration("debounce", 2*time.Second, "quiet period before a pass runs")
	_ = viper.BindPFlag("watch_debounce", watchCmd.Flags().Lookup("debounce"))
	return watchCmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, folder string) error {
	cfg := config.AppConfig

	prober := proberFor(cfg)
	var cached *metadata.CachedProber
	if cfg.UseTags {
		cached = metadata.NewCachedProber(prober, probeCacheTTL)
		prober = cached
	}
	r := newRenamer(cmd.OutOrStdout(), prober)

	if err := r.run(folder); err != nil {
		return err
	}

	w := watcher.New(func(root string) {
		fmt.Fprintln(cmd.OutOrStdout())
		if err := r.run(root); err != nil {
			logging.Errorf("watch pass failed: %v", err)
		}
		if cached != nil {
			if n := cached.Prune(); n > 0 {
				logging.Debugf("watch: pruned %d cached tag reads", n)
			}
		}
	}, watcher.Options{
		Debounce:   cfg.WatchDebounce,
		Recursive:  cfg.Recursive,
		Extensions: cfg.Extensions,
	})
	if err := w.Start(folder); err != nil {
		return fmt.Errorf("watch %s: %w", folder, err)
	}
	defer w.Stop()

	logging.Infof("watching %s (apply=%v)", folder, cfg.Apply)
	<-ctx.Done()
	return nil
}
