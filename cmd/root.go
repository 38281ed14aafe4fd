// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jdfalk/music-renamer/internal/config"
	"github.com/jdfalk/music-renamer/internal/fileops"
	"github.com/jdfalk/music-renamer/internal/logging"
	"github.com/jdfalk/music-renamer/internal/metadata"
	"github.com/jdfalk/music-renamer/internal/metrics"
	"github.com/jdfalk/music-renamer/internal/organizer"
	"github.com/jdfalk/music-renamer/internal/scanner"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command tree. Tests build a fresh tree per run.
func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "music-renamer <folder>",
		Short: "Rename music files to 'Artist - Song.ext'",
		Long: `Music Renamer gives audio files a canonical "Artist - Title.ext" name,
taking artist and title from embedded tags or from the existing filename.

Nothing is renamed unless --apply is given; without it the planned
changes are only printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, ok, err := resolveFolder(cmd.OutOrStdout(), args[0])
			if err != nil || !ok {
				return err
			}
			r := newRenamer(cmd.OutOrStdout(), proberFor(config.AppConfig))
			return r.run(folder)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.music-renamer.yaml)")
	flags.Bool("recursive", false, "process subfolders")
	flags.Bool("use-tags", false, "prefer ID3/metadata tags when available")
	flags.Bool("apply", false, "actually rename files (otherwise dry run)")
	flags.String("exts", config.DefaultExtensions, "comma-separated extensions to include")
	flags.String("format", "text", "report format: text, table or yaml")
	flags.String("metrics-file", "", "write Prometheus textfile metrics to this path after each run")
	flags.Bool("progress", true, "show a progress bar while renaming on a terminal")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	for key, flag := range map[string]string{
		"recursive":    "recursive",
		"use_tags":     "use-tags",
		"apply":        "apply",
		"extensions":   "exts",
		"format":       "format",
		"metrics_file": "metrics-file",
		"progress":     "progress",
		"verbose":      "verbose",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(newWatchCmd())
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".music-renamer")
	}

	viper.SetEnvPrefix("MUSIC_RENAMER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logging.Infof("Using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config.InitConfig()
	if err := config.AppConfig.Validate(); err != nil {
		return err
	}

	if config.AppConfig.Verbose {
		logging.SetLevel(logging.DebugLevel)
	} else {
		logging.SetLevel(logging.WarnLevel)
	}
	metrics.Register()
	return nil
}

// resolveFolder expands ~ and makes the folder absolute. A missing folder
// is reported on out and is not an error.
func resolveFolder(out io.Writer, arg string) (string, bool, error) {
	expanded, err := homedir.Expand(arg)
	if err != nil {
		return "", false, fmt.Errorf("expand %s: %w", arg, err)
	}
	folder, err := filepath.Abs(expanded)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", arg, err)
	}
	if _, err := os.Stat(folder); err != nil {
		fmt.Fprintln(out, "Folder not found:", folder)
		return folder, false, nil
	}
	return folder, true, nil
}

func proberFor(cfg config.Config) metadata.Prober {
	if cfg.UseTags {
		return metadata.TagProber{}
	}
	return metadata.NopProber{}
}

// renamer runs one scan, plan, report and optional apply cycle.
type renamer struct {
	out    io.Writer
	prober metadata.Prober
}

func newRenamer(out io.Writer, prober metadata.Prober) *renamer {
	return &renamer{out: out, prober: prober}
}

func (r *renamer) run(folder string) error {
	cfg := config.AppConfig
	rl := logging.NewRunLogger("rename")
	rl.LogStart(folder)

	format, err := organizer.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	files, err := scanner.Discover(folder, scanner.Options{
		Recursive:  cfg.Recursive,
		Extensions: cfg.Extensions,
	})
	if err != nil {
		rl.LogError(err)
		return fmt.Errorf("scan error: %w", err)
	}

	planner := organizer.NewPlanner(nil, r.prober, nil)
	cs := planner.Plan(files)
	cs.RunID = rl.RunID()
	cs.Folder = folder
	rl.Debug("%d files, %d renames, %d unchanged, %d unresolvable", len(files), cs.Len(), cs.Unchanged, len(cs.Skipped))

	rep := organizer.NewReporter(r.out, format, cfg.Apply)
	if err := rep.Summary(cs); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cs.Len() > 0 {
		if cfg.Apply {
			if err := r.apply(planner, cs, rep, folder); err != nil {
				rl.LogError(err)
				r.writeMetrics()
				return err
			}
		} else {
			rep.DryRun()
		}
	}

	rl.LogSuccess(fmt.Sprintf("%d renames (apply=%v)", cs.Len(), cfg.Apply))
	r.writeMetrics()
	return nil
}

func (r *renamer) apply(planner *organizer.Planner, cs organizer.ChangeSet, rep *organizer.Reporter, folder string) error {
	lock, err := fileops.LockFolder(folder)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.Warnf("failed to release lock for %s: %v", folder, err)
		}
	}()

	rep.Applying()
	var progress organizer.Progress
	if config.AppConfig.Progress && isatty.IsTerminal(os.Stderr.Fd()) {
		progress = progressbar.NewOptions(cs.Len(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("renaming"),
			progressbar.OptionClearOnFinish(),
		)
	}
	if _, err := planner.Execute(cs, progress); err != nil {
		return err
	}
	rep.Done()
	return nil
}

func (r *renamer) writeMetrics() {
	if config.AppConfig.MetricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(config.AppConfig.MetricsFile); err != nil {
		logging.Warnf("%v", err)
	}
}
