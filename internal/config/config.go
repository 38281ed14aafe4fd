// file: internal/config/config.go
// version: 2.1.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultExtensions matches the audio types renamed when --exts is not given.
const DefaultExtensions = ".mp3,.m4a,.flac,.wav"

// Config holds application configuration
type Config struct {
	Recursive     bool
	UseTags       bool
	Apply         bool // false means preview only
	Extensions    []string
	Format        string // text, table or yaml
	MetricsFile   string
	Progress      bool
	Verbose       bool
	WatchDebounce time.Duration
}

var AppConfig Config

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("recursive", false)
	viper.SetDefault("use_tags", false)
	viper.SetDefault("apply", false)
	viper.SetDefault("extensions", DefaultExtensions)
	viper.SetDefault("format", "text")
	viper.SetDefault("progress", true)
	viper.SetDefault("verbose", false)
	viper.SetDefault("watch_debounce", "2s")
}

// InitConfig initializes the application configuration
func InitConfig() {
	SetDefaults()

	AppConfig = Config{
		Recursive:     viper.GetBool("recursive"),
		UseTags:       viper.GetBool("use_tags"),
		Apply:         viper.GetBool("apply"),
		Extensions:    ParseExtensions(viper.GetStringSlice("extensions")...),
		Format:        strings.ToLower(viper.GetString("format")),
		MetricsFile:   viper.GetString("metrics_file"),
		Progress:      viper.GetBool("progress"),
		Verbose:       viper.GetBool("verbose"),
		WatchDebounce: viper.GetDuration("watch_debounce"),
	}

	if len(AppConfig.Extensions) == 0 {
		AppConfig.Extensions = ParseExtensions(DefaultExtensions)
	}
}

// ParseExtensions turns comma-separated extension lists into lower-cased,
// dot-prefixed, de-duplicated entries. "mp3, .FLAC" yields [".mp3" ".flac"].
func ParseExtensions(lists ...string) []string {
	var exts []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, e := range strings.Split(list, ",") {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" || e == "." {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			if !seen[e] {
				seen[e] = true
				exts = append(exts, e)
			}
		}
	}
	return exts
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	switch c.Format {
	case "", "text", "table", "yaml":
	default:
		return fmt.Errorf("invalid format %q: want text, table or yaml", c.Format)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("invalid watch_debounce %v", c.WatchDebounce)
	}
	return nil
}
