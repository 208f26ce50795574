// Package app wires configuration, the data source, and the console
// together. cmd/foreman calls Run and nothing else.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tbranch/foreman/internal/config"
	"github.com/tbranch/foreman/internal/datasource"
	"github.com/tbranch/foreman/internal/prefs"
	"github.com/tbranch/foreman/internal/store"
	"github.com/tbranch/foreman/internal/ui"
)

// Options are the command-line overrides applied on top of the config
// file. Zero values defer to the file and its defaults.
type Options struct {
	ConfigPath string
	APIBase    string
	Records    int
	Timeout    time.Duration
	MockOnly   bool
	Logger     *slog.Logger
}

// Run loads configuration and preferences, builds the data loader, and
// blocks inside the console until it exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBase != "" {
		cfg.APIBase = opts.APIBase
	}
	if opts.Records > 0 {
		cfg.Records = opts.Records
	}
	if opts.Timeout > 0 {
		cfg.FetchTimeout = opts.Timeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	userPrefs, err := prefs.Load(prefs.DefaultPath())
	if err != nil {
		logger.Warn("loading prefs", "error", err)
	}
	theme := cfg.Theme
	if userPrefs.Theme != "" {
		theme = userPrefs.Theme
	}

	var fetcher datasource.Fetcher
	if !opts.MockOnly {
		client, err := datasource.NewClient(cfg.APIBase)
		if err != nil {
			return fmt.Errorf("api address %q: %w", cfg.APIBase, err)
		}
		fetcher = client
	}
	loader := datasource.NewLoader(fetcher, cfg.Records, cfg.FetchTimeout, logger)

	presets, err := config.LoadPresets(cfg.PresetsPath)
	if err != nil {
		logger.Warn("loading presets", "error", err)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store.New(ui.Session{}),
		Loader:    loader,
		Presets:   presets,
		ThemeName: theme,
		PrefsPath: prefs.DefaultPath(),
	})
}
