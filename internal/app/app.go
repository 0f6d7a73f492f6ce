package app

import (
	"context"
	"fmt"
	"time"

	"ladle/internal/config"
	"ladle/internal/mealie"
	"ladle/internal/prefs"
	"ladle/internal/state"
	"ladle/internal/ui"
)

// Options configure the Ladle application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/ladle/prefs.toml
	PollEvery  int    // seconds; zero uses default
}

// Run boots the Ladle TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := mealie.NewClient(cfg.URL, mealie.Options{
		Token:   cfg.Token,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("init mealie client: %w", err)
	}
	defer client.Close()

	// Scoped endpoints need the prefix probe before any mealplan, shopping,
	// or statistics call; the client never probes on its own.
	client.DefineHouseholdSupport(ctx)

	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, store, client, interval)

	// Do initial refresh to populate store before UI starts
	_ = refresh(ctx, store, client)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
