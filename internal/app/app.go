package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/five82/codemarket/internal/config"
	"github.com/five82/codemarket/internal/logging"
	"github.com/five82/codemarket/internal/market"
	"github.com/five82/codemarket/internal/prefs"
	"github.com/five82/codemarket/internal/state"
	"github.com/five82/codemarket/internal/ui"
)

// Options configure the codemarket application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/codemarket/prefs.toml
	SeedPath   string // overrides seed_path from the config
	Debug      bool   // log no-op dispatches too
}

// Run boots the codemarket TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	sess, err := setup(opts)
	if err != nil {
		return err
	}
	defer sess.close()

	uiOpts := sess.ui
	uiOpts.Context = ctx
	runErr := ui.Run(uiOpts)

	snap := sess.store.Snapshot()
	sess.log.Info().
		Uint64("revision", snap.Revision).
		Int("listings", snap.State.Count()).
		Int("sold", snap.State.SoldCount()).
		Msg("session ended")

	if runErr != nil {
		return fmt.Errorf("run ui: %w", runErr)
	}
	return nil
}

// session is everything Run wires together before the UI starts.
type session struct {
	store *state.Store
	ui    ui.Options
	log   zerolog.Logger
	logs  *logging.Session
}

func (s *session) close() {
	_ = s.logs.Close()
}

func setup(opts Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithSeedPath(opts.SeedPath)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	logs, err := logging.Open(cfg.LogPath, level)
	if err != nil {
		// The session still runs; it just leaves no activity trail.
		logs = logging.Discard()
	}
	logger := logs.Logger.With().Str("component", "app").Logger()

	seed, err := market.LoadSeed(cfg.SeedPath)
	if err != nil {
		logger.Error().Err(err).Str("seed", cfg.SeedPath).Msg("load seed failed")
		_ = logs.Close()
		return nil, fmt.Errorf("load seed: %w", err)
	}

	store := state.NewStore(market.NewState(seed), logs.Logger)
	logger.Info().
		Str("seed", cfg.SeedPath).
		Int("listings", len(seed)).
		Str("theme", userPrefs.Theme).
		Str("filter", userPrefs.Filter).
		Msg("session started")

	return &session{
		store: store,
		log:   logger,
		logs:  logs,
		ui: ui.Options{
			Store: store,
			Present: market.PresentOptions{
				Currency:     cfg.Currency,
				PreviewLines: cfg.PreviewLines,
				LockSoldRows: cfg.LockSoldRows,
			},
			ThemeName: userPrefs.Theme,
			Filter:    userPrefs.Filter,
			PrefsPath: prefsPath,
			LogPath:   logs.Path,
			Logger:    logs.Logger,
		},
	}, nil
}
