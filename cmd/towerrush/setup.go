package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower-rush/internal/audio"
	"github.com/vovakirdan/tower-rush/internal/config"
	"github.com/vovakirdan/tower-rush/internal/game"
	"github.com/vovakirdan/tower-rush/internal/storage"
)

// loadTuning reads the tuning and applies the difficulty preset.
func loadTuning() (config.TowerRushConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TowerRushConfig{}, err
	}
	cfg, err := config.LoadTowerRush(flagConfig)
	if err != nil {
		return cfg, err
	}
	return config.ApplyPreset(cfg, preset), nil
}

// buildLogger returns a logger writing to --log-file, or to fallback
// when no file is given. The returned closer releases the file.
func buildLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() {}
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
		opts.Formatter = log.LogfmtFormatter
	}
	return log.NewWithOptions(out, opts), closer, nil
}

// seed returns --seed, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openSound opens the speaker. Without a device the game runs silent.
func openSound(logger *log.Logger) (game.Sound, func()) {
	p := audio.New()
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return game.NopSound{}, func() {}
	}
	return p, p.Close
}

// openStore opens the run history. Failure is not fatal for playing.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newSession builds a session with the shared flags applied. The stored
// high score, if any, seeds the session's best score.
func newSession(cfg config.TowerRushConfig, logger *log.Logger, snd game.Sound, store *storage.Store) *game.Session {
	return game.New(cfg,
		game.WithSeed(seed()),
		game.WithLogger(logger),
		game.WithSound(snd),
		game.WithBestScore(storedBest(store, logger)),
	)
}

// storedBest returns the high score on record, or 0 without a store.
func storedBest(store *storage.Store, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore()
	if err != nil {
		logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}
