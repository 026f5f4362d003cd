package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tower-rush/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Tower Rush in the terminal.

Controls:
  WASD          - Move
  Mouse/Arrows  - Aim and fire
  Enter         - Start / retry
  Esc/P         - Pause and resume
  R             - Restart the run
  U             - Upgrade workshop (menu and game over)
  1-9           - Buy an upgrade in the workshop
  M             - Back to the menu after a run
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Examples:
  towerrush play
  towerrush play --difficulty easy
  towerrush play --config ./my-tuning.yaml --db ~/.towerrush/runs.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alt screen owns the terminal, so logs go nowhere without --log-file.
	logger, closeLog, err := buildLogger(io.Discard, "towerrush")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadTuning()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	snd, closeSound := openSound(logger)
	if flagMute {
		closeSound()
		snd, closeSound = nil, func() {}
	}
	defer closeSound()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	session := newSession(cfg, logger, snd, store)
	if err := tui.Run(session, store, tui.Options{
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
		Logger:   logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
