package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-rush/internal/platform/desktop"
)

var (
	flagWindowW int
	flagWindowH int
	flagShowFPS bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Tower Rush in a native window. The arena is scaled to fit the
window; move with WASD or the arrow keys, aim with the mouse and hold the
left button to fire.

Examples:
  towerrush window
  towerrush window --width 1600 --height 900 --show-fps`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowW, "width", 0, "Window width (0 = 80% of the arena)")
	windowCmd.Flags().IntVar(&flagWindowH, "height", 0, "Window height (0 = 80% of the arena)")
	windowCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show frame and tick rate")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := buildLogger(os.Stderr, "towerrush")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadTuning()
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Arena.FPS = flagFPS
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
	return desktop.Run(session, store, desktop.Options{
		WindowW: flagWindowW,
		WindowH: flagWindowH,
		ShowFPS: flagShowFPS,
		Logger:  logger,
	})
}
