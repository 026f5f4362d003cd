package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-rush/internal/config"
)

var flagWatch bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning that play, window and serve would use, after the
config search order and the difficulty preset are applied. Save the output
to ~/.towerrush/configs/towerrush.yaml to customize it.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a tuning file",
	Long: `Parse and validate a tuning YAML file. With --watch, keep running and
re-check the file every time it is saved; running games are not affected.

Examples:
  towerrush config check ./my-tuning.yaml
  towerrush config check ./my-tuning.yaml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigCheck,
}

func init() {
	configCheckCmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-check on every change until interrupted")
	configCmd.AddCommand(configCheckCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadTuning()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigCheck(_ *cobra.Command, args []string) error {
	path := args[0]
	logger, closeLog, err := buildLogger(os.Stderr, "towerrush")
	if err != nil {
		return err
	}
	defer closeLog()

	if !flagWatch {
		cfg, err := config.CheckFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d variants, %d power-ups, %d upgrades)\n",
			path, len(cfg.Enemies.Variants), len(cfg.PowerUps.Kinds), len(cfg.Meta.Upgrades))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching tuning file", "path", path)
	return config.Watch(ctx, path, func(cfg config.TowerRushConfig, err error) {
		report(logger, path, cfg, err)
	})
}

func report(logger *log.Logger, path string, cfg config.TowerRushConfig, err error) {
	if err != nil {
		logger.Error("tuning rejected", "path", path, "error", err)
		return
	}
	logger.Info("tuning ok", "path", path,
		"variants", len(cfg.Enemies.Variants),
		"power_ups", len(cfg.PowerUps.Kinds),
		"upgrades", len(cfg.Meta.Upgrades))
}
