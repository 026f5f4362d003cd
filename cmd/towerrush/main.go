// towerrush is a top-down arena shooter: climb floors of enemies, beat
// a boss every fifth floor, and spend coins on permanent upgrades.
//
// Usage:
//
//	towerrush play       - Play in the terminal
//	towerrush window     - Play in a desktop window
//	towerrush serve      - Start SSH server for remote play
//	towerrush scores     - Browse the run history
//	towerrush upgrades   - Print the upgrade catalogue and costs
//	towerrush config     - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: arena fps from the tuning)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Run history database (default: in memory)
//	--config <path>       - Custom tuning YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "towerrush",
	Short: "Tower Rush - a floor-by-floor arena shooter",
	Long: `Tower Rush is a top-down arena shooter. Clear each floor of enemies,
survive the boss every fifth floor, grab power-ups, and spend the coins
you earn on permanent upgrades in the workshop.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - Browse the run history
  upgrades  - Show the upgrade catalogue
  config    - Print the effective tuning

Examples:
  towerrush play
  towerrush play --difficulty hard --db ~/.towerrush/runs.db
  towerrush window --seed 42
  towerrush serve --ssh :2222
  towerrush scores --db ~/.towerrush/runs.db`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = arena fps from the tuning)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", ":memory:", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(upgradesCmd)
	rootCmd.AddCommand(configCmd)
}
