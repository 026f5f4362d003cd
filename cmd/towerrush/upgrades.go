package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-rush/internal/meta"
)

var upgradesCmd = &cobra.Command{
	Use:   "upgrades",
	Short: "Print the upgrade catalogue",
	Long: `List every workshop upgrade with its maximum level and the cost of
each level, plus the effects of fully maxed upgrades.

Examples:
  towerrush upgrades
  towerrush upgrades --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	RunE: runUpgrades,
}

func runUpgrades(_ *cobra.Command, _ []string) error {
	cfg, err := loadTuning()
	if err != nil {
		return err
	}

	// Buy every level in order on a scratch ledger to list the costs.
	ledger := meta.NewLedger(cfg)
	for i, up := range ledger.Upgrades() {
		var costs []string
		total := 0
		for ledger.Level(up.Key) < up.MaxLevel {
			cost, err := ledger.Purchase(up.Key, math.MaxInt)
			if err != nil {
				return err
			}
			costs = append(costs, strconv.Itoa(cost))
			total += cost
		}
		fmt.Printf("%d. %s (%s, max level %d)\n", i+1, up.Label, up.Key, up.MaxLevel)
		fmt.Printf("   %s\n", up.Description)
		fmt.Printf("   costs: %s  (total %d)\n", strings.Join(costs, ", "), total)
	}

	fx := ledger.Effects()
	fmt.Println()
	fmt.Println("At max level:")
	fmt.Printf("  speed x%.2f  fire cooldown x%.3f  lives %d  money x%.2f  damage +%d\n",
		fx.SpeedMultiplier, fx.FireRateMultiplier, fx.StartingLives, fx.MoneyMultiplier, fx.DamageBonus)
	fmt.Printf("  auto-fire every %.2fs, %d shots\n", fx.AutoFireCooldown, fx.AutoFireShots)
	return nil
}
