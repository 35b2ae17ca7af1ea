package main

import (
	"fmt"
	"time"

	"github.com/agrisync/agrisync/internal/config"
	"github.com/agrisync/agrisync/internal/pricing"
	"github.com/agrisync/agrisync/internal/services"
	"github.com/spf13/cobra"
)

var (
	scoreDate      string
	scoreBasePrice float64
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Preview the urgency score and suggested price for a harvest date",
	Example: `  agrisync score --date 2024-06-01
  agrisync score --date 2024-06-01 --base-price 35`,
	RunE: func(cmd *cobra.Command, args []string) error {
		expected, err := time.Parse("2006-01-02", scoreDate)
		if err != nil {
			return fmt.Errorf("invalid --date, use YYYY-MM-DD: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		rules := cfg.PricingRules()
		if cmd.Flags().Changed("base-price") {
			rules.BasePrice = scoreBasePrice
		}

		today := services.SystemClock{Location: cfg.Location}.Today()
		fmt.Fprint(cmd.OutOrStdout(), formatScore(rules, today, expected))
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreDate, "date", "", "Expected harvest date (YYYY-MM-DD, required)")
	scoreCmd.Flags().Float64Var(&scoreBasePrice, "base-price", pricing.DefaultBasePrice, "Override the configured base price")
	scoreCmd.MarkFlagRequired("date")
}

func formatScore(rules pricing.Rules, today, expected time.Time) string {
	days := pricing.DaysRemaining(today, expected)
	score := pricing.UrgencyScore(days)

	return fmt.Sprintf(
		"days remaining:     %d\nurgency score:      %d\nurgency multiplier: %.1f\nsuggested price:    %.2f\n",
		days, score, pricing.UrgencyMultiplier(days), rules.SuggestedPrice(score, days),
	)
}
