package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/store"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a glass of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			before := len(s.Achievements())
			intake := s.AddWater()
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d glasses\n", intake, store.WaterDailyGoal)
			if intake == store.WaterDailyGoal {
				fmt.Fprintln(cmd.OutOrStdout(), "Daily water goal complete!")
			}
			for _, line := range unlockMessages(s, before) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		})
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a glass of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			intake := s.RemoveWater()
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d glasses\n", intake, store.WaterDailyGoal)
			return nil
		})
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d glasses\n", s.Water(), store.WaterDailyGoal)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterRemoveCmd)
	waterCmd.AddCommand(waterShowCmd)
}
