package nourish

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/store"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var weightAddCmd = &cobra.Command{
	Use:   "add <lbs>",
	Short: "Record today's weight (replaces an earlier entry for today)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lbs, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		return withStore(func(s *store.Store) error {
			entry, err := s.AddWeight(lbs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f lbs for %s\n", entry.WeightLbs, entry.Date)
			return nil
		})
	},
}

var weightDays int

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			entries := s.WeightHistory(weightDays)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weight entries in window.")
				return nil
			}
			for _, w := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f lbs\n", w.Date, w.WeightLbs)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightListCmd)
	weightListCmd.Flags().IntVar(&weightDays, "days", 30, "Trailing window in days")
}
