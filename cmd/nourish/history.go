package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/store"
)

var (
	historyDays int
	historyKind string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show calorie, food, or weight history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			switch historyKind {
			case "calories":
				for _, p := range s.CalorieHistory(historyDays) {
					fmt.Fprintf(out, "%s\t%d kcal\t(goal %d)\n", p.Date, p.Calories, p.Goal)
				}
			case "food":
				for _, day := range s.FoodHistory(historyDays) {
					fmt.Fprintf(out, "%s\t%d entries\t%d kcal\tP %dg C %dg F %dg\n",
						day.Date, len(day.Entries), day.TotalCalories, day.TotalProtein, day.TotalCarbs, day.TotalFat)
				}
			case "weight":
				for _, w := range s.WeightHistory(historyDays) {
					fmt.Fprintf(out, "%s\t%.1f lbs\n", w.Date, w.WeightLbs)
				}
			default:
				return fmt.Errorf("unknown history kind %q (expected calories, food, or weight)", historyKind)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyDays, "days", 7, "Trailing window in days")
	historyCmd.Flags().StringVar(&historyKind, "kind", "calories", "History kind: calories, food, or weight")
}
