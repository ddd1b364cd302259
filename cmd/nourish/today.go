package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, goal progress, water, and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			goals := s.Goals()
			calories := s.TodayCalories()
			macros := s.TodayMacros()

			fmt.Fprintf(out, "Calories: %d / %d kcal (%d remaining)\n", calories, goals.Calories, goals.Calories-calories)
			fmt.Fprintf(out, "Macros: P %d/%dg | C %d/%dg | F %d/%dg\n",
				macros.Protein, goals.Protein, macros.Carbs, goals.Carbs, macros.Fat, goals.Fat)

			for _, meal := range model.MealTypes {
				entries := s.MealEntries(meal)
				if len(entries) == 0 {
					continue
				}
				fmt.Fprintf(out, "\n%s:\n", meal)
				for _, e := range entries {
					fmt.Fprintf(out, "  %s\t%d kcal\tP %dg C %dg F %dg\n", e.Name, e.Calories, e.Protein, e.Carbs, e.Fat)
				}
			}

			fmt.Fprintf(out, "\nWater: %d / %d glasses\n", s.Water(), store.WaterDailyGoal)
			fmt.Fprintf(out, "Streak: %d day(s)\n", s.CurrentStreak())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
