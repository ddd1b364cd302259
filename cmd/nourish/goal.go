package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage daily calorie and macro targets",
}

var (
	goalCalories int
	goalProtein  int
	goalCarbs    int
	goalFat      int
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			goals := s.Goals()
			if cmd.Flags().Changed("calories") {
				goals.Calories = goalCalories
			}
			if cmd.Flags().Changed("protein") {
				goals.Protein = goalProtein
			}
			if cmd.Flags().Changed("carbs") {
				goals.Carbs = goalCarbs
			}
			if cmd.Flags().Changed("fat") {
				goals.Fat = goalFat
			}
			if err := s.SetGoals(goals); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goals updated")
			return printGoals(cmd, goals)
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			return printGoals(cmd, s.Goals())
		})
	},
}

func printGoals(cmd *cobra.Command, g model.Goals) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal | Protein: %dg | Carbs: %dg | Fat: %dg\n",
		g.Calories, g.Protein, g.Carbs, g.Fat)
	return nil
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalShowCmd)

	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Calorie target")
	goalSetCmd.Flags().IntVar(&goalProtein, "protein", 0, "Protein target grams")
	goalSetCmd.Flags().IntVar(&goalCarbs, "carbs", 0, "Carb target grams")
	goalSetCmd.Flags().IntVar(&goalFat, "fat", 0, "Fat target grams")
}
