package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage today's food log",
}

var (
	logName        string
	logCalories    int
	logProtein     int
	logCarbs       int
	logFat         int
	logServingSize float64
	logServingUnit string
	logMeal        string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			before := len(s.Achievements())
			entry, err := s.AddFood(store.AddFoodInput{
				Name:        logName,
				Calories:    logCalories,
				Protein:     logProtein,
				Carbs:       logCarbs,
				Fat:         logFat,
				ServingSize: logServingSize,
				ServingUnit: logServingUnit,
				MealType:    model.MealType(logMeal),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) to %s\n", entry.Name, entry.Calories, entry.MealType)
			for _, line := range unlockMessages(s, before) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove an entry from today's log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			s.RemoveFood(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		})
	},
}

var logListMeal string

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			entries := s.TodayLog()
			if logListMeal != "" {
				meal := model.MealType(logListMeal)
				if !model.ValidMealType(meal) {
					return fmt.Errorf("invalid meal type %q", logListMeal)
				}
				entries = s.MealEntries(meal)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries logged today.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d kcal\tP %dg C %dg F %dg\n",
					e.ID, e.MealType, e.Name, e.Calories, e.Protein, e.Carbs, e.Fat)
			}
			return nil
		})
	},
}

// unlockMessages formats achievements unlocked since the caller's snapshot
// of the unlocked-count.
func unlockMessages(s *store.Store, before int) []string {
	ids := s.Achievements()
	lines := []string{}
	for _, id := range ids[min(before, len(ids)):] {
		if a, ok := store.AchievementByID(id); ok {
			lines = append(lines, fmt.Sprintf("Achievement unlocked: %s (%s)", a.Name, a.Description))
		}
	}
	return lines
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logRemoveCmd)
	logCmd.AddCommand(logListCmd)

	logAddCmd.Flags().StringVar(&logName, "name", "", "Food name (required)")
	logAddCmd.Flags().IntVar(&logCalories, "calories", 0, "Calories")
	logAddCmd.Flags().IntVar(&logProtein, "protein", 0, "Protein grams")
	logAddCmd.Flags().IntVar(&logCarbs, "carbs", 0, "Carb grams")
	logAddCmd.Flags().IntVar(&logFat, "fat", 0, "Fat grams")
	logAddCmd.Flags().Float64Var(&logServingSize, "serving", 1, "Serving size")
	logAddCmd.Flags().StringVar(&logServingUnit, "unit", "serving", "Serving unit")
	logAddCmd.Flags().StringVar(&logMeal, "meal", string(model.MealSnack), "Meal: breakfast, lunch, dinner, or snack")
	_ = logAddCmd.MarkFlagRequired("name")

	logListCmd.Flags().StringVar(&logListMeal, "meal", "", "Filter by meal type")
}
