package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/store"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage reusable food templates",
}

var (
	favName        string
	favCalories    int
	favProtein     int
	favCarbs       int
	favFat         int
	favServingSize float64
	favServingUnit string
)

var favoriteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a food template",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			t, err := s.AddFavorite(model.FoodTemplate{
				Name:        favName,
				Calories:    favCalories,
				Protein:     favProtein,
				Carbs:       favCarbs,
				Fat:         favFat,
				ServingSize: favServingSize,
				ServingUnit: favServingUnit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved favorite %s (%s)\n", t.Name, t.ID)
			return nil
		})
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove <favorite-id>",
	Short: "Delete a food template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			s.RemoveFavorite(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		})
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			for _, f := range s.Favorites() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d kcal\tP %dg C %dg F %dg\t%.4g %s\n",
					f.ID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fat, f.ServingSize, f.ServingUnit)
			}
			return nil
		})
	},
}

var favoriteLogMeal string

var favoriteLogCmd = &cobra.Command{
	Use:   "log <favorite-id>",
	Short: "Log a favorite to today's food log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			for _, f := range s.Favorites() {
				if f.ID != args[0] {
					continue
				}
				entry, err := s.AddFood(store.AddFoodInput{
					Name:        f.Name,
					Calories:    f.Calories,
					Protein:     f.Protein,
					Carbs:       f.Carbs,
					Fat:         f.Fat,
					ServingSize: f.ServingSize,
					ServingUnit: f.ServingUnit,
					MealType:    model.MealType(favoriteLogMeal),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) to %s\n", entry.Name, entry.Calories, entry.MealType)
				return nil
			}
			return fmt.Errorf("favorite %q not found", args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteRemoveCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
	favoriteCmd.AddCommand(favoriteLogCmd)

	favoriteAddCmd.Flags().StringVar(&favName, "name", "", "Food name (required)")
	favoriteAddCmd.Flags().IntVar(&favCalories, "calories", 0, "Calories")
	favoriteAddCmd.Flags().IntVar(&favProtein, "protein", 0, "Protein grams")
	favoriteAddCmd.Flags().IntVar(&favCarbs, "carbs", 0, "Carb grams")
	favoriteAddCmd.Flags().IntVar(&favFat, "fat", 0, "Fat grams")
	favoriteAddCmd.Flags().Float64Var(&favServingSize, "serving", 1, "Serving size")
	favoriteAddCmd.Flags().StringVar(&favServingUnit, "unit", "serving", "Serving unit")
	_ = favoriteAddCmd.MarkFlagRequired("name")

	favoriteLogCmd.Flags().StringVar(&favoriteLogMeal, "meal", string(model.MealSnack), "Meal: breakfast, lunch, dinner, or snack")
}
