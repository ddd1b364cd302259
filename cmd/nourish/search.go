package nourish

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/service"
	"github.com/probuilddigital1-star/nourish/internal/store"
)

var (
	searchLimit   int
	searchLogPick int
	searchLogMeal string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods via USDA and Open Food Facts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		query := strings.Join(args, " ")
		records, err := service.SearchFoods(context.Background(), providerClients(cfg), query, searchLimit)
		if err != nil {
			return err
		}
		for i, rec := range records {
			printRecord(cmd.OutOrStdout(), i, rec)
		}

		if searchLogPick <= 0 {
			return nil
		}
		if searchLogPick > len(records) {
			return fmt.Errorf("--log %d out of range (got %d results)", searchLogPick, len(records))
		}
		return withStore(func(s *store.Store) error {
			entry, err := logRecord(s, records[searchLogPick-1], model.MealType(searchLogMeal))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) to %s\n", entry.Name, entry.Calories, entry.MealType)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Max results")
	searchCmd.Flags().IntVar(&searchLogPick, "log", 0, "Log result N to today's food log")
	searchCmd.Flags().StringVar(&searchLogMeal, "meal", string(model.MealSnack), "Meal when logging a result")
}
