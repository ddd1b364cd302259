package nourish

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/service"
	"github.com/probuilddigital1-star/nourish/internal/store"
)

var (
	scanLog  bool
	scanMeal string
)

var scanCmd = &cobra.Command{
	Use:   "scan <barcode>",
	Short: "Look up a food by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rec, err := service.LookupBarcode(context.Background(), providerClients(cfg), args[0])
		if err != nil {
			return err
		}
		printRecord(cmd.OutOrStdout(), 0, rec)

		return withStore(func(s *store.Store) error {
			before := len(s.Achievements())
			s.MarkBarcodeUsed()
			if scanLog {
				entry, err := logRecord(s, rec, model.MealType(scanMeal))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) to %s\n", entry.Name, entry.Calories, entry.MealType)
			}
			for _, line := range unlockMessages(s, before) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanLog, "log", false, "Log the result to today's food log")
	scanCmd.Flags().StringVar(&scanMeal, "meal", string(model.MealSnack), "Meal when logging the result")
}
