package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/store"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently logged foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			recents := s.RecentFoods()
			if len(recents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recent foods yet.")
				return nil
			}
			for _, f := range recents {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d kcal\tP %dg C %dg F %dg\t%.4g %s\n",
					f.Name, f.Calories, f.Protein, f.Carbs, f.Fat, f.ServingSize, f.ServingUnit)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
}
