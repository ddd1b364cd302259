package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/store"
)

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			// Re-evaluate so unlocks earned by offline edits still land.
			s.CheckAchievements()

			unlocked := make(map[string]bool)
			for _, id := range s.Achievements() {
				unlocked[id] = true
			}
			count := 0
			for _, a := range store.Achievements {
				if unlocked[a.ID] {
					count++
					fmt.Fprintf(out, "[x] %s: %s\n", a.Name, a.Description)
				} else if achievementsAll {
					fmt.Fprintf(out, "[ ] %s: %s\n", a.Name, a.Description)
				}
			}
			fmt.Fprintf(out, "%d / %d unlocked\n", count, len(store.Achievements))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "Include locked achievements")
}
