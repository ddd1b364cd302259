package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/store"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show XP and level progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			status := s.Level()
			fmt.Fprintf(out, "Level: %s (%d XP)\n", status.Current.Name, s.XP())
			if status.Next.Name == status.Current.Name {
				fmt.Fprintln(out, "Top level reached.")
				return nil
			}
			fmt.Fprintf(out, "Next: %s at %d XP (%d / %d, %.0f%%)\n",
				status.Next.Name, status.Next.XP, status.XPInLevel, status.XPForNext, status.Progress*100)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(levelCmd)
}
