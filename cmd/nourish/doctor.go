package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the persisted data for invariant violations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			issues := store.CheckIntegrity(s.State())
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No issues found.")
				return nil
			}
			for _, issue := range issues {
				if issue.Date != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", issue.Date, issue.Detail)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), issue.Detail)
				}
			}
			return fmt.Errorf("found %d integrity issue(s)", len(issues))
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
