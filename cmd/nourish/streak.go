package nourish

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/store"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show logging streaks and the trailing week",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current streak: %d day(s)\n", s.CurrentStreak())
			fmt.Fprintf(out, "Longest streak: %d day(s)\n", s.LongestStreak())
			fmt.Fprintf(out, "Days logged:    %d\n", s.TotalDaysLogged())

			marks := make([]string, 0, 7)
			for _, logged := range s.WeekLogStatus() {
				if logged {
					marks = append(marks, "x")
				} else {
					marks = append(marks, ".")
				}
			}
			fmt.Fprintf(out, "Last 7 days:    %s (today rightmost)\n", strings.Join(marks, " "))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
