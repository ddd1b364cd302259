package nourish

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/store"
)

var (
	onboardName     string
	onboardHeight   float64
	onboardWeight   float64
	onboardAge      int
	onboardSex      string
	onboardActivity string
	onboardGoalType string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch onboardGoalType {
		case "lose", "maintain", "gain":
		default:
			return fmt.Errorf("invalid goal type %q (expected lose, maintain, or gain)", onboardGoalType)
		}
		return withStore(func(s *store.Store) error {
			s.SetProfile(model.UserProfile{
				Name:          onboardName,
				HeightCm:      onboardHeight,
				WeightKg:      onboardWeight,
				Age:           onboardAge,
				Sex:           onboardSex,
				ActivityLevel: onboardActivity,
				GoalType:      onboardGoalType,
			})
			s.CompleteOnboarding()
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Profile saved.\n", onboardName)
			return printGoals(cmd, s.Goals())
		})
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Your name (required)")
	onboardCmd.Flags().Float64Var(&onboardHeight, "height", 0, "Height in cm")
	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "Weight in kg")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "Age in years")
	onboardCmd.Flags().StringVar(&onboardSex, "sex", "", "Sex: male or female")
	onboardCmd.Flags().StringVar(&onboardActivity, "activity", "moderate", "Activity level")
	onboardCmd.Flags().StringVar(&onboardGoalType, "goal", "maintain", "Goal: lose, maintain, or gain")
	_ = onboardCmd.MarkFlagRequired("name")
}
