package store

import (
	"fmt"

	"github.com/probuilddigital1-star/nourish/internal/model"
)

// IntegrityIssue describes one invariant violation found in persisted data.
type IntegrityIssue struct {
	Date   string
	Detail string
}

// CheckIntegrity verifies the denormalized totals invariant for every
// DailyLog and duplicate-date constraints across history. An empty result
// means the ledger is consistent.
func CheckIntegrity(state *model.State) []IntegrityIssue {
	issues := []IntegrityIssue{}

	seen := make(map[string]bool)
	for _, day := range state.FoodHistory {
		if seen[day.Date] {
			issues = append(issues, IntegrityIssue{Date: day.Date, Detail: "duplicate daily log for date"})
		}
		seen[day.Date] = true

		var cals, protein, carbs, fat int
		for _, e := range day.Entries {
			cals += e.Calories
			protein += e.Protein
			carbs += e.Carbs
			fat += e.Fat
		}
		if cals != day.TotalCalories {
			issues = append(issues, IntegrityIssue{Date: day.Date, Detail: fmt.Sprintf("calorie total %d != entry sum %d", day.TotalCalories, cals)})
		}
		if protein != day.TotalProtein {
			issues = append(issues, IntegrityIssue{Date: day.Date, Detail: fmt.Sprintf("protein total %d != entry sum %d", day.TotalProtein, protein)})
		}
		if carbs != day.TotalCarbs {
			issues = append(issues, IntegrityIssue{Date: day.Date, Detail: fmt.Sprintf("carb total %d != entry sum %d", day.TotalCarbs, carbs)})
		}
		if fat != day.TotalFat {
			issues = append(issues, IntegrityIssue{Date: day.Date, Detail: fmt.Sprintf("fat total %d != entry sum %d", day.TotalFat, fat)})
		}
	}

	weightSeen := make(map[string]bool)
	for _, w := range state.WeightHistory {
		if weightSeen[w.Date] {
			issues = append(issues, IntegrityIssue{Date: w.Date, Detail: "duplicate weight entry for date"})
		}
		weightSeen[w.Date] = true
	}

	if state.XP < 0 {
		issues = append(issues, IntegrityIssue{Detail: fmt.Sprintf("negative xp %d", state.XP)})
	}
	if len(state.RecentFoods) > maxRecentFoods {
		issues = append(issues, IntegrityIssue{Detail: fmt.Sprintf("recent foods over cap: %d", len(state.RecentFoods))})
	}
	return issues
}
