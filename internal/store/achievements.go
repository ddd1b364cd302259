package store

import "github.com/probuilddigital1-star/nourish/internal/model"

// XP rewards for individual actions.
const (
	XPFoodLogged    = 10
	XPFirstLogOfDay = 15
	XPWaterComplete = 20
)

// WaterDailyGoal is the number of glasses that completes a day.
const WaterDailyGoal = 8

type LevelTier struct {
	Name string `json:"name"`
	XP   int    `json:"xp"`
}

// LevelThresholds maps cumulative XP to named tiers, ascending.
var LevelThresholds = []LevelTier{
	{Name: "Seed", XP: 0},
	{Name: "Seedling", XP: 100},
	{Name: "Sprout", XP: 300},
	{Name: "Sapling", XP: 600},
	{Name: "Bloom", XP: 1000},
	{Name: "Flourish", XP: 2000},
	{Name: "Ancient Oak", XP: 5000},
}

type Achievement struct {
	ID          string
	Name        string
	Description string
	Category    string

	// Check reports whether the achievement's predicate currently holds.
	// Only consulted while the achievement is locked; unlocks are permanent.
	Check func(s *Store) bool
}

// Achievements is the fixed catalogue. Predicates read derived state only.
var Achievements = []Achievement{
	{ID: "first_log", Name: "First Bite", Description: "Log your first food", Category: "consistency",
		Check: func(s *Store) bool {
			return len(s.state.TodayLog) > 0 || len(s.state.FoodHistory) > 0
		}},
	{ID: "streak_3", Name: "Getting Started", Description: "3-day logging streak", Category: "consistency",
		Check: func(s *Store) bool { return s.CurrentStreak() >= 3 }},
	{ID: "streak_7", Name: "Week Warrior", Description: "7-day logging streak", Category: "consistency",
		Check: func(s *Store) bool { return s.CurrentStreak() >= 7 }},
	{ID: "streak_14", Name: "Fortnight Strong", Description: "14-day logging streak", Category: "consistency",
		Check: func(s *Store) bool { return s.CurrentStreak() >= 14 }},
	{ID: "streak_30", Name: "Monthly Master", Description: "30-day logging streak", Category: "consistency",
		Check: func(s *Store) bool { return s.CurrentStreak() >= 30 }},

	{ID: "goal_hit", Name: "On Target", Description: "Hit your daily calorie goal", Category: "nutrition",
		Check: func(s *Store) bool {
			cals := float64(s.TodayCalories())
			goal := float64(s.state.Goals.Calories)
			return goal > 0 && cals >= goal*0.95 && cals <= goal*1.05
		}},
	{ID: "all_meals", Name: "Full Day", Description: "Log all 4 meal types in a day", Category: "nutrition",
		Check: func(s *Store) bool {
			for _, m := range model.MealTypes {
				if len(s.MealEntries(m)) == 0 {
					return false
				}
			}
			return true
		}},
	{ID: "macro_master", Name: "Macro Master", Description: "Hit all macro goals in a day", Category: "nutrition",
		Check: func(s *Store) bool {
			m := s.TodayMacros()
			g := s.state.Goals
			return float64(m.Protein) >= float64(g.Protein)*0.9 &&
				float64(m.Carbs) >= float64(g.Carbs)*0.9 &&
				float64(m.Fat) >= float64(g.Fat)*0.9
		}},
	{ID: "protein_week", Name: "Protein Pro", Description: "Hit protein goal 7 days in a row", Category: "nutrition",
		Check: func(s *Store) bool { return s.proteinGoalStreakDays(7) }},
	{ID: "hydrated", Name: "Hydrated", Description: "Drink 8 glasses of water", Category: "nutrition",
		Check: func(s *Store) bool {
			return s.state.WaterDate == s.today() && s.state.WaterIntake >= WaterDailyGoal
		}},

	{ID: "ai_explorer", Name: "AI Explorer", Description: "Use AI assistant 5 times", Category: "exploration",
		Check: func(s *Store) bool { return s.state.AIUseCount >= 5 }},
	{ID: "scanner", Name: "Scanner Pro", Description: "Scan your first barcode", Category: "exploration",
		Check: func(s *Store) bool { return s.state.BarcodeUsed }},
	{ID: "variety_10", Name: "Adventurous Eater", Description: "Log 10 unique foods", Category: "exploration",
		Check: func(s *Store) bool { return s.UniqueFoodCount() >= 10 }},
	{ID: "variety_25", Name: "Food Explorer", Description: "Log 25 unique foods", Category: "exploration",
		Check: func(s *Store) bool { return s.UniqueFoodCount() >= 25 }},

	{ID: "foods_50", Name: "Half Century", Description: "Log 50 total food entries", Category: "milestone",
		Check: func(s *Store) bool { return s.TotalFoodsLogged() >= 50 }},
	{ID: "foods_100", Name: "Centurion", Description: "Log 100 total food entries", Category: "milestone",
		Check: func(s *Store) bool { return s.TotalFoodsLogged() >= 100 }},
	{ID: "level_bloom", Name: "In Full Bloom", Description: "Reach Bloom level", Category: "milestone",
		Check: func(s *Store) bool { return s.state.XP >= 1000 }},
}

// AchievementByID looks up catalogue metadata.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
