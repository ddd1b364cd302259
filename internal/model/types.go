package model

import "time"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the valid meal categories in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func ValidMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type FoodEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Calories    int       `json:"calories"`
	Protein     int       `json:"protein"`
	Carbs       int       `json:"carbs"`
	Fat         int       `json:"fat"`
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `json:"serving_unit"`
	MealType    MealType  `json:"meal_type"`
	Timestamp   time.Time `json:"timestamp"`
}

// DailyLog is one calendar day's record. Totals are denormalized and must
// always equal the sums over Entries.
type DailyLog struct {
	Date          string      `json:"date"`
	Entries       []FoodEntry `json:"entries"`
	TotalCalories int         `json:"total_calories"`
	TotalProtein  int         `json:"total_protein"`
	TotalCarbs    int         `json:"total_carbs"`
	TotalFat      int         `json:"total_fat"`
}

type WeightEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	WeightLbs float64   `json:"weight_lbs"`
	Timestamp time.Time `json:"timestamp"`
}

type Goals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// FoodTemplate is a reusable nutrition template backing both favorites and
// the recent-foods list; it is not tied to a calendar day.
type FoodTemplate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Calories    int     `json:"calories"`
	Protein     int     `json:"protein"`
	Carbs       int     `json:"carbs"`
	Fat         int     `json:"fat"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
}

type UserProfile struct {
	Name          string  `json:"name"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	Age           int     `json:"age"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	GoalType      string  `json:"goal_type"`
	GoalWeightLbs float64 `json:"goal_weight_lbs,omitempty"`
}

// FoodRecord is the normalized shape returned by food search, barcode
// lookup, and the assistant.
type FoodRecord struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Calories    int     `json:"calories"`
	Protein     int     `json:"protein"`
	Carbs       int     `json:"carbs"`
	Fat         int     `json:"fat"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
	Source      string  `json:"source,omitempty"`
}

// State is the single persisted application document. Everything derived
// (streaks, levels, today's totals) is recomputed on read.
type State struct {
	Onboarded     bool           `json:"onboarded"`
	Profile       *UserProfile   `json:"profile,omitempty"`
	Goals         Goals          `json:"goals"`
	Favorites     []FoodTemplate `json:"favorites"`
	RecentFoods   []FoodTemplate `json:"recent_foods"`
	FoodHistory   []DailyLog     `json:"food_history"`
	WeightHistory []WeightEntry  `json:"weight_history"`
	TodayLog      []FoodEntry    `json:"today_log"`
	XP            int            `json:"xp"`
	Achievements  []string       `json:"achievements"`
	AIUseCount    int            `json:"ai_use_count"`
	BarcodeUsed   bool           `json:"barcode_used"`
	WaterIntake   int            `json:"water_intake"`
	WaterDate     string         `json:"water_date"`
}

// DefaultGoals matches the targets a fresh profile starts with.
func DefaultGoals() Goals {
	return Goals{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65}
}

// NewState returns an empty state with default goals and seeded favorites.
func NewState() *State {
	return &State{
		Goals:         DefaultGoals(),
		Favorites:     DefaultFavorites(),
		RecentFoods:   []FoodTemplate{},
		FoodHistory:   []DailyLog{},
		WeightHistory: []WeightEntry{},
		TodayLog:      []FoodEntry{},
		Achievements:  []string{},
	}
}

// DefaultFavorites seeds a fresh install with a handful of common foods.
func DefaultFavorites() []FoodTemplate {
	return []FoodTemplate{
		{ID: "1", Name: "Greek Yogurt", Calories: 150, Protein: 15, Carbs: 8, Fat: 5, ServingSize: 1, ServingUnit: "cup"},
		{ID: "2", Name: "Grilled Chicken", Calories: 165, Protein: 31, Carbs: 0, Fat: 4, ServingSize: 4, ServingUnit: "oz"},
		{ID: "3", Name: "Brown Rice", Calories: 215, Protein: 5, Carbs: 45, Fat: 2, ServingSize: 1, ServingUnit: "cup"},
		{ID: "4", Name: "Banana", Calories: 105, Protein: 1, Carbs: 27, Fat: 0, ServingSize: 1, ServingUnit: "medium"},
		{ID: "5", Name: "Almonds", Calories: 164, Protein: 6, Carbs: 6, Fat: 14, ServingSize: 1, ServingUnit: "oz"},
		{ID: "6", Name: "Avocado", Calories: 240, Protein: 3, Carbs: 12, Fat: 22, ServingSize: 1, ServingUnit: "whole"},
	}
}
