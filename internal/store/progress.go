package store

import (
	"sort"
	"strings"
	"time"
)

// streakLookbackDays caps how far back the current-streak walk goes.
const streakLookbackDays = 365

func (s *Store) XP() int {
	return s.state.XP
}

// AddXP adds to cumulative XP and re-evaluates achievement predicates.
// Non-positive amounts are ignored; XP never decreases.
func (s *Store) AddXP(amount int) {
	if amount <= 0 {
		return
	}
	s.grantXP(amount)
	s.checkAchievementsLocked()
	s.persist()
}

func (s *Store) grantXP(amount int) {
	if amount <= 0 {
		return
	}
	s.state.XP += amount
}

type LevelStatus struct {
	Current   LevelTier `json:"current"`
	Next      LevelTier `json:"next"`
	XPInLevel int       `json:"xp_in_level"`
	XPForNext int       `json:"xp_for_next"`
	Progress  float64   `json:"progress"`
}

// Level maps cumulative XP onto the threshold table. Progress is 1.0 once
// the top tier is reached.
func (s *Store) Level() LevelStatus {
	current := LevelThresholds[0]
	next := LevelThresholds[1]
	for i := len(LevelThresholds) - 1; i >= 0; i-- {
		if s.state.XP >= LevelThresholds[i].XP {
			current = LevelThresholds[i]
			if i+1 < len(LevelThresholds) {
				next = LevelThresholds[i+1]
			} else {
				next = LevelThresholds[i]
			}
			break
		}
	}

	status := LevelStatus{
		Current:   current,
		Next:      next,
		XPInLevel: s.state.XP - current.XP,
		XPForNext: next.XP - current.XP,
	}
	if status.XPForNext > 0 {
		status.Progress = float64(status.XPInLevel) / float64(status.XPForNext)
		if status.Progress > 1 {
			status.Progress = 1
		}
	} else {
		status.Progress = 1
	}
	return status
}

func (s *Store) Achievements() []string {
	return append([]string(nil), s.state.Achievements...)
}

func (s *Store) achievementUnlocked(id string) bool {
	for _, a := range s.state.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// CheckAchievements evaluates every locked achievement predicate, unlocks
// the newly satisfied ones permanently, and returns the first newly
// unlocked id ("" if none). Calling it twice without a state change unlocks
// nothing the second time.
func (s *Store) CheckAchievements() string {
	unlocked := s.checkAchievementsLocked()
	if unlocked != "" {
		s.persist()
	}
	return unlocked
}

func (s *Store) checkAchievementsLocked() string {
	first := ""
	for _, a := range Achievements {
		if a.Check == nil || s.achievementUnlocked(a.ID) {
			continue
		}
		if a.Check(s) {
			s.state.Achievements = append(s.state.Achievements, a.ID)
			if first == "" {
				first = a.ID
			}
		}
	}
	return first
}

// hasLogOn reports whether the history ledger records at least one entry
// for the given date.
func (s *Store) hasLogOn(date string) bool {
	for _, h := range s.state.FoodHistory {
		if h.Date == date && len(h.Entries) > 0 {
			return true
		}
	}
	return false
}

// CurrentStreak counts consecutive logged days walking back from today.
// An empty today does not break a streak continuing from yesterday.
func (s *Store) CurrentStreak() int {
	if len(s.state.FoodHistory) == 0 {
		return 0
	}
	streak := 0
	now := s.now()
	for i := 0; i < streakLookbackDays; i++ {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		if s.hasLogOn(date) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// LongestStreak finds the longest run of exactly-consecutive logged dates.
func (s *Store) LongestStreak() int {
	dates := make([]string, 0, len(s.state.FoodHistory))
	for _, h := range s.state.FoodHistory {
		if len(h.Entries) > 0 {
			dates = append(dates, h.Date)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Strings(dates)

	longest, current := 1, 1
	for i := 1; i < len(dates); i++ {
		prev, err1 := time.Parse(dateLayout, dates[i-1])
		curr, err2 := time.Parse(dateLayout, dates[i])
		if err1 != nil || err2 != nil {
			current = 1
			continue
		}
		if curr.Sub(prev) == 24*time.Hour {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

func (s *Store) TotalDaysLogged() int {
	count := 0
	for _, h := range s.state.FoodHistory {
		if len(h.Entries) > 0 {
			count++
		}
	}
	return count
}

// WeekLogStatus reports the trailing 7 calendar days, oldest first, today
// last; true means at least one entry was logged that day.
func (s *Store) WeekLogStatus() []bool {
	status := make([]bool, 0, 7)
	now := s.now()
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		status = append(status, s.hasLogOn(date))
	}
	return status
}

// UniqueFoodCount counts distinct food names (case-insensitive) across
// history and today's log.
func (s *Store) UniqueFoodCount() int {
	names := make(map[string]struct{})
	for _, day := range s.state.FoodHistory {
		for _, e := range day.Entries {
			names[strings.ToLower(e.Name)] = struct{}{}
		}
	}
	for _, e := range s.state.TodayLog {
		names[strings.ToLower(e.Name)] = struct{}{}
	}
	return len(names)
}

// TotalFoodsLogged counts every entry in the history ledger. Today's
// entries are counted through their history record; only when the day has
// no record yet does the transient log contribute.
func (s *Store) TotalFoodsLogged() int {
	total := 0
	hasToday := false
	today := s.today()
	for _, day := range s.state.FoodHistory {
		total += len(day.Entries)
		if day.Date == today {
			hasToday = true
		}
	}
	if !hasToday {
		total += len(s.state.TodayLog)
	}
	return total
}

func (s *Store) IncrementAIUse() {
	s.state.AIUseCount++
	s.checkAchievementsLocked()
	s.persist()
}

func (s *Store) AIUseCount() int {
	return s.state.AIUseCount
}

func (s *Store) MarkBarcodeUsed() {
	if s.state.BarcodeUsed {
		return
	}
	s.state.BarcodeUsed = true
	s.checkAchievementsLocked()
	s.persist()
}

func (s *Store) BarcodeUsed() bool {
	return s.state.BarcodeUsed
}

// Water reports today's intake; a stale stored date reads as zero.
func (s *Store) Water() int {
	if s.state.WaterDate != s.today() {
		return 0
	}
	return s.state.WaterIntake
}

// AddWater increments today's intake, capped at WaterDailyGoal. Crossing
// the cap awards the completion bonus exactly once per day; further adds
// are no-ops. A stale water date resets the counter to 1.
func (s *Store) AddWater() int {
	today := s.today()
	prev := s.state.WaterIntake
	if s.state.WaterDate != today {
		prev = 0
		s.state.WaterDate = today
	}
	intake := prev + 1
	if intake > WaterDailyGoal {
		intake = WaterDailyGoal
	}
	s.state.WaterIntake = intake

	if prev < WaterDailyGoal && intake == WaterDailyGoal {
		s.grantXP(XPWaterComplete)
	}
	s.checkAchievementsLocked()
	s.persist()
	return intake
}

// RemoveWater decrements today's intake, floored at zero. A stale water
// date resets the counter to zero for today.
func (s *Store) RemoveWater() int {
	today := s.today()
	if s.state.WaterDate != today {
		s.state.WaterIntake = 0
		s.state.WaterDate = today
	} else if s.state.WaterIntake > 0 {
		s.state.WaterIntake--
	}
	s.persist()
	return s.state.WaterIntake
}

// proteinGoalStreakDays reports whether the protein goal was met on each of
// the trailing n days (today included).
func (s *Store) proteinGoalStreakDays(n int) bool {
	goal := s.state.Goals.Protein
	if goal <= 0 {
		return false
	}
	now := s.now()
	for i := 0; i < n; i++ {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		met := false
		for _, h := range s.state.FoodHistory {
			if h.Date == date && h.TotalProtein >= goal {
				met = true
				break
			}
		}
		if !met {
			return false
		}
	}
	return true
}
