// Package store owns the application state: today's food log, the per-day
// history ledger, weight entries, reusable food templates, and the
// gamification state derived from them. All mutations are synchronous and
// write-through to a storage.Repository; the Store is not safe for
// concurrent use.
package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/storage"
)

const (
	dateLayout     = "2006-01-02"
	maxRecentFoods = 20
)

type Store struct {
	repo  storage.Repository
	log   *zap.Logger
	now   func() time.Time
	state *model.State
}

type Option func(*Store)

// WithClock overrides the time source. Tests use it to pin the calendar day.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New loads the persisted state and returns a ready store.
func New(repo storage.Repository, opts ...Option) (*Store, error) {
	s := &Store{
		repo: repo,
		log:  zap.NewNop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	state, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	s.state = state
	return s, nil
}

// today resolves the current local calendar day. It is the single place the
// day boundary is decided; every operation resolves it once and passes the
// value down so one mutation never straddles midnight.
func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

// persist write-through saves the state. Failures are logged and swallowed:
// the in-memory state stays authoritative and the next mutation retries.
func (s *Store) persist() {
	if err := s.repo.Save(s.state); err != nil {
		s.log.Warn("persist state", zap.Error(err))
	}
}

type AddFoodInput struct {
	Name        string
	Calories    int
	Protein     int
	Carbs       int
	Fat         int
	ServingSize float64
	ServingUnit string
	MealType    model.MealType
}

// AddFood assigns an id and timestamp, appends to today's log, upserts
// today's history record, records the food in the recent list, and awards
// logging XP.
func (s *Store) AddFood(in AddFoodInput) (model.FoodEntry, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.FoodEntry{}, fmt.Errorf("food name is required")
	}
	if !model.ValidMealType(in.MealType) {
		return model.FoodEntry{}, fmt.Errorf("invalid meal type %q", in.MealType)
	}
	if err := validateNonNegative("calories", in.Calories); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegative("protein", in.Protein); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegative("carbs", in.Carbs); err != nil {
		return model.FoodEntry{}, err
	}
	if err := validateNonNegative("fat", in.Fat); err != nil {
		return model.FoodEntry{}, err
	}

	entry := model.FoodEntry{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		ServingSize: in.ServingSize,
		ServingUnit: in.ServingUnit,
		MealType:    in.MealType,
		Timestamp:   s.now(),
	}

	today := s.today()
	s.state.TodayLog = append(s.state.TodayLog, entry)
	s.upsertDailyLog(today)
	s.addToRecent(entry)

	s.grantXP(XPFoodLogged)
	if len(s.state.TodayLog) == 1 {
		s.grantXP(XPFirstLogOfDay)
	}
	s.checkAchievementsLocked()

	s.persist()
	return entry, nil
}

// RemoveFood deletes the entry from today's log and recomputes today's
// history totals. Unknown ids are a no-op.
func (s *Store) RemoveFood(id string) {
	removed := false
	kept := s.state.TodayLog[:0]
	for _, e := range s.state.TodayLog {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return
	}
	s.state.TodayLog = kept
	s.upsertDailyLog(s.today())
	s.persist()
}

// ClearTodayLog discards today's transient log without touching history.
func (s *Store) ClearTodayLog() {
	s.state.TodayLog = []model.FoodEntry{}
	s.persist()
}

// upsertDailyLog rebuilds the history record for the given date from the
// transient log, keeping the totals invariant.
func (s *Store) upsertDailyLog(date string) {
	day := model.DailyLog{
		Date:    date,
		Entries: append([]model.FoodEntry(nil), s.state.TodayLog...),
	}
	for _, e := range day.Entries {
		day.TotalCalories += e.Calories
		day.TotalProtein += e.Protein
		day.TotalCarbs += e.Carbs
		day.TotalFat += e.Fat
	}
	for i := range s.state.FoodHistory {
		if s.state.FoodHistory[i].Date == date {
			s.state.FoodHistory[i] = day
			return
		}
	}
	s.state.FoodHistory = append(s.state.FoodHistory, day)
}

// TodayCalories sums calories over today's transient log.
func (s *Store) TodayCalories() int {
	total := 0
	for _, e := range s.state.TodayLog {
		total += e.Calories
	}
	return total
}

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

func (s *Store) TodayMacros() Macros {
	var m Macros
	for _, e := range s.state.TodayLog {
		m.Protein += e.Protein
		m.Carbs += e.Carbs
		m.Fat += e.Fat
	}
	return m
}

// MealEntries filters today's log by meal category, insertion order.
func (s *Store) MealEntries(meal model.MealType) []model.FoodEntry {
	entries := []model.FoodEntry{}
	for _, e := range s.state.TodayLog {
		if e.MealType == meal {
			entries = append(entries, e)
		}
	}
	return entries
}

func (s *Store) TodayLog() []model.FoodEntry {
	return append([]model.FoodEntry(nil), s.state.TodayLog...)
}

type CaloriePoint struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Goal     int    `json:"goal"`
}

// CalorieHistory returns exactly days points, one per calendar day ending
// today, oldest first. Days without a record report zero calories against
// the current goal; past goals are not snapshotted.
func (s *Store) CalorieHistory(days int) []CaloriePoint {
	points := make([]CaloriePoint, 0, days)
	now := s.now()
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		point := CaloriePoint{Date: date, Goal: s.state.Goals.Calories}
		for _, h := range s.state.FoodHistory {
			if h.Date == date {
				point.Calories = h.TotalCalories
				break
			}
		}
		points = append(points, point)
	}
	return points
}

// FoodHistory returns persisted daily logs within the trailing window,
// sorted ascending by date.
func (s *Store) FoodHistory(days int) []model.DailyLog {
	cutoff := s.now().AddDate(0, 0, -days).Format(dateLayout)
	history := []model.DailyLog{}
	for _, h := range s.state.FoodHistory {
		if h.Date >= cutoff {
			history = append(history, h)
		}
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Date < history[j].Date })
	return history
}

// AddWeight records a weight for today; a second entry on the same date
// replaces the first.
func (s *Store) AddWeight(weightLbs float64) (model.WeightEntry, error) {
	if weightLbs <= 0 {
		return model.WeightEntry{}, fmt.Errorf("weight must be > 0")
	}
	entry := model.WeightEntry{
		ID:        uuid.NewString(),
		Date:      s.today(),
		WeightLbs: weightLbs,
		Timestamp: s.now(),
	}
	replaced := false
	for i := range s.state.WeightHistory {
		if s.state.WeightHistory[i].Date == entry.Date {
			s.state.WeightHistory[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		s.state.WeightHistory = append(s.state.WeightHistory, entry)
	}
	s.persist()
	return entry, nil
}

func (s *Store) WeightHistory(days int) []model.WeightEntry {
	cutoff := s.now().AddDate(0, 0, -days).Format(dateLayout)
	history := []model.WeightEntry{}
	for _, w := range s.state.WeightHistory {
		if w.Date >= cutoff {
			history = append(history, w)
		}
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Date < history[j].Date })
	return history
}

// HydrateTodayLog reconciles the transient today-log with history on
// startup. History wins when it has newer or more entries for today; a
// transient log carried over from a previous day is discarded, its entries
// already being in history.
func (s *Store) HydrateTodayLog() {
	today := s.today()

	var todayHistory *model.DailyLog
	for i := range s.state.FoodHistory {
		if s.state.FoodHistory[i].Date == today {
			todayHistory = &s.state.FoodHistory[i]
			break
		}
	}

	if todayHistory != nil && len(todayHistory.Entries) > 0 {
		historyLatest := latestTimestamp(todayHistory.Entries)
		todayLatest := latestTimestamp(s.state.TodayLog)
		if historyLatest.After(todayLatest) || len(s.state.TodayLog) != len(todayHistory.Entries) {
			s.state.TodayLog = append([]model.FoodEntry(nil), todayHistory.Entries...)
			s.persist()
		}
		return
	}

	if len(s.state.TodayLog) > 0 {
		stale := s.state.TodayLog[0].Timestamp.Format(dateLayout)
		if stale != today {
			s.state.TodayLog = []model.FoodEntry{}
			s.persist()
		}
	}
}

func latestTimestamp(entries []model.FoodEntry) time.Time {
	var latest time.Time
	for _, e := range entries {
		if e.Timestamp.After(latest) {
			latest = e.Timestamp
		}
	}
	return latest
}

func (s *Store) Goals() model.Goals {
	return s.state.Goals
}

func (s *Store) SetGoals(goals model.Goals) error {
	if err := validateNonNegative("calories", goals.Calories); err != nil {
		return err
	}
	if err := validateNonNegative("protein", goals.Protein); err != nil {
		return err
	}
	if err := validateNonNegative("carbs", goals.Carbs); err != nil {
		return err
	}
	if err := validateNonNegative("fat", goals.Fat); err != nil {
		return err
	}
	s.state.Goals = goals
	s.persist()
	return nil
}

func (s *Store) Profile() *model.UserProfile {
	if s.state.Profile == nil {
		return nil
	}
	p := *s.state.Profile
	return &p
}

func (s *Store) SetProfile(profile model.UserProfile) {
	s.state.Profile = &profile
	s.persist()
}

func (s *Store) Onboarded() bool {
	return s.state.Onboarded
}

func (s *Store) CompleteOnboarding() {
	s.state.Onboarded = true
	s.persist()
}

func (s *Store) Favorites() []model.FoodTemplate {
	return append([]model.FoodTemplate(nil), s.state.Favorites...)
}

func (s *Store) AddFavorite(t model.FoodTemplate) (model.FoodTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return model.FoodTemplate{}, fmt.Errorf("favorite name is required")
	}
	t.ID = uuid.NewString()
	s.state.Favorites = append(s.state.Favorites, t)
	s.persist()
	return t, nil
}

func (s *Store) RemoveFavorite(id string) {
	kept := s.state.Favorites[:0]
	removed := false
	for _, f := range s.state.Favorites {
		if f.ID == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if !removed {
		return
	}
	s.state.Favorites = kept
	s.persist()
}

func (s *Store) RecentFoods() []model.FoodTemplate {
	return append([]model.FoodTemplate(nil), s.state.RecentFoods...)
}

// addToRecent keeps a most-recent-first list deduplicated by name, capped
// at maxRecentFoods.
func (s *Store) addToRecent(entry model.FoodEntry) {
	recent := make([]model.FoodTemplate, 0, len(s.state.RecentFoods)+1)
	recent = append(recent, model.FoodTemplate{
		ID:          uuid.NewString(),
		Name:        entry.Name,
		Calories:    entry.Calories,
		Protein:     entry.Protein,
		Carbs:       entry.Carbs,
		Fat:         entry.Fat,
		ServingSize: entry.ServingSize,
		ServingUnit: entry.ServingUnit,
	})
	for _, f := range s.state.RecentFoods {
		if f.Name == entry.Name {
			continue
		}
		recent = append(recent, f)
	}
	if len(recent) > maxRecentFoods {
		recent = recent[:maxRecentFoods]
	}
	s.state.RecentFoods = recent
}

// State exposes the underlying document for export and integrity checks.
func (s *Store) State() *model.State {
	return s.state
}

func validateNonNegative(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}
