package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/probuilddigital1-star/nourish/internal/model"
)

// FileRepository stores the state as a single pretty-printed JSON file.
type FileRepository struct {
	Path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{Path: path}
}

// Load reads the state file. A missing file yields a fresh state. A corrupt
// file is backed up next to the original and a fresh state is returned so
// the app keeps working.
func (r *FileRepository) Load() (*model.State, error) {
	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		return model.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", r.Path, err)
	}

	var state model.State
	if err := json.Unmarshal(data, &state); err != nil {
		backup := r.Path + ".corrupt"
		_ = os.Rename(r.Path, backup)
		return model.NewState(), nil
	}
	normalize(&state)
	return &state, nil
}

// Save atomically writes the state: temp file first, then rename.
func (r *FileRepository) Save(state *model.State) error {
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	tmp := r.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := os.Rename(tmp, r.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp state file: %w", err)
	}
	return nil
}

// normalize replaces nil slices so callers can append without nil checks.
func normalize(s *model.State) {
	if s.Favorites == nil {
		s.Favorites = []model.FoodTemplate{}
	}
	if s.RecentFoods == nil {
		s.RecentFoods = []model.FoodTemplate{}
	}
	if s.FoodHistory == nil {
		s.FoodHistory = []model.DailyLog{}
	}
	if s.WeightHistory == nil {
		s.WeightHistory = []model.WeightEntry{}
	}
	if s.TodayLog == nil {
		s.TodayLog = []model.FoodEntry{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
}
