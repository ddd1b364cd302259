package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/storage"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json")
	repo := storage.NewFileRepository(path)

	state := model.NewState()
	state.XP = 120
	state.Achievements = []string{"first_log"}
	state.TodayLog = []model.FoodEntry{{
		ID: "a", Name: "Oats", Calories: 300, MealType: model.MealBreakfast,
		Timestamp: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
	}}

	if err := repo.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.XP != 120 || len(loaded.Achievements) != 1 || len(loaded.TodayLog) != 1 {
		t.Fatalf("unexpected state: %+v", loaded)
	}
	if loaded.TodayLog[0].Name != "Oats" {
		t.Fatalf("entry lost: %+v", loaded.TodayLog)
	}
}

func TestFileRepositoryMissingFileYieldsFreshState(t *testing.T) {
	t.Parallel()
	repo := storage.NewFileRepository(filepath.Join(t.TempDir(), "state.json"))
	state, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Goals != model.DefaultGoals() {
		t.Fatalf("fresh state goals: %+v", state.Goals)
	}
	if len(state.Favorites) == 0 {
		t.Fatalf("fresh state should seed favorites")
	}
}

func TestFileRepositoryBacksUpCorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	repo := storage.NewFileRepository(path)

	state, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.XP != 0 {
		t.Fatalf("corrupt file must yield fresh state")
	}
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Fatalf("corrupt file not backed up: %v", err)
	}
}

func TestFileRepositoryLeavesNoTempFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	repo := storage.NewFileRepository(path)
	if err := repo.Save(model.NewState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}
