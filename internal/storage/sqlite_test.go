package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/storage"
)

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nourish.db")
	repo, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()

	state, err := repo.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if state.Goals != model.DefaultGoals() {
		t.Fatalf("empty database should yield fresh state")
	}

	state.XP = 45
	state.WaterIntake = 3
	if err := repo.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}
	state.XP = 60
	if err := repo.Save(state); err != nil {
		t.Fatalf("save again: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.XP != 60 || loaded.WaterIntake != 3 {
		t.Fatalf("unexpected state: XP=%d water=%d", loaded.XP, loaded.WaterIntake)
	}
}

func TestSQLiteMigrationsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nourish.db")

	repo, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	state := model.NewState()
	state.XP = 10
	if err := repo.Save(state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	repo, err = storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer repo.Close()

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if loaded.XP != 10 {
		t.Fatalf("state lost across reopen: XP=%d", loaded.XP)
	}
}
