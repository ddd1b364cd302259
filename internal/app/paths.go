package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "nourish"
	stateFileName  = "state.json"
	sqliteFileName = "nourish.db"
)

// DefaultDataDir resolves the per-user application data directory.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// StatePath returns the JSON state file location under dir.
func StatePath(dir string) string {
	return filepath.Join(dir, stateFileName)
}

// SQLitePath returns the sqlite database location under dir.
func SQLitePath(dir string) string {
	return filepath.Join(dir, sqliteFileName)
}

// EnsureDir creates the data directory when missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
