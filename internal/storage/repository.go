package storage

import "github.com/probuilddigital1-star/nourish/internal/model"

// Repository persists the whole application state document. Implementations
// must return a fresh state from Load when nothing has been saved yet.
type Repository interface {
	// Load reads the persisted state, or a new default state if absent.
	Load() (*model.State, error)

	// Save durably replaces the persisted state.
	Save(state *model.State) error
}
