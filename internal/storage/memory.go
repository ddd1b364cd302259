package storage

import "github.com/probuilddigital1-star/nourish/internal/model"

// MemoryRepository keeps the state in memory only. Used by tests and by
// read-only commands that must not touch the data file.
type MemoryRepository struct {
	State *model.State

	// SaveErr, when set, is returned from every Save. Lets tests exercise
	// the store's swallow-and-log behavior on persistence failure.
	SaveErr error

	Saves int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load() (*model.State, error) {
	if r.State == nil {
		return model.NewState(), nil
	}
	return r.State, nil
}

func (r *MemoryRepository) Save(state *model.State) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Saves++
	r.State = state
	return nil
}
