package cache

import (
	"errors"
	"fmt"
	"os"

	"github.com/openkraft/ciusage/internal/adapters/outbound/statedir"
	"github.com/openkraft/ciusage/internal/domain"
)

// Store is a file-based implementation of domain.ResultCache. Results live in
// <dir>/.ciusage/cache/results.json.
type Store struct{}

// New creates a new file-based cache store.
func New() *Store {
	return &Store{}
}

// Load reads the cached results for dir. A missing file yields an empty cache.
func (s *Store) Load(dir string) (*domain.ResultCacheData, error) {
	data := &domain.ResultCacheData{Directory: dir}
	if _, err := statedir.ReadJSON(resultsPath(dir), data); err != nil {
		return nil, fmt.Errorf("loading result cache: %w", err)
	}
	return data, nil
}

// Save replaces the cached results for dir.
func (s *Store) Save(dir string, data *domain.ResultCacheData) error {
	if err := statedir.WriteJSON(resultsPath(dir), data); err != nil {
		return fmt.Errorf("saving result cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached result for dir.
func (s *Store) Invalidate(dir string) error {
	if err := os.Remove(resultsPath(dir)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func resultsPath(dir string) string {
	return statedir.Path(dir, "cache", "results.json")
}
