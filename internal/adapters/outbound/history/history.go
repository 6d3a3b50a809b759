package history

import (
	"fmt"

	"github.com/openkraft/ciusage/internal/adapters/outbound/statedir"
	"github.com/openkraft/ciusage/internal/domain"
)

// FileHistory implements domain.RunHistory as a JSON array, oldest run first.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

// Save appends entry to the history of dir.
func (h *FileHistory) Save(dir string, entry domain.RunEntry) error {
	entries, err := h.Load(dir)
	if err != nil {
		return err
	}
	if err := statedir.WriteJSON(runsPath(dir), append(entries, entry)); err != nil {
		return fmt.Errorf("saving run history: %w", err)
	}
	return nil
}

// Load returns the recorded runs of dir, or nil when none were recorded.
func (h *FileHistory) Load(dir string) ([]domain.RunEntry, error) {
	var entries []domain.RunEntry
	if _, err := statedir.ReadJSON(runsPath(dir), &entries); err != nil {
		return nil, fmt.Errorf("loading run history: %w", err)
	}
	return entries, nil
}

func runsPath(dir string) string {
	return statedir.Path(dir, "history", "runs.json")
}
