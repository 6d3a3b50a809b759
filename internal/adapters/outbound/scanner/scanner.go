package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/ciusage/internal/domain"
)

// DirScanner implements domain.DirectoryLister by reading one directory level.
type DirScanner struct{}

func New() *DirScanner {
	return &DirScanner{}
}

// List returns the immediate entries of dir sorted by name. Symlinks are
// followed when deciding whether an entry is a regular file.
func (s *DirScanner) List(dir string) ([]domain.DirEntry, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPathNotFound, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotDirectory, dir)
	}

	dirEntries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	entries := make([]domain.DirEntry, 0, len(dirEntries))
	for _, d := range dirEntries {
		path := filepath.Join(absPath, d.Name())
		entry := domain.DirEntry{Name: d.Name(), Path: path}

		// Broken symlinks stay non-regular.
		if fi, err := os.Stat(path); err == nil {
			entry.Regular = fi.Mode().IsRegular()
			entry.Size = fi.Size()
			entry.ModTime = fi.ModTime()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
