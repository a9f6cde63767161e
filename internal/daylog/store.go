package daylog

import (
	"time"

	"github.com/starford/logbook/internal/storage"
)

// Store loads and persists daily logs through a storage provider.
type Store struct {
	fs storage.Provider
}

// NewStore creates a Store backed by the given provider.
func NewStore(fs storage.Provider) *Store {
	return &Store{fs: fs}
}

// Load reads and parses the daily log at path. A missing or unreadable file
// is treated the same as unrecognizable content: a fresh skeleton.
func (s *Store) Load(path string) (*DailyLog, Source) {
	data, err := s.fs.Read(path)
	if err != nil {
		return New(), SourceSkeleton
	}
	return Parse(data)
}

// Save atomically writes the canonical rendering of d to path.
func (s *Store) Save(path string, d *DailyLog) error {
	return s.fs.Write(path, Render(d))
}

// Filename returns the daily file name for a date, e.g. "2025-08-31.md".
func Filename(t time.Time) string {
	return t.Format("2006-01-02") + ".md"
}
