package dataset

import (
	"time"

	"datatable/internal/domain/models"
)

// Store holds the generated dataset for the process lifetime. It is built
// once at startup and never mutated, so concurrent readers need no locking.
type Store struct {
	records []models.Employee
}

// Config controls dataset generation.
type Config struct {
	Size int
	// Seed fixes the random stream; 0 means seed from the clock.
	Seed int64
	// Now anchors the start-date window; zero means time.Now.
	Now time.Time
}

// DefaultSize matches the original challenge dataset.
const DefaultSize = 10000

// NewStore generates and caches the dataset.
func NewStore(cfg Config) *Store {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now().UTC()
	}
	return &Store{records: Generate(cfg.Size, cfg.Seed, cfg.Now)}
}

// NewStoreWith wraps a fixed record slice, mainly for seeded tests.
func NewStoreWith(records []models.Employee) *Store {
	return &Store{records: records}
}

// All returns the full ordered dataset. Callers must treat it as read-only.
func (s *Store) All() []models.Employee {
	return s.records
}

// Len reports dataset cardinality.
func (s *Store) Len() int {
	return len(s.records)
}

// Departments returns the department vocabulary for filter controls.
func (s *Store) Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}

// Positions returns the position vocabulary.
func (s *Store) Positions() []string {
	out := make([]string, len(positions))
	copy(out, positions)
	return out
}

// Statuses returns legal status values.
func (s *Store) Statuses() []string {
	out := make([]string, len(models.Statuses))
	copy(out, models.Statuses)
	return out
}
