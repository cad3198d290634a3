package resume

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is an in-memory record store with version snapshots. It belongs to
// the orchestration layer: pipeline components never touch it.
type Store struct {
	mu      sync.RWMutex
	records map[string]*Resume
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]*Resume)}
}

// Save stores the record, assigning an ID, upload timestamp and initial
// version when absent. It returns the stored record.
func (s *Store) Save(r *Resume) *Resume {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.UploadedAt.IsZero() {
		r.UploadedAt = time.Now().UTC()
	}
	if r.Version == 0 {
		r.Version = 1
	}

	s.records[r.ID] = r
	return r
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (*Resume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	return r, ok
}

// List returns all records ordered by upload time, then ID.
func (s *Store) List() []*Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*Resume, 0, len(s.records))
	for _, r := range s.records {
		all = append(all, r)
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].UploadedAt.Equal(all[j].UploadedAt) {
			return all[i].UploadedAt.Before(all[j].UploadedAt)
		}
		return all[i].ID < all[j].ID
	})

	return all
}

// Delete removes the record with the given ID, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}

// Snapshot appends a version snapshot of the record's current state and
// increments its version counter.
func (s *Store) Snapshot(id, changes string) (*Version, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("resume %s not found", id)
	}

	snapshot := &Version{
		Version:   r.Version,
		CreatedAt: time.Now().UTC(),
		Changes:   changes,
		Snapshot:  r.Clone(),
	}

	r.Versions = append(r.Versions, snapshot)
	r.Version++

	return snapshot, nil
}
