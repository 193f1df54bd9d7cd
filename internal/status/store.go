// Package status owns the process-lifetime record of generation jobs. The
// orchestrator is the only writer; facades and status queries read copies.
package status

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"imagegenservice/internal/domain"
)

// Store is a concurrency-safe map of job id to job record. Records are never
// evicted; retention is bounded only by the process lifetime.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]domain.Job
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{jobs: make(map[string]domain.Job)}
}

// Create inserts a fresh processing record for owner and returns its id.
func (s *Store) Create(owner string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.jobs[id] = domain.Job{
		ID:     id,
		UserID: owner,
		Status: domain.JobStatusProcessing,
	}
	s.mu.Unlock()
	return id
}

// Update applies mutate to the stored record in place. Unknown ids are
// ignored. The record is copied out, mutated, and written back under the
// lock, so readers never observe a torn record.
func (s *Store) Update(id string, mutate func(*domain.Job)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	mutate(&job)
	s.jobs[id] = job
}

// Get returns a copy of the stored record, or a synthesized not_found record
// for unknown ids. Lookups never mutate the store.
func (s *Store) Get(id string) domain.Job {
	s.mu.RLock()
	job, ok := s.jobs[id]
	s.mu.RUnlock()
	if !ok {
		return domain.Job{
			ID:           id,
			Status:       domain.JobStatusNotFound,
			ErrorMessage: fmt.Sprintf("generation id %s not found", id),
		}
	}
	return job
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
