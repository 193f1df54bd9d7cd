package status

import (
	"sync"
	"testing"

	"imagegenservice/internal/domain"
)

func TestCreateInsertsProcessingRecord(t *testing.T) {
	s := NewStore()
	id := s.Create("user-1")
	if id == "" {
		t.Fatal("Create returned empty id")
	}
	job := s.Get(id)
	if job.Status != domain.JobStatusProcessing {
		t.Fatalf("Status = %q, want %q", job.Status, domain.JobStatusProcessing)
	}
	if job.UserID != "user-1" {
		t.Fatalf("UserID = %q, want %q", job.UserID, "user-1")
	}
	if job.Progress != 0 {
		t.Fatalf("Progress = %d, want 0", job.Progress)
	}
}

func TestCreateIDsAreUnique(t *testing.T) {
	s := NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.Create("u")
		if seen[id] {
			t.Fatalf("duplicate job id %q", id)
		}
		seen[id] = true
	}
}

func TestGetUnknownIDSynthesizesNotFound(t *testing.T) {
	s := NewStore()
	job := s.Get("missing")
	if job.Status != domain.JobStatusNotFound {
		t.Fatalf("Status = %q, want %q", job.Status, domain.JobStatusNotFound)
	}
	if job.ErrorMessage == "" {
		t.Fatal("expected a non-empty error message")
	}
	if s.Len() != 0 {
		t.Fatalf("lookup mutated the store, Len = %d", s.Len())
	}
	// A second lookup must be identical.
	if again := s.Get("missing"); again != job {
		t.Fatalf("repeated Get differs: %+v vs %+v", again, job)
	}
}

func TestUpdateMutatesInPlace(t *testing.T) {
	s := NewStore()
	id := s.Create("u")
	s.Update(id, func(j *domain.Job) {
		j.Status = domain.JobStatusCompleted
		j.ImageURL = "https://example.com/img.png"
		j.AdvanceProgress(100)
	})
	job := s.Get(id)
	if job.Status != domain.JobStatusCompleted || job.Progress != 100 {
		t.Fatalf("unexpected record after update: %+v", job)
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.Update("missing", func(j *domain.Job) { j.Status = domain.JobStatusCompleted })
	if s.Len() != 0 {
		t.Fatalf("Update inserted a record, Len = %d", s.Len())
	}
}

func TestProgressNeverMovesBackwards(t *testing.T) {
	s := NewStore()
	id := s.Create("u")
	for _, p := range []int{25, 50, 25, 100, 50} {
		s.Update(id, func(j *domain.Job) { j.AdvanceProgress(p) })
	}
	if got := s.Get(id).Progress; got != 100 {
		t.Fatalf("Progress = %d, want 100", got)
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	s := NewStore()
	id := s.Create("u")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(p int) {
			defer wg.Done()
			s.Update(id, func(j *domain.Job) { j.AdvanceProgress(p) })
		}(i * 10)
		go func() {
			defer wg.Done()
			job := s.Get(id)
			if job.Status != domain.JobStatusProcessing {
				t.Errorf("unexpected status %q", job.Status)
			}
		}()
	}
	wg.Wait()
}
