package memory

import (
	"sync"
	"time"

	"quiz_backend/internal/model"
)

type ResultStore struct {
	mu      sync.RWMutex
	results []model.Result
}

func NewResultStore() *ResultStore {
	return &ResultStore{}
}

func (s *ResultStore) Create(r *model.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = model.GenerateUUID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.results = append(s.results, *r)
	return nil
}

func (s *ResultStore) List() ([]model.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Result, len(s.results))
	copy(out, s.results)
	return out, nil
}

func (s *ResultStore) FindByID(id string) (*model.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.results {
		if s.results[i].ID == id {
			r := s.results[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (s *ResultStore) CountSince(username string, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for i := range s.results {
		if s.results[i].Username == username && !s.results[i].CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *ResultStore) OldestSince(username string, since time.Time) (*model.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var oldest *model.Result
	for i := range s.results {
		r := &s.results[i]
		if r.Username != username || r.CreatedAt.Before(since) {
			continue
		}
		if oldest == nil || r.CreatedAt.Before(oldest.CreatedAt) {
			oldest = r
		}
	}
	if oldest == nil {
		return nil, nil
	}
	out := *oldest
	return &out, nil
}

func (s *ResultStore) Delete(id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.results {
		if s.results[i].ID == id {
			s.results = append(s.results[:i], s.results[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *ResultStore) DeleteAll() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.results))
	s.results = nil
	return n, nil
}
