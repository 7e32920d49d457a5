// Package memory 提供 service 层存储接口的内存实现，用于测试
package memory

import (
	"strings"
	"sync"
	"time"

	"quiz_backend/internal/model"
)

type QuestionStore struct {
	mu        sync.RWMutex
	questions []model.Question
}

func NewQuestionStore() *QuestionStore {
	return &QuestionStore{}
}

func (s *QuestionStore) Create(q *model.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q.ID == "" {
		q.ID = model.GenerateUUID()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	s.questions = append(s.questions, *q)
	return nil
}

func (s *QuestionStore) FindByID(id string) (*model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.questions {
		if s.questions[i].ID == id {
			q := s.questions[i]
			return &q, nil
		}
	}
	return nil, nil
}

func (s *QuestionStore) FindByPrompt(prompt string) (*model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.TrimSpace(prompt)
	for i := range s.questions {
		if strings.EqualFold(strings.TrimSpace(s.questions[i].Question), needle) {
			q := s.questions[i]
			return &q, nil
		}
	}
	return nil, nil
}

func (s *QuestionStore) List(filter model.QuestionFilter) ([]model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Question
	for i := range s.questions {
		if filter.Matches(&s.questions[i]) {
			out = append(out, s.questions[i])
		}
	}
	return out, nil
}

func (s *QuestionStore) FindByIDs(ids []string, filter model.QuestionFilter) ([]model.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []model.Question
	for i := range s.questions {
		q := &s.questions[i]
		if wanted[q.ID] && filter.Matches(q) {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (s *QuestionStore) Delete(id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.questions {
		if s.questions[i].ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *QuestionStore) DeleteAll() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.questions))
	s.questions = nil
	return n, nil
}
