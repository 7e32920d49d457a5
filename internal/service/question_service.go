package service

import (
	"strings"

	"quiz_backend/internal/model"
	"quiz_backend/internal/util"

	"github.com/google/uuid"
)

type QuestionService struct {
	Store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{Store: store}
}

type QuestionReq struct {
	Question           string   `json:"question"`
	Answers            []string `json:"answers"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex"`
	Channel            string   `json:"channel"`
	Course             string   `json:"course"`
	Topic              string   `json:"topic"`
	Lecture            string   `json:"lecture"`
}

// QuestionSummary 紧凑列表行，正确答案按下标解析为文本
type QuestionSummary struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	Channel       string `json:"channel"`
	Course        string `json:"course"`
	Topic         string `json:"topic"`
	Lecture       string `json:"lecture"`
}

type SearchResult struct {
	Total  int                  `json:"total"`
	Filter model.QuestionFilter `json:"filter"`
	Items  []model.Question     `json:"items"`
}

func (s *QuestionService) List(filter model.QuestionFilter) ([]model.Question, error) {
	return s.Store.List(normalizeFilter(filter))
}

func (s *QuestionService) CompactList(filter model.QuestionFilter) ([]QuestionSummary, error) {
	qs, err := s.Store.List(normalizeFilter(filter))
	if err != nil {
		return nil, err
	}

	rows := make([]QuestionSummary, 0, len(qs))
	for i := range qs {
		q := &qs[i]
		rows = append(rows, QuestionSummary{
			ID:            q.ID,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer(),
			Channel:       q.Channel,
			Course:        q.Course,
			Topic:         q.Topic,
			Lecture:       q.Lecture,
		})
	}
	return rows, nil
}

func (s *QuestionService) Search(filter model.QuestionFilter) (*SearchResult, error) {
	filter = normalizeFilter(filter)
	qs, err := s.Store.List(filter)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Total: len(qs), Filter: filter, Items: qs}, nil
}

func (s *QuestionService) Get(id string) (*model.Question, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &util.InvalidIDError{ID: id}
	}

	q, err := s.Store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, util.ErrQuestionNotFound
	}
	return q, nil
}

// Create 入库前查重：题干相同（忽略首尾空白、大小写）视为重复
func (s *QuestionService) Create(req QuestionReq) (*model.Question, error) {
	existing, err := s.Store.FindByPrompt(req.Question)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrDuplicateQuestion
	}

	answers := make([]string, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = strings.TrimSpace(a)
	}

	q := &model.Question{
		Question:           strings.TrimSpace(req.Question),
		Answers:            answers,
		CorrectAnswerIndex: *req.CorrectAnswerIndex,
		Channel:            strings.TrimSpace(req.Channel),
		Course:             strings.TrimSpace(req.Course),
		Topic:              strings.TrimSpace(req.Topic),
		Lecture:            strings.TrimSpace(req.Lecture),
	}

	if err := s.Store.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &util.InvalidIDError{ID: id}
	}

	deleted, err := s.Store.Delete(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}

func (s *QuestionService) DeleteAll() (int64, error) {
	deleted, err := s.Store.DeleteAll()
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, util.ErrNothingDeleted
	}
	return deleted, nil
}

func normalizeFilter(f model.QuestionFilter) model.QuestionFilter {
	f.Channel = strings.TrimSpace(f.Channel)
	f.Course = strings.TrimSpace(f.Course)
	f.Topic = strings.TrimSpace(f.Topic)
	f.Lecture = strings.TrimSpace(f.Lecture)
	return f
}
