package service

import (
	"time"

	"quiz_backend/internal/model"
)

// QuestionStore 抽象题目的存储访问（gorm实现见 repository 包，测试用内存实现）。
// Find 类方法未找到时返回 (nil, nil)。
type QuestionStore interface {
	Create(q *model.Question) error
	FindByID(id string) (*model.Question, error)
	FindByPrompt(prompt string) (*model.Question, error)
	List(filter model.QuestionFilter) ([]model.Question, error)
	FindByIDs(ids []string, filter model.QuestionFilter) ([]model.Question, error)
	Delete(id string) (int64, error)
	DeleteAll() (int64, error)
}

// ResultStore 抽象答题结果的存储访问
type ResultStore interface {
	Create(r *model.Result) error
	List() ([]model.Result, error)
	FindByID(id string) (*model.Result, error)
	CountSince(username string, since time.Time) (int64, error)
	OldestSince(username string, since time.Time) (*model.Result, error)
	Delete(id string) (int64, error)
	DeleteAll() (int64, error)
}
