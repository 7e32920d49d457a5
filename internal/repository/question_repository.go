package repository

import (
	"errors"
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

// FindByID 未找到时返回 (nil, nil)，由服务层映射为业务错误
func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// FindByPrompt 按题干查重，忽略首尾空白和大小写
func (r *QuestionRepository) FindByPrompt(prompt string) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("LOWER(TRIM(question)) = LOWER(TRIM(?))", prompt).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) List(filter model.QuestionFilter) ([]model.Question, error) {
	var qs []model.Question
	err := r.applyFilter(r.DB, filter).Order("created_at desc").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindByIDs(ids []string, filter model.QuestionFilter) ([]model.Question, error) {
	var qs []model.Question
	err := r.applyFilter(r.DB, filter).Where("id IN ?", ids).Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) Delete(id string) (int64, error) {
	res := r.DB.Delete(&model.Question{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *QuestionRepository) DeleteAll() (int64, error) {
	res := r.DB.Where("1 = 1").Delete(&model.Question{})
	return res.RowsAffected, res.Error
}

func (r *QuestionRepository) applyFilter(db *gorm.DB, filter model.QuestionFilter) *gorm.DB {
	query := db.Model(&model.Question{})
	if filter.Channel != "" {
		query = query.Where("channel = ?", filter.Channel)
	}
	if filter.Course != "" {
		query = query.Where("course = ?", filter.Course)
	}
	if filter.Topic != "" {
		query = query.Where("topic = ?", filter.Topic)
	}
	if filter.Lecture != "" {
		query = query.Where("lecture = ?", filter.Lecture)
	}
	return query
}
