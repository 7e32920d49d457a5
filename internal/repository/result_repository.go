package repository

import (
	"errors"
	"time"

	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Create(res *model.Result) error {
	return r.DB.Create(res).Error
}

func (r *ResultRepository) List() ([]model.Result, error) {
	var rs []model.Result
	err := r.DB.Order("created_at desc").Find(&rs).Error
	return rs, err
}

func (r *ResultRepository) FindByID(id string) (*model.Result, error) {
	var res model.Result
	err := r.DB.First(&res, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CountSince 统计某用户名自 since 起已保存的结果数，用于限流判断
func (r *ResultRepository) CountSince(username string, since time.Time) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Result{}).
		Where("username = ? AND created_at >= ?", username, since).
		Count(&n).Error
	return n, err
}

// OldestSince 返回窗口内最早的一次提交，用于计算剩余等待时间
func (r *ResultRepository) OldestSince(username string, since time.Time) (*model.Result, error) {
	var res model.Result
	err := r.DB.Where("username = ? AND created_at >= ?", username, since).
		Order("created_at asc").
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResultRepository) Delete(id string) (int64, error) {
	res := r.DB.Delete(&model.Result{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *ResultRepository) DeleteAll() (int64, error) {
	res := r.DB.Where("1 = 1").Delete(&model.Result{})
	return res.RowsAffected, res.Error
}
