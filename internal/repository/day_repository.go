package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dininghero/core/internal/model"
)

type DayRepository interface {
	// Ensure возвращает существующий день или создаёт его.
	Ensure(ctx context.Context, name string) (*model.Day, error)
	// Delete удаляет день; если на него ссылаются часы работы, БД отклонит удаление.
	Delete(ctx context.Context, name string) error
}

type GormDayRepository struct {
	db *gorm.DB
}

func NewGormDayRepository(db *gorm.DB) *GormDayRepository {
	return &GormDayRepository{db: db}
}

func (r *GormDayRepository) Ensure(ctx context.Context, name string) (*model.Day, error) {
	if name == "" {
		return nil, gorm.ErrRecordNotFound
	}
	d := model.Day{Name: name}
	if err := r.db.WithContext(ctx).FirstOrCreate(&d, model.Day{Name: name}).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDayRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Delete(&model.Day{}, "day = ?", name).Error
}
