package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dininghero/core/internal/model"
)

type HourRepository interface {
	Create(ctx context.Context, hour *model.Hour) error
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]model.Hour, error)
	ListByDay(ctx context.Context, day string) ([]model.Hour, error)
}

type GormHourRepository struct {
	db *gorm.DB
}

func NewGormHourRepository(db *gorm.DB) *GormHourRepository {
	return &GormHourRepository{db: db}
}

func (r *GormHourRepository) Create(ctx context.Context, hour *model.Hour) error {
	return r.db.WithContext(ctx).Create(hour).Error
}

func (r *GormHourRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]model.Hour, error) {
	var hours []model.Hour
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("hour_id ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *GormHourRepository) ListByDay(ctx context.Context, day string) ([]model.Hour, error) {
	var hours []model.Hour
	err := r.db.WithContext(ctx).
		Where("day_id = ?", day).
		Order("hour_id ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}
