package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dininghero/core/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]model.Category, error)
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormCategoryRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category_id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
