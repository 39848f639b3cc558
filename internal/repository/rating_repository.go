package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dininghero/core/internal/model"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error
	// Оценки ресторана, новые первыми.
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]model.Rating, error)
	// Оценки, оставленные пользователем.
	ListByUser(ctx context.Context, userID uint) ([]model.Rating, error)
}

type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

func (r *GormRatingRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *GormRatingRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]model.Rating, error) {
	return r.listWhere(ctx, "restaurant_id = ?", restaurantID)
}

func (r *GormRatingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Rating, error) {
	return r.listWhere(ctx, "user_id = ?", userID)
}

func (r *GormRatingRepository) listWhere(ctx context.Context, cond string, arg any) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("rating_id DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
