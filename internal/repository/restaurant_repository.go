package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dininghero/core/internal/model"
)

type RestaurantRepository interface {
	// Создать ресторан.
	Create(ctx context.Context, restaurant *model.Restaurant) error
	// Найти ресторан по ID.
	GetByID(ctx context.Context, id uint) (*model.Restaurant, error)
	// Найти ресторан по идентификатору во внешнем каталоге.
	FindByExternalPlacesID(ctx context.Context, externalID string) (*model.Restaurant, error)
	// Список ресторанов с пагинацией и общим количеством.
	List(ctx context.Context, limit, offset int) ([]model.Restaurant, int64, error)
	// Удалить все рестораны. Возвращает число удалённых строк.
	DeleteAll(ctx context.Context) (int64, error)
}

type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *GormRestaurantRepository) GetByID(ctx context.Context, id uint) (*model.Restaurant, error) {
	var res model.Restaurant
	if err := r.db.WithContext(ctx).First(&res, "restaurant_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *GormRestaurantRepository) FindByExternalPlacesID(ctx context.Context, externalID string) (*model.Restaurant, error) {
	var res model.Restaurant
	if err := r.db.WithContext(ctx).Where("external_places_id = ?", externalID).First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *GormRestaurantRepository) List(ctx context.Context, limit, offset int) ([]model.Restaurant, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Restaurant{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var restaurants []model.Restaurant
	if err := q.Order("restaurant_id ASC").Limit(limit).Offset(offset).Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

func (r *GormRestaurantRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Restaurant{})
	return res.RowsAffected, res.Error
}
