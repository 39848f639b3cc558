package model

import "fmt"

// restaurants
type Restaurant struct {
	ID uint `gorm:"column:restaurant_id;primaryKey;autoIncrement"`

	// Идентификатор места во внешнем каталоге.
	ExternalPlacesID string  `gorm:"type:varchar(30);not null;uniqueIndex"`
	GeneralScore     float64 `gorm:"not null"`
	Name             string  `gorm:"type:varchar(30);not null"`
	InternalPlacesID string  `gorm:"type:varchar(50);not null;uniqueIndex"`
	Address          string  `gorm:"type:varchar(100);not null"`
}

func (Restaurant) TableName() string { return "restaurants" }

func (r Restaurant) String() string {
	return fmt.Sprintf("<Restaurant restaurant_id=%d name=%s score=%g>", r.ID, r.Name, r.GeneralScore)
}
