package model

import "fmt"

// categories
type Category struct {
	ID uint `gorm:"column:category_id;primaryKey;autoIncrement"`

	Specialty    *string `gorm:"type:text"`
	RestaurantID *uint   `gorm:"index"`

	Restaurant *Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Category) TableName() string { return "categories" }

func (c Category) String() string {
	return fmt.Sprintf("<Category category_id=%d specialty=%s>", c.ID, deref(c.Specialty))
}
