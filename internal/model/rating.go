package model

import "fmt"

// ratings
type Rating struct {
	ID uint `gorm:"column:rating_id;primaryKey;autoIncrement"`

	Score        int     `gorm:"not null"`
	UserReview   *string `gorm:"type:text"`
	UserID       *uint   `gorm:"index"`
	RestaurantID *uint   `gorm:"index"`

	// Навигационные поля (только belongs-to).
	User       *User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Restaurant *Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Rating) TableName() string { return "ratings" }

func (r Rating) String() string {
	return fmt.Sprintf("<Rating rating_id=%d score=%d user_review=%s>", r.ID, r.Score, deref(r.UserReview))
}
