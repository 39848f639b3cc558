package model

import "fmt"

// hours — часы работы ресторана в конкретный день
type Hour struct {
	ID uint `gorm:"column:hour_id;primaryKey;autoIncrement"`

	OpenTime        *string `gorm:"type:varchar(20)"`
	ClosingTime     *string `gorm:"type:varchar(20)"`
	AdditionalHours *string `gorm:"type:varchar(15)"`
	RestaurantID    *uint   `gorm:"index"`
	DayID           *string `gorm:"type:varchar(10);index"`

	Restaurant *Restaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Day        *Day        `gorm:"foreignKey:DayID;references:Name;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Hour) TableName() string { return "hours" }

func (h Hour) String() string {
	return fmt.Sprintf("<Hour open_time=%s closing_time=%s day=%s>",
		deref(h.OpenTime), deref(h.ClosingTime), deref(h.DayID))
}
