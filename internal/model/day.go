package model

import "fmt"

// days — ключом служит само название дня
type Day struct {
	Name string `gorm:"column:day;type:varchar(10);primaryKey"`
}

func (Day) TableName() string { return "days" }

func (d Day) String() string {
	return fmt.Sprintf("<Day day=%s>", d.Name)
}
