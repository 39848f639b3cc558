package model

import "fmt"

// users
type User struct {
	ID uint `gorm:"column:user_id;primaryKey;autoIncrement"`

	FName    *string `gorm:"column:fname;type:varchar(15)"`
	LName    *string `gorm:"column:lname;type:varchar(15)"`
	Email    string  `gorm:"type:varchar(30);not null"`
	Username string  `gorm:"type:varchar(15);not null;uniqueIndex"`
	// Хранится как есть: аутентификации в этом сервисе нет.
	Password string  `gorm:"type:varchar(15);not null"`
	Phone    *string `gorm:"type:varchar(12);uniqueIndex"`
	// Произвольная строка (например, "vendor"), без проверки прав.
	UserType *string `gorm:"type:varchar(10)"`
}

func (User) TableName() string { return "users" }

func (u User) String() string {
	return fmt.Sprintf("<User fname=%s lname=%s email=%s user_type=%s>",
		deref(u.FName), deref(u.LName), u.Email, deref(u.UserType))
}
