package model

import "gorm.io/gorm"

// AutoMigrate создаёт таблицы всех сущностей. Порядок зависимостей GORM выводит сам.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Restaurant{},
		&Category{},
		&User{},
		&Rating{},
		&Day{},
		&Hour{},
	)
}

// Tables — порядок очистки: сначала дочерние таблицы, затем родительские.
var Tables = []any{
	&Rating{},
	&Hour{},
	&Category{},
	&Day{},
	&User{},
	&Restaurant{},
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr — удобный конструктор для nullable-полей.
func Ptr[T any](v T) *T {
	return &v
}
