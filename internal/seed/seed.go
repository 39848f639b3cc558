// Package seed заполняет базу фиксированным набором примеров.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dininghero/core/internal/model"
)

type restaurantDef struct {
	externalID string
	score      float64
	name       string
	internalID string
	address    string
	specialty  string
}

type userDef struct {
	fname, lname string
	email        string
	username     string
	password     string
	userType     string
}

var exampleRestaurants = []restaurantDef{
	{externalID: "places_id", score: 4.3, name: "Hippie Thai", internalID: "internal_id", address: "123 Haight St.", specialty: "Spicy"},
	{externalID: "places_other_id", score: 4.7, name: "Pettit Creen", internalID: "other_internal_id", address: "123 Market St.", specialty: "Fancy"},
}

var exampleUsers = []userDef{
	{fname: "Joana", lname: "Maria", email: "joana@gmail.com", username: "joanamaria", password: "joanapassword", userType: "vendor"},
	{fname: "Andre", lname: "Falco", email: "andre@gmail.com", username: "andrefalco", password: "andrepassword"},
}

// ExampleData очищает все таблицы и вставляет примеры: два ресторана,
// две категории и двух пользователей. Всё выполняется в одной транзакции,
// поэтому повторный запуск даёт то же состояние, а ошибка не оставляет
// частично записанных данных.
func ExampleData(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}

		for _, rd := range exampleRestaurants {
			r := model.Restaurant{
				ExternalPlacesID: rd.externalID,
				GeneralScore:     rd.score,
				Name:             rd.name,
				InternalPlacesID: rd.internalID,
				Address:          rd.address,
			}
			if err := tx.Create(&r).Error; err != nil {
				return fmt.Errorf("insert %s: %w", r, err)
			}

			c := model.Category{Specialty: model.Ptr(rd.specialty), RestaurantID: &r.ID}
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("insert %s: %w", c, err)
			}
		}

		for _, ud := range exampleUsers {
			u := model.User{
				FName:    model.Ptr(ud.fname),
				LName:    model.Ptr(ud.lname),
				Email:    ud.email,
				Username: ud.username,
				Password: ud.password,
			}
			if ud.userType != "" {
				u.UserType = model.Ptr(ud.userType)
			}
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("insert %s: %w", u, err)
			}
		}

		return nil
	})
}

// Wipe очищает все шесть таблиц в одной транзакции.
func Wipe(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(wipe)
}

// wipe удаляет строки в порядке model.Tables: дочерние раньше родительских,
// иначе сработает ON DELETE RESTRICT.
func wipe(tx *gorm.DB) error {
	global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, table := range model.Tables {
		if err := global.Delete(table).Error; err != nil {
			return fmt.Errorf("wipe %T: %w", table, err)
		}
	}
	return nil
}
