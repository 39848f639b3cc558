package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/dininghero/core/internal/config"
	"github.com/dininghero/core/internal/db"
	"github.com/dininghero/core/internal/loader"
	"github.com/dininghero/core/internal/model"
	"github.com/dininghero/core/internal/repository"
)

const dataFile = "data_10_restaurants"

func main() {
	_ = godotenv.Load()

	// 1. Конфиг БД из env.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}

	// 2. Подключение через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 3. Создаём таблицы, если их ещё нет.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := dataFile

	// 4. Загрузка ресторанов; старые строки удаляются, чтобы повторный запуск не давал дублей.
	if err := loadRestaurants(ctx, gormDB, path); err != nil {
		log.Printf("load %s: %v", path, err)
		stop()
		sqlDB.Close()
		os.Exit(1)
	}
}

func loadRestaurants(ctx context.Context, gormDB *gorm.DB, path string) error {
	log.Println("Restaurants")

	l := loader.New(repository.NewGormRestaurantRepository(gormDB), loader.Options{Replace: true})
	res, err := l.LoadFile(ctx, path)
	if err != nil {
		if res != nil {
			return fmt.Errorf("%d inserted, %d failed:\n%w", res.Inserted, len(res.Failed), err)
		}
		return err
	}

	log.Printf("load %s: %d inserted", path, res.Inserted)
	return nil
}
