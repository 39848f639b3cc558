package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/dininghero/core/internal/config"
	"github.com/dininghero/core/internal/db"
)

func main() {
	// .env необязателен
	_ = godotenv.Load()

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}

	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	fmt.Println("Connected to DB.")
}
