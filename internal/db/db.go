package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// InitPostgres 按环境变量初始化数据库连接
func InitPostgres() {
	sslMode := os.Getenv("POSTGRE_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("POSTGRE_HOST"),
		os.Getenv("POSTGRE_USER"),
		os.Getenv("POSTGRE_PASSWORD"),
		os.Getenv("POSTGRE_DB"),
		os.Getenv("POSTGRE_PORT"),
		sslMode,
	)
	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}
	log.Println("PostgreSQL connected")
}

func Instance() *gorm.DB {
	return db
}
