package migrate

import (
	"log"

	"pdf-annotator-backend/internal/db"
	"pdf-annotator-backend/internal/model"
)

// DBMigrateAll 用于迁移所有表结构
func DBMigrateAll() {
	log.Println("Starting table migrations")

	if err := db.Instance().AutoMigrate(&model.PdfFile{}, &model.PdfAnnotation{}); err != nil {
		log.Fatal("Table migration failed:", err)
	}

	log.Println("Table migrations completed")
}
