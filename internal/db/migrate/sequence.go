package migrate

import (
	"log"

	"pdf-annotator-backend/internal/db"
)

// InitSequences 建立 process_id 发号序列。
// 调用方没带 process_id 时从这里取号，天然不会撞号
func InitSequences() {
	sql := `
CREATE SEQUENCE IF NOT EXISTS pdf_process_ids
START WITH 1000 INCREMENT BY 1;
    `

	if err := db.Instance().Exec(sql).Error; err != nil {
		log.Fatal("Sequence initialization failed:", err)
	}
	log.Println("Sequences initialized")
}
