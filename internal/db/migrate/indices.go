package migrate

import (
	"log"

	"pdf-annotator-backend/internal/db"
)

// InitIndices 建立投影查询与孤儿清理用到的索引
func InitIndices() {
	sql := `
-- 字段投影按 (process, form_id) 全量读取
CREATE INDEX IF NOT EXISTS idx_pdf_annotations_process_form
ON pdf_annotations (process, form_id);

-- 孤儿文件清理按公开路径反查
CREATE INDEX IF NOT EXISTS idx_pdf_files_file_path
ON pdf_files (file_path);
    `

	if err := db.Instance().Exec(sql).Error; err != nil {
		log.Fatal("Index initialization failed:", err)
	}
	log.Println("Indices initialized")
}
