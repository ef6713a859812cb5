package model

import "time"

// PdfFile 一次成功上传对应一条记录，核心字段创建后不再修改；
// PageCount 是异步检查 PDF 后补写的派生列
type PdfFile struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	PdfID      int       `gorm:"not null" json:"pdf_id"` // 即 process_id，后续标注用它打标
	FormID     int       `gorm:"not null" json:"form_id"`
	FileName   string    `gorm:"type:text" json:"file_name"` // 客户端原始文件名
	FilePath   string    `gorm:"type:text" json:"file_path"` // 对外可访问路径，如 /uploads/xxx.pdf
	PageCount  int       `json:"page_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
