package model

import (
	"time"

	"github.com/lib/pq"
)

// PdfAnnotation 单个字段标注记录，创建后不可变
type PdfAnnotation struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Process     int             `gorm:"not null" json:"process"` // 标注会话 / 上传 PDF 实例
	FormID      int             `gorm:"not null" json:"form_id"`
	FieldID     int             `gorm:"not null" json:"field_id"`
	FieldName   string          `gorm:"type:text;not null" json:"field_name"`
	FieldHeader string          `gorm:"type:text" json:"field_header"`
	Bbox        pq.Float64Array `gorm:"type:float8[]" json:"bbox"` // [x1,y1,x2,y2] 页面坐标
	Page        int             `gorm:"not null" json:"page"`
	Scale       float64         `gorm:"not null" json:"scale"` // 标注时的缩放倍率
	FieldType   string          `gorm:"type:text;not null" json:"field_type"`
	Metadata    FieldMetadata   `gorm:"type:jsonb" json:"metadata"`
	CreatedAt   time.Time       `json:"created_at"`
}
