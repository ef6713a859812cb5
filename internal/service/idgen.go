package service

import "gorm.io/gorm"

// ProcessIDSource 上传未指定 process_id 时的发号策略。
// 注入接口而不是全局随机数，测试可控，也从根上消除撞号
type ProcessIDSource interface {
	Next() (int, error)
}

// SequenceIDSource 从 PostgreSQL 序列取号
type SequenceIDSource struct {
	db *gorm.DB
}

func NewSequenceIDSource(db *gorm.DB) *SequenceIDSource {
	return &SequenceIDSource{db: db}
}

func (s *SequenceIDSource) Next() (int, error) {
	var id int64
	if err := s.db.Raw("SELECT nextval('pdf_process_ids')").Scan(&id).Error; err != nil {
		return 0, err
	}
	return int(id), nil
}
