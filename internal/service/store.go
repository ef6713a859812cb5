package service

import (
	"gorm.io/gorm"

	"pdf-annotator-backend/internal/model"
)

// FileStore 上传文件记录的存取
type FileStore interface {
	// Insert 单条写入，主键回填到入参
	Insert(file *model.PdfFile) error

	// ExistsPath 公开路径是否有对应记录
	ExistsPath(filePath string) (bool, error)

	// List 按上传时间倒序分页
	List(limit, offset int) ([]model.PdfFile, error)

	// UpdatePageCount 异步检查后补写页数
	UpdatePageCount(id uint, pageCount int) error
}

// GormAnnotationStore AnnotationStore 的 PostgreSQL 实现
type GormAnnotationStore struct {
	db *gorm.DB
}

func NewGormAnnotationStore(db *gorm.DB) *GormAnnotationStore {
	return &GormAnnotationStore{db: db}
}

func (s *GormAnnotationStore) InsertMany(annotations []model.PdfAnnotation) ([]model.PdfAnnotation, error) {
	if err := s.db.Create(&annotations).Error; err != nil {
		return nil, err
	}
	return annotations, nil
}

func (s *GormAnnotationStore) FindByProcessForm(process, formID int) ([]model.PdfAnnotation, error) {
	var annotations []model.PdfAnnotation
	err := s.db.
		Where("process = ? AND form_id = ?", process, formID).
		Order("id").
		Find(&annotations).Error
	if err != nil {
		return nil, err
	}
	return annotations, nil
}

// GormFileStore FileStore 的 PostgreSQL 实现
type GormFileStore struct {
	db *gorm.DB
}

func NewGormFileStore(db *gorm.DB) *GormFileStore {
	return &GormFileStore{db: db}
}

func (s *GormFileStore) Insert(file *model.PdfFile) error {
	return s.db.Create(file).Error
}

func (s *GormFileStore) ExistsPath(filePath string) (bool, error) {
	var count int64
	err := s.db.Model(&model.PdfFile{}).Where("file_path = ?", filePath).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormFileStore) List(limit, offset int) ([]model.PdfFile, error) {
	var files []model.PdfFile
	err := s.db.Limit(limit).Offset(offset).Order("uploaded_at DESC").Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *GormFileStore) UpdatePageCount(id uint, pageCount int) error {
	return s.db.Model(&model.PdfFile{}).Where("id = ?", id).
		Update("page_count", pageCount).Error
}
