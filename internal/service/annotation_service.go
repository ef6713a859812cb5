package service

import (
	"time"

	"github.com/lib/pq"

	"pdf-annotator-backend/internal/model"
	"pdf-annotator-backend/internal/util"
)

// AnnotationStore 文档式存取：批量写入、按 (process, form_id) 读取
type AnnotationStore interface {
	// InsertMany 一次批量写入，返回带存储层主键的记录，顺序与入参一致
	InsertMany(annotations []model.PdfAnnotation) ([]model.PdfAnnotation, error)

	// FindByProcessForm 按 (process, form_id) 读取全部匹配记录，按插入顺序返回
	FindByProcessForm(process, formID int) ([]model.PdfAnnotation, error)
}

type AnnotationService struct {
	store AnnotationStore
	now   func() time.Time
}

func NewAnnotationService(store AnnotationStore) *AnnotationService {
	return &AnnotationService{store: store, now: time.Now}
}

// BulkIngest 批量落库标注。任何一条校验失败则整批拒绝，不产生部分写入；
// 存储层失败原样上抛，由调用方决定重试
func (s *AnnotationService) BulkIngest(items []map[string]any) ([]model.PdfAnnotation, error) {
	for idx, item := range items {
		if verr := ValidateAnnotation(item, idx); verr != nil {
			return nil, verr
		}
	}

	createdAt := s.now()
	annotations := make([]model.PdfAnnotation, 0, len(items))
	for idx, item := range items {
		record, verr := coerceAnnotation(item, idx)
		if verr != nil {
			return nil, verr
		}
		record.CreatedAt = createdAt
		annotations = append(annotations, record)
	}

	if len(annotations) == 0 {
		return annotations, nil
	}

	return s.store.InsertMany(annotations)
}

// coerceAnnotation 把已通过校验的原始 map 收敛为强类型记录，
// 收敛失败视同校验失败
func coerceAnnotation(item map[string]any, idx int) (model.PdfAnnotation, *ValidationError) {
	var record model.PdfAnnotation

	intFields := []struct {
		key string
		dst *int
	}{
		{"process", &record.Process},
		{"form_id", &record.FormID},
		{"field_id", &record.FieldID},
		{"page", &record.Page},
	}
	for _, f := range intFields {
		n, ok := util.ToInt(item[f.key])
		if !ok {
			return record, &ValidationError{Code: CodeInvalidField, Field: f.key, Item: idx}
		}
		*f.dst = n
	}

	scale, ok := util.ToFloat(item["scale"])
	if !ok {
		return record, &ValidationError{Code: CodeInvalidField, Field: "scale", Item: idx}
	}
	record.Scale = scale

	record.FieldName = util.ToString(item["field_name"])
	if record.FieldName == "" {
		return record, &ValidationError{Code: CodeInvalidField, Field: "field_name", Item: idx}
	}
	record.FieldType = util.ToString(item["field_type"])

	if header, present := item["field_header"]; present && header != nil {
		record.FieldHeader = util.ToString(header)
	}

	rawBbox := item["bbox"].([]any) // 校验阶段已保证
	bbox := make(pq.Float64Array, len(rawBbox))
	for i, v := range rawBbox {
		f, ok := util.ToFloat(v)
		if !ok {
			return record, &ValidationError{Code: CodeInvalidBbox, Field: "bbox", Item: idx}
		}
		bbox[i] = f
	}
	record.Bbox = bbox

	if rawMeta, present := item["metadata"]; present && rawMeta != nil {
		metaMap, ok := rawMeta.(map[string]any)
		if !ok {
			return record, &ValidationError{Code: CodeInvalidField, Field: "metadata", Item: idx}
		}
		record.Metadata = model.MetadataFromRaw(metaMap)
	}

	return record, nil
}
