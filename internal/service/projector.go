package service

import (
	"strconv"
	"strings"

	"pdf-annotator-backend/internal/model"
)

// BboxCorners 角点命名沿用下游动态表格的键序 x1,x2,y1,y2，不是几何序
type BboxCorners struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
	Y1 float64 `json:"y1"`
	Y2 float64 `json:"y2"`
}

type AnnotationSummary struct {
	Bbox        BboxCorners `json:"bbox"`
	Page        int         `json:"page"`
	FieldID     int         `json:"field_id"`
	FieldName   string      `json:"field_name"`
	FieldHeader string      `json:"field_header"`
	Process     int         `json:"process"`
	FormID      int         `json:"form_id"`
}

// FieldDescriptor 动态表格消费的字段描述。
// relation_* / validation_* 等是预留给关系字段特性的占位，恒为空
type FieldDescriptor struct {
	ID               uint              `json:"id"`
	Annotation       AnnotationSummary `json:"annotation"`
	TableName        string            `json:"table_name"`
	FieldName        string            `json:"field_name"`
	FieldType        string            `json:"field_type"`
	MaxLength        int               `json:"max_length"`
	RelationType     string            `json:"relation_type"`
	RelatedTableName string            `json:"related_table_name"`
	RelatedField     string            `json:"related_field"`
	Group            int               `json:"group"`
	FieldHeader      string            `json:"field_header"`
	Placeholder      string            `json:"placeholder"`
	Required         bool              `json:"required"`
	FieldOptions     string            `json:"field_options"`
	Types            string            `json:"types"`
	ValidationCode   *string           `json:"validation_code"`
	RequiredIf       *string           `json:"required_if"`
	RegexPtn         *string           `json:"regex_ptn"`
	FormID           int               `json:"form_id"`
	ProcessID        string            `json:"process_id"`
}

// ProjectFields 读出 (process, form_id) 下的全部标注并逐条映射为字段描述。
// 没有匹配记录返回空序列，不算错误
func (s *AnnotationService) ProjectFields(processID, formID int) ([]FieldDescriptor, error) {
	annotations, err := s.store.FindByProcessForm(processID, formID)
	if err != nil {
		return nil, err
	}

	descriptors := make([]FieldDescriptor, 0, len(annotations))
	for _, a := range annotations {
		descriptors = append(descriptors, projectField(a))
	}
	return descriptors, nil
}

func projectField(a model.PdfAnnotation) FieldDescriptor {
	placeholder := a.FieldHeader
	if placeholder == "" {
		placeholder = a.FieldName
	}

	maxLength := 0
	if a.Metadata.MaxLength != nil {
		maxLength = *a.Metadata.MaxLength
	}
	required := a.Metadata.Required != nil && *a.Metadata.Required

	return FieldDescriptor{
		ID: a.ID,
		Annotation: AnnotationSummary{
			Bbox: BboxCorners{
				X1: a.Bbox[0],
				X2: a.Bbox[2],
				Y1: a.Bbox[1],
				Y2: a.Bbox[3],
			},
			Page:        a.Page,
			FieldID:     a.FieldID,
			FieldName:   a.FieldName,
			FieldHeader: a.FieldHeader,
			Process:     a.Process,
			FormID:      a.FormID,
		},
		TableName:    "table_" + strconv.Itoa(a.Process) + "_qc",
		FieldName:    a.FieldName,
		FieldType:    a.FieldType,
		MaxLength:    maxLength,
		Group:        1,
		FieldHeader:  a.FieldHeader,
		Placeholder:  placeholder,
		Required:     required,
		FieldOptions: "[]",
		Types:        inferFieldType(a.FieldType),
		FormID:       a.FormID,
		ProcessID:    strconv.Itoa(a.Process),
	}
}

// inferFieldType 唯一的类型推断规则：类型标签里带 date 就当日期，其余一律文本
func inferFieldType(fieldType string) string {
	if strings.Contains(strings.ToLower(fieldType), "date") {
		return "date"
	}
	return "text"
}
