package service

import "fmt"

// 错误码，直接进响应体
const (
	CodeMissingField = "missing_field"
	CodeInvalidField = "invalid_field"
	CodeInvalidBbox  = "invalid_bbox"
)

// ValidationError 首个不合法字段即返回，不聚合
type ValidationError struct {
	Code  string
	Field string
	Item  int // 批量提交中的下标
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("item %d: %s: %s", e.Item, e.Code, e.Field)
}

// 标注提交的必填字段，按校验顺序排列
var requiredAnnotationFields = []string{
	"process", "form_id", "field_id", "field_name",
	"bbox", "page", "scale", "field_type",
}

// ValidateAnnotation 校验单条原始标注：必填字段存在且非空值，
// bbox 必须是恰好 4 个元素的序列。纯函数，无副作用
func ValidateAnnotation(item map[string]any, idx int) *ValidationError {
	for _, k := range requiredAnnotationFields {
		v, ok := item[k]
		if !ok || v == nil {
			return &ValidationError{Code: CodeMissingField, Field: k, Item: idx}
		}
	}

	bbox, ok := item["bbox"].([]any)
	if !ok || len(bbox) != 4 {
		return &ValidationError{Code: CodeInvalidBbox, Field: "bbox", Item: idx}
	}

	return nil
}
