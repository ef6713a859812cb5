package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"pdf-annotator-backend/internal/util"
)

// FieldMetadata 字段标注的扩展信息。已知键为强类型，
// 未知键原样保留在 Extra 中，留给后续投影规则使用
type FieldMetadata struct {
	MaxLength *int
	Required  *bool
	Extra     map[string]any
}

// MetadataFromRaw 从原始 map 构造，已知键做类型收敛，其余透传
func MetadataFromRaw(raw map[string]any) FieldMetadata {
	var meta FieldMetadata
	for k, v := range raw {
		switch k {
		case "max_length":
			if n, ok := util.ToInt(v); ok {
				meta.MaxLength = &n
				continue
			}
		case "required":
			b := util.Truthy(v)
			meta.Required = &b
			continue
		}
		if meta.Extra == nil {
			meta.Extra = make(map[string]any)
		}
		meta.Extra[k] = v
	}
	return meta
}

func (m FieldMetadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+2)
	for k, v := range m.Extra {
		out[k] = v
	}
	if m.MaxLength != nil {
		out["max_length"] = *m.MaxLength
	}
	if m.Required != nil {
		out["required"] = *m.Required
	}
	return json.Marshal(out)
}

func (m *FieldMetadata) UnmarshalJSON(data []byte) error {
	raw := make(map[string]any)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = MetadataFromRaw(raw)
	return nil
}

// Value 序列化为 jsonb
func (m FieldMetadata) Value() (driver.Value, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 从 jsonb 反序列化
func (m *FieldMetadata) Scan(value any) error {
	if value == nil {
		*m = FieldMetadata{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return m.UnmarshalJSON(v)
	case string:
		return m.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into FieldMetadata", value)
	}
}
