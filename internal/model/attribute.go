package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Attribute one stored key/value pair // 一个存储的键值对
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// AttributeList is stored as a JSON text column. Order is preserved and
// duplicate keys are allowed.
// AttributeList 以 JSON 文本列存储，保持顺序且允许重复键。
type AttributeList []Attribute

// Value implements driver.Valuer
func (a AttributeList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (a *AttributeList) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("model: unsupported attribute scan type %T", value)
	}
	if len(data) == 0 {
		*a = nil
		return nil
	}
	return json.Unmarshal(data, a)
}
