// Package timex provides a time type with a unified JSON layout
// Package timex 提供具有统一 JSON 格式的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Layout is the serialization layout used across API responses
// Layout 是 API 响应中使用的序列化格式
const Layout = "2006-01-02 15:04:05"

// Time wraps time.Time for gorm datetime columns and JSON output
// Time 包装 time.Time，用于 gorm datetime 列和 JSON 输出
type Time time.Time

// Now returns the current time truncated to second precision
// Now 返回截断到秒精度的当前时间
func Now() Time {
	return Time(time.Now().Truncate(time.Second))
}

func (t Time) String() string {
	return time.Time(t).Format(Layout)
}

// Time returns the wrapped time.Time
func (t Time) Time() time.Time {
	return time.Time(t)
}

// IsZero reports whether the wrapped time is the zero instant
func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

// MarshalJSON implements json.Marshaler using Layout
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting Layout or RFC3339
// UnmarshalJSON 实现 json.Unmarshaler，接受 Layout 或 RFC3339 格式
func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("timex: cannot parse %q: %w", s, err)
		}
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer for database writes
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan implements sql.Scanner for database reads
// Scan 实现 sql.Scanner，用于数据库读取
func (t *Time) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = Time(time.Time{})
	case time.Time:
		*t = Time(v)
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("timex: unsupported scan type %T", value)
	}
	return nil
}

func (t *Time) scanString(s string) error {
	if s == "" {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("timex: cannot scan %q: %w", s, err)
		}
	}
	*t = Time(parsed)
	return nil
}
