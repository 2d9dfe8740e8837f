package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateFormat 交易日期的统一格式（仅日期，无时间部分）
const DateFormat = "2006-01-02"

// Date 仅含日期的时间类型，对应数据库 DATE 列
// JSON 序列化为 "2006-01-02"，避免把时区/时刻混进交易日期
type Date struct {
	time.Time
}

// NewDate 根据年月日构造日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDate 解析 "2006-01-02" 格式的日期字符串
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// String 返回 "2006-01-02" 格式字符串
func (d Date) String() string {
	return d.Format(DateFormat)
}

// MarshalJSON 序列化为 "2006-01-02"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

// UnmarshalJSON 支持 "2006-01-02" 以及带时间部分的字符串
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	// 兼容客户端可能传来的完整时间戳，只取日期部分
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Value 写入数据库时转换为 DATE 字符串
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateFormat), nil
}

// Scan 从数据库读取 DATE 列（驱动可能返回 time.Time、[]byte 或 string）
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.Local)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("无法将 %T 转换为 Date", value)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
