package kafka

import (
	"strconv"
)

// Canal 事件类型
const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)

// CanalMessage 定义了 Canal 推送到 Kafka 的 JSON 数据结构
type CanalMessage struct {
	ID       int64    `json:"id"`
	Database string   `json:"database"`
	Table    string   `json:"table"`
	PKNames  []string `json:"pkNames"`
	IsDDL    bool     `json:"isDdl"`
	Type     string   `json:"type"`
	ES       int64    `json:"es"`
	TS       int64    `json:"ts"`
	SQL      string   `json:"sql"`

	// Data 存储变更后的数据
	Data []map[string]interface{} `json:"data"`

	// Old 存储变更前的数据
	Old []map[string]interface{} `json:"old"`

	// 字段类型元数据
	SqlType   map[string]int    `json:"sqlType"`   // JDBC 类型 ID
	MysqlType map[string]string `json:"mysqlType"` // MySQL 类型描述
}

// StrToUint64 Canal 字段值统一按字符串下发，容错数字类型
func StrToUint64(v interface{}) uint64 {
	switch value := v.(type) {
	case string:
		n, _ := strconv.ParseUint(value, 10, 64)
		return n
	case float64:
		return uint64(value)
	default:
		return 0
	}
}

// StrToBool MySQL tinyint 经 Canal 下发为 "0"/"1"
func StrToBool(v interface{}) bool {
	switch value := v.(type) {
	case string:
		return value == "1" || value == "true"
	case float64:
		return value != 0
	case bool:
		return value
	default:
		return false
	}
}
