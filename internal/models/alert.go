package models

import "time"

// 告警级别
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Alert 阈值告警事件
// 按患者追加存储（append-only），只增不改，超过保留上限后由存储层裁剪
type Alert struct {
	AlertID   string    `json:"alertId"`
	PatientID string    `json:"patientId"`
	Severity  string    `json:"severity"` // warning / critical
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"` // 触发读数的入库时间
}
