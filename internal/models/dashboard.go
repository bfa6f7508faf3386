package models

import "time"

// DashboardView 家属看板视图
// 每次请求实时合成，不落盘；三个数据源都缺失时返回空视图而不是错误
type DashboardView struct {
	PatientID    string         `json:"patientId"`
	Patient      *PatientInfo   `json:"patient,omitempty"`
	Vitals       *VitalsReading `json:"vitals,omitempty"`
	ActiveAlerts []Alert        `json:"activeAlerts"` // 最近24小时内的告警
	LastUpdate   *time.Time     `json:"lastUpdate,omitempty"`
}
