package models

import "time"

// BloodPressure 血压（收缩压/舒张压）
type BloodPressure struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
}

// VitalsReading 一次生命体征测量快照
// 每个患者只保留最新一条（last-write-wins），历史趋势不在本服务范围内
type VitalsReading struct {
	PatientID        string        `json:"patientId"`
	HeartRate        float64       `json:"heartRate"`        // 次/分钟
	BloodPressure    BloodPressure `json:"bloodPressure"`    // mmHg
	Temperature      float64       `json:"temperature"`      // 华氏度
	OxygenSaturation float64       `json:"oxygenSaturation"` // 百分比 0-100
	RespiratoryRate  float64       `json:"respiratoryRate"`  // 次/分钟
	Timestamp        time.Time     `json:"timestamp"`        // 服务端写入时间，不信任客户端
}
