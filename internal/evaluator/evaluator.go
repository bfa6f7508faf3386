package evaluator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

// 固定临床阈值（严格不等式，边界值不触发）
const (
	heartRateLow  = 50.0
	heartRateHigh = 120.0
	oxygenLow     = 95.0
	tempHigh      = 100.4
	tempLow       = 96.0
)

// Evaluate 对已校验的读数做阈值评估，返回按规则顺序排列的告警
// 规则相互独立，一条读数可以同时触发多条告警；
// 血压和呼吸频率只记录不评估（沿用既有行为，不要私自加规则）
func Evaluate(reading models.VitalsReading) []models.Alert {
	var alerts []models.Alert

	// 规则1：心率
	if reading.HeartRate < heartRateLow || reading.HeartRate > heartRateHigh {
		alerts = append(alerts, newAlert(reading, models.SeverityCritical,
			fmt.Sprintf("Heart rate out of range: %.0f bpm", reading.HeartRate)))
	}

	// 规则2：血氧饱和度
	if reading.OxygenSaturation < oxygenLow {
		alerts = append(alerts, newAlert(reading, models.SeverityCritical,
			fmt.Sprintf("Low oxygen saturation: %.1f%%", reading.OxygenSaturation)))
	}

	// 规则3：体温
	if reading.Temperature > tempHigh || reading.Temperature < tempLow {
		alerts = append(alerts, newAlert(reading, models.SeverityWarning,
			fmt.Sprintf("Abnormal temperature: %.1f F", reading.Temperature)))
	}

	return alerts
}

func newAlert(reading models.VitalsReading, severity, message string) models.Alert {
	return models.Alert{
		AlertID:   uuid.New().String(),
		PatientID: reading.PatientID,
		Severity:  severity,
		Message:   message,
		Timestamp: reading.Timestamp,
	}
}
