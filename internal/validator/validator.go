package validator

import (
	"fmt"
	"time"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

// Payload 客户端提交的读数
// 数值字段用指针区分"缺失"和"零值"；客户端传的 timestamp/patientId 一律忽略
type Payload struct {
	HeartRate        *float64         `json:"heartRate"`
	BloodPressure    *PayloadPressure `json:"bloodPressure"`
	Temperature      *float64         `json:"temperature"`
	OxygenSaturation *float64         `json:"oxygenSaturation"`
	RespiratoryRate  *float64         `json:"respiratoryRate"`
}

type PayloadPressure struct {
	Systolic  *float64 `json:"systolic"`
	Diastolic *float64 `json:"diastolic"`
}

// 生理边界（保守值）：超出即认为数据不可能来自活人测量，直接拒收，不产生告警
const (
	maxHeartRate       = 300.0
	maxPressure        = 400.0
	minTemperature     = 70.0 // 华氏度
	maxTemperature     = 115.0
	maxRespiratoryRate = 80.0
)

// Validator 读数校验器
type Validator struct {
	now func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Validate 校验提交的读数并归一化
// 成功时由服务端盖时间戳、绑定路径里的 patientID，覆盖客户端提交的同名字段
func (v *Validator) Validate(patientID string, p Payload) (models.VitalsReading, error) {
	var zero models.VitalsReading

	if p.HeartRate == nil {
		return zero, fmt.Errorf("heartRate is required: %w", apperrors.ErrMalformedInput)
	}
	if p.BloodPressure == nil || p.BloodPressure.Systolic == nil || p.BloodPressure.Diastolic == nil {
		return zero, fmt.Errorf("bloodPressure.systolic and bloodPressure.diastolic are required: %w", apperrors.ErrMalformedInput)
	}
	if p.Temperature == nil {
		return zero, fmt.Errorf("temperature is required: %w", apperrors.ErrMalformedInput)
	}
	if p.OxygenSaturation == nil {
		return zero, fmt.Errorf("oxygenSaturation is required: %w", apperrors.ErrMalformedInput)
	}
	if p.RespiratoryRate == nil {
		return zero, fmt.Errorf("respiratoryRate is required: %w", apperrors.ErrMalformedInput)
	}

	hr := *p.HeartRate
	sys := *p.BloodPressure.Systolic
	dia := *p.BloodPressure.Diastolic
	temp := *p.Temperature
	spo2 := *p.OxygenSaturation
	rr := *p.RespiratoryRate

	if hr <= 0 || hr > maxHeartRate {
		return zero, fmt.Errorf("heartRate %.1f: %w", hr, apperrors.ErrOutOfDomain)
	}
	if sys <= 0 || sys > maxPressure || dia <= 0 || dia > maxPressure {
		return zero, fmt.Errorf("bloodPressure %.1f/%.1f: %w", sys, dia, apperrors.ErrOutOfDomain)
	}
	if temp < minTemperature || temp > maxTemperature {
		return zero, fmt.Errorf("temperature %.1f: %w", temp, apperrors.ErrOutOfDomain)
	}
	if spo2 < 0 || spo2 > 100 {
		return zero, fmt.Errorf("oxygenSaturation %.1f: %w", spo2, apperrors.ErrOutOfDomain)
	}
	if rr <= 0 || rr > maxRespiratoryRate {
		return zero, fmt.Errorf("respiratoryRate %.1f: %w", rr, apperrors.ErrOutOfDomain)
	}

	return models.VitalsReading{
		PatientID:        patientID,
		HeartRate:        hr,
		BloodPressure:    models.BloodPressure{Systolic: sys, Diastolic: dia},
		Temperature:      temp,
		OxygenSaturation: spo2,
		RespiratoryRate:  rr,
		Timestamp:        v.now(),
	}, nil
}
