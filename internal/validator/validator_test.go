package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
)

func f(v float64) *float64 { return &v }

func fullPayload() Payload {
	return Payload{
		HeartRate:        f(72),
		BloodPressure:    &PayloadPressure{Systolic: f(120), Diastolic: f(80)},
		Temperature:      f(98.6),
		OxygenSaturation: f(98),
		RespiratoryRate:  f(16),
	}
}

func TestValidate_Success_StampsServerFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := NewValidator(func() time.Time { return now })

	reading, err := v.Validate("patient-1", fullPayload())
	require.NoError(t, err)

	assert.Equal(t, "patient-1", reading.PatientID)
	assert.Equal(t, now, reading.Timestamp)
	assert.Equal(t, 72.0, reading.HeartRate)
	assert.Equal(t, 120.0, reading.BloodPressure.Systolic)
	assert.Equal(t, 80.0, reading.BloodPressure.Diastolic)
	assert.Equal(t, 98.6, reading.Temperature)
	assert.Equal(t, 98.0, reading.OxygenSaturation)
	assert.Equal(t, 16.0, reading.RespiratoryRate)
}

func TestValidate_MissingFields(t *testing.T) {
	v := NewValidator(nil)

	cases := []struct {
		name   string
		mutate func(*Payload)
	}{
		{"heartRate", func(p *Payload) { p.HeartRate = nil }},
		{"bloodPressure", func(p *Payload) { p.BloodPressure = nil }},
		{"bloodPressure.systolic", func(p *Payload) { p.BloodPressure.Systolic = nil }},
		{"bloodPressure.diastolic", func(p *Payload) { p.BloodPressure.Diastolic = nil }},
		{"temperature", func(p *Payload) { p.Temperature = nil }},
		{"oxygenSaturation", func(p *Payload) { p.OxygenSaturation = nil }},
		{"respiratoryRate", func(p *Payload) { p.RespiratoryRate = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := fullPayload()
			tc.mutate(&p)
			_, err := v.Validate("patient-1", p)
			assert.ErrorIs(t, err, apperrors.ErrMalformedInput)
		})
	}
}

func TestValidate_OutOfDomain(t *testing.T) {
	v := NewValidator(nil)

	cases := []struct {
		name   string
		mutate func(*Payload)
	}{
		{"negative heart rate", func(p *Payload) { p.HeartRate = f(-10) }},
		{"heart rate above physical max", func(p *Payload) { p.HeartRate = f(301) }},
		{"zero systolic", func(p *Payload) { p.BloodPressure.Systolic = f(0) }},
		{"negative diastolic", func(p *Payload) { p.BloodPressure.Diastolic = f(-5) }},
		{"temperature below survivable", func(p *Payload) { p.Temperature = f(60) }},
		{"temperature above survivable", func(p *Payload) { p.Temperature = f(120) }},
		{"negative oxygen saturation", func(p *Payload) { p.OxygenSaturation = f(-1) }},
		{"oxygen saturation above 100", func(p *Payload) { p.OxygenSaturation = f(101) }},
		{"zero respiratory rate", func(p *Payload) { p.RespiratoryRate = f(0) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := fullPayload()
			tc.mutate(&p)
			_, err := v.Validate("patient-1", p)
			assert.ErrorIs(t, err, apperrors.ErrOutOfDomain)
		})
	}
}

func TestValidate_AbnormalButPossibleValuesAccepted(t *testing.T) {
	// 校验只拒绝生理上不可能的值；会触发告警的异常值照常放行
	v := NewValidator(nil)
	p := fullPayload()
	p.HeartRate = f(40)
	p.OxygenSaturation = f(85)
	p.Temperature = f(103)

	_, err := v.Validate("patient-1", p)
	assert.NoError(t, err)
}
