package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/store"
)

func setupTestRepos(t *testing.T) (*miniredis.Miniredis, *VitalsRepository, *AlertsRepository, *PatientRepository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	kv := store.NewRedisKV(client, 500)

	logger := zap.NewNop()
	timeout := 2 * time.Second

	return mr,
		NewVitalsRepository(kv, timeout, logger),
		NewAlertsRepository(kv, timeout, logger),
		NewPatientRepository(kv, timeout, logger)
}

func testReading(patientID string) models.VitalsReading {
	return models.VitalsReading{
		PatientID:        patientID,
		HeartRate:        72,
		BloodPressure:    models.BloodPressure{Systolic: 120, Diastolic: 80},
		Temperature:      98.6,
		OxygenSaturation: 98,
		RespiratoryRate:  16,
		Timestamp:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestVitalsRepository_PutGet_RoundTrip(t *testing.T) {
	_, vitalsRepo, _, _ := setupTestRepos(t)
	ctx := context.Background()

	reading := testReading("patient-1")
	require.NoError(t, vitalsRepo.PutReading(ctx, reading))

	got, err := vitalsRepo.GetReading(ctx, "patient-1")
	require.NoError(t, err)
	assert.Equal(t, reading, got)
}

func TestVitalsRepository_GetReading_NotFound(t *testing.T) {
	_, vitalsRepo, _, _ := setupTestRepos(t)

	_, err := vitalsRepo.GetReading(context.Background(), "patient-unknown")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVitalsRepository_PutReading_LastWriteWins(t *testing.T) {
	_, vitalsRepo, _, _ := setupTestRepos(t)
	ctx := context.Background()

	first := testReading("patient-1")
	second := testReading("patient-1")
	second.HeartRate = 90
	second.Timestamp = first.Timestamp.Add(time.Minute)

	require.NoError(t, vitalsRepo.PutReading(ctx, first))
	require.NoError(t, vitalsRepo.PutReading(ctx, second))

	got, err := vitalsRepo.GetReading(ctx, "patient-1")
	require.NoError(t, err)
	assert.Equal(t, 90.0, got.HeartRate)
}

func TestVitalsRepository_KeyConvention(t *testing.T) {
	mr, vitalsRepo, _, _ := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, vitalsRepo.PutReading(ctx, testReading("patient-1")))

	// 网关 key 遵循 patient_vitals_{id} 约定
	assert.True(t, mr.Exists("patient_vitals_patient-1"))
}

func TestVitalsRepository_StorageDown_ReportsUnavailable(t *testing.T) {
	mr, vitalsRepo, _, _ := setupTestRepos(t)
	ctx := context.Background()

	mr.Close()

	err := vitalsRepo.PutReading(ctx, testReading("patient-1"))
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	_, err = vitalsRepo.GetReading(ctx, "patient-1")
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}
