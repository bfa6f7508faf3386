package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

func testAlert(patientID, message string) models.Alert {
	return models.Alert{
		AlertID:   uuid.New().String(),
		PatientID: patientID,
		Severity:  models.SeverityCritical,
		Message:   message,
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAlertsRepository_AppendGet_InsertionOrder(t *testing.T) {
	_, _, alertsRepo, _ := setupTestRepos(t)
	ctx := context.Background()

	a1 := testAlert("patient-1", "first")
	a2 := testAlert("patient-1", "second")
	a3 := testAlert("patient-1", "third")

	require.NoError(t, alertsRepo.AppendAlerts(ctx, "patient-1", []models.Alert{a1, a2}))
	require.NoError(t, alertsRepo.AppendAlerts(ctx, "patient-1", []models.Alert{a3}))

	got, err := alertsRepo.GetAlerts(ctx, "patient-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Message)
	assert.Equal(t, "second", got[1].Message)
	assert.Equal(t, "third", got[2].Message)
}

func TestAlertsRepository_AppendEmpty_Noop(t *testing.T) {
	mr, _, alertsRepo, _ := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, alertsRepo.AppendAlerts(ctx, "patient-1", nil))
	require.NoError(t, alertsRepo.AppendAlerts(ctx, "patient-1", []models.Alert{}))

	assert.False(t, mr.Exists("patient_alerts_patient-1"))
}

func TestAlertsRepository_GetAlerts_NoHistoryIsEmpty(t *testing.T) {
	_, _, alertsRepo, _ := setupTestRepos(t)

	got, err := alertsRepo.GetAlerts(context.Background(), "patient-unknown")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAlertsRepository_ConcurrentAppend_NoLostAlerts(t *testing.T) {
	_, _, alertsRepo, _ := setupTestRepos(t)
	ctx := context.Background()

	// 两个并发调用方对同一患者追加告警，双方的条目都不能丢
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = alertsRepo.AppendAlerts(ctx, "patient-1", []models.Alert{testAlert("patient-1", "concurrent")})
		}()
	}
	wg.Wait()

	got, err := alertsRepo.GetAlerts(ctx, "patient-1")
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestAlertsRepository_StorageDown_ReportsUnavailable(t *testing.T) {
	mr, _, alertsRepo, _ := setupTestRepos(t)
	ctx := context.Background()

	mr.Close()

	err := alertsRepo.AppendAlerts(ctx, "patient-1", []models.Alert{testAlert("patient-1", "x")})
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	_, err = alertsRepo.GetAlerts(ctx, "patient-1")
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}
