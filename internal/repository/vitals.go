package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/store"
)

// VitalsRepository 当前读数仓库
// 每个患者一个 key，整体覆盖写（last-write-wins），无历史
type VitalsRepository struct {
	kv      store.KV
	timeout time.Duration
	logger  *zap.Logger
}

func NewVitalsRepository(kv store.KV, timeout time.Duration, logger *zap.Logger) *VitalsRepository {
	return &VitalsRepository{kv: kv, timeout: timeout, logger: logger}
}

// PutReading 覆盖写入患者当前读数；要么整条写成功，要么报 StorageUnavailable
func (r *VitalsRepository) PutReading(ctx context.Context, reading models.VitalsReading) error {
	data, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.kv.Set(ctx, vitalsKey(reading.PatientID), string(data), 0); err != nil {
		r.logger.Error("Failed to store vitals reading",
			zap.String("patient_id", reading.PatientID),
			zap.Error(err),
		)
		return fmt.Errorf("put reading: %v: %w", err, apperrors.ErrStorageUnavailable)
	}
	return nil
}

// GetReading 读取患者当前读数；没有历史数据返回 ErrNotFound，不算存储故障
func (r *VitalsRepository) GetReading(ctx context.Context, patientID string) (models.VitalsReading, error) {
	var reading models.VitalsReading

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.kv.Get(ctx, vitalsKey(patientID))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return reading, fmt.Errorf("vitals for patient %s: %w", patientID, apperrors.ErrNotFound)
		}
		return reading, fmt.Errorf("get reading: %v: %w", err, apperrors.ErrStorageUnavailable)
	}

	if err := json.Unmarshal([]byte(raw), &reading); err != nil {
		return reading, fmt.Errorf("unmarshal reading: %v: %w", err, apperrors.ErrStorageUnavailable)
	}
	return reading, nil
}
