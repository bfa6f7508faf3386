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

// PatientRepository 患者档案/联系人仓库
// 数据由外部患者管理功能写入，本服务只读
type PatientRepository struct {
	kv      store.KV
	timeout time.Duration
	logger  *zap.Logger
}

func NewPatientRepository(kv store.KV, timeout time.Duration, logger *zap.Logger) *PatientRepository {
	return &PatientRepository{kv: kv, timeout: timeout, logger: logger}
}

// GetInfo 读取患者档案；档案缺失返回 ErrNotFound
func (r *PatientRepository) GetInfo(ctx context.Context, patientID string) (models.PatientInfo, error) {
	var info models.PatientInfo

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.kv.Get(ctx, infoKey(patientID))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return info, fmt.Errorf("info for patient %s: %w", patientID, apperrors.ErrNotFound)
		}
		return info, fmt.Errorf("get patient info: %v: %w", err, apperrors.ErrStorageUnavailable)
	}

	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return info, fmt.Errorf("unmarshal patient info: %v: %w", err, apperrors.ErrStorageUnavailable)
	}
	return info, nil
}

// GetContacts 读取紧急联系人列表；没有登记过返回空列表，不是错误
func (r *PatientRepository) GetContacts(ctx context.Context, patientID string) ([]models.EmergencyContact, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.kv.Get(ctx, contactsKey(patientID))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contacts: %v: %w", err, apperrors.ErrStorageUnavailable)
	}

	var contacts []models.EmergencyContact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		return nil, fmt.Errorf("unmarshal contacts: %v: %w", err, apperrors.ErrStorageUnavailable)
	}
	return contacts, nil
}
