package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/store"
)

// AlertsRepository 告警仓库（append-only 列表）
// 与 PutReading 之间没有跨 key 事务：两次写之间失败会留下"有读数没告警"
// 的状态，这是底层 KV 的固有限制，调用方必须把写失败报给客户端而不是吞掉
type AlertsRepository struct {
	kv      store.KV
	timeout time.Duration
	logger  *zap.Logger
}

func NewAlertsRepository(kv store.KV, timeout time.Duration, logger *zap.Logger) *AlertsRepository {
	return &AlertsRepository{kv: kv, timeout: timeout, logger: logger}
}

// AppendAlerts 追加告警；空集合直接返回
// 整批告警走一次原子追加，并发提交同一患者不会互相覆盖
func (r *AlertsRepository) AppendAlerts(ctx context.Context, patientID string, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	values := make([]string, 0, len(alerts))
	for _, a := range alerts {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("marshal alert: %w", err)
		}
		values = append(values, string(data))
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.kv.Append(ctx, alertsKey(patientID), values...); err != nil {
		r.logger.Error("Failed to append alerts",
			zap.String("patient_id", patientID),
			zap.Int("count", len(alerts)),
			zap.Error(err),
		)
		return fmt.Errorf("append alerts: %v: %w", err, apperrors.ErrStorageUnavailable)
	}
	return nil
}

// GetAlerts 读取患者全部已累积告警（插入顺序，不做时间窗过滤）
// 从未有过告警时返回空列表，不是错误
func (r *AlertsRepository) GetAlerts(ctx context.Context, patientID string) ([]models.Alert, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.kv.List(ctx, alertsKey(patientID))
	if err != nil {
		return nil, fmt.Errorf("get alerts: %v: %w", err, apperrors.ErrStorageUnavailable)
	}

	alerts := make([]models.Alert, 0, len(raw))
	for _, item := range raw {
		var a models.Alert
		if err := json.Unmarshal([]byte(item), &a); err != nil {
			// 坏条目跳过，不让单条脏数据拖垮整个列表
			r.logger.Warn("Skipping undecodable alert entry",
				zap.String("patient_id", patientID),
				zap.Error(err),
			)
			continue
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}
