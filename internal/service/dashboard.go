package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

// 看板只显示最近24小时内的告警
const activeAlertWindow = 24 * time.Hour

// PatientSource 患者档案查询接口（由 repository.PatientRepository 实现）
type PatientSource interface {
	GetInfo(ctx context.Context, patientID string) (models.PatientInfo, error)
}

// DashboardService 家属看板聚合
// 纯读组合，不改任何底层数据；单个子资源缺失降级为字段缺失，
// 只有持久化网关本身不可用才整体失败
type DashboardService struct {
	patients PatientSource
	vitals   VitalsStore
	alerts   AlertsStore
	now      func() time.Time
	logger   *zap.Logger
}

func NewDashboardService(patients PatientSource, vitals VitalsStore, alerts AlertsStore, now func() time.Time, logger *zap.Logger) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		patients: patients,
		vitals:   vitals,
		alerts:   alerts,
		now:      now,
		logger:   logger,
	}
}

// GetDashboard 合成患者当前状态视图
// 三个数据源都缺失时返回全空视图，不是错误
func (s *DashboardService) GetDashboard(ctx context.Context, patientID string) (models.DashboardView, error) {
	view := models.DashboardView{
		PatientID:    patientID,
		ActiveAlerts: []models.Alert{},
	}

	info, err := s.patients.GetInfo(ctx, patientID)
	switch {
	case err == nil:
		view.Patient = &info
	case errors.Is(err, apperrors.ErrNotFound):
		// 档案缺失允许
	default:
		return models.DashboardView{}, err
	}

	reading, err := s.vitals.GetReading(ctx, patientID)
	switch {
	case err == nil:
		view.Vitals = &reading
		ts := reading.Timestamp
		view.LastUpdate = &ts
	case errors.Is(err, apperrors.ErrNotFound):
		// 还没有读数允许
	default:
		return models.DashboardView{}, err
	}

	alerts, err := s.alerts.GetAlerts(ctx, patientID)
	if err != nil {
		return models.DashboardView{}, err
	}

	// 时间窗每次请求重算，不落盘；严格小于24小时才算活跃
	now := s.now()
	for _, a := range alerts {
		if now.Sub(a.Timestamp) < activeAlertWindow {
			view.ActiveAlerts = append(view.ActiveAlerts, a)
		}
	}

	return view, nil
}
