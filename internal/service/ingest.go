package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/evaluator"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/validator"
)

// VitalsStore 当前读数存取接口（由 repository.VitalsRepository 实现）
type VitalsStore interface {
	PutReading(ctx context.Context, reading models.VitalsReading) error
	GetReading(ctx context.Context, patientID string) (models.VitalsReading, error)
}

// AlertsStore 告警存取接口（由 repository.AlertsRepository 实现）
type AlertsStore interface {
	AppendAlerts(ctx context.Context, patientID string, alerts []models.Alert) error
	GetAlerts(ctx context.Context, patientID string) ([]models.Alert, error)
}

// AlertDispatcher 通知调度接口（由 notifier.Dispatcher 实现）
type AlertDispatcher interface {
	Dispatch(ctx context.Context, patientID string, alerts []models.Alert) error
}

// IngestionService 读数接入流水线：校验 → 阈值评估 → 持久化 → 异步通知
type IngestionService struct {
	validator       *validator.Validator
	vitals          VitalsStore
	alerts          AlertsStore
	dispatcher      AlertDispatcher
	dispatchTimeout time.Duration
	logger          *zap.Logger
}

func NewIngestionService(
	v *validator.Validator,
	vitals VitalsStore,
	alerts AlertsStore,
	dispatcher AlertDispatcher,
	dispatchTimeout time.Duration,
	logger *zap.Logger,
) *IngestionService {
	return &IngestionService{
		validator:       v,
		vitals:          vitals,
		alerts:          alerts,
		dispatcher:      dispatcher,
		dispatchTimeout: dispatchTimeout,
		logger:          logger,
	}
}

// Submit 处理一次读数提交，返回入库的读数和本次评估产生的告警
// 读数和告警是两次独立写入，之间没有事务：第一次成功第二次失败会留下
// 没有对应告警的读数，此时把错误报给调用方由其重试。
// 通知下发在持久化完成后异步执行，调用方不等待，失败只记日志
func (s *IngestionService) Submit(ctx context.Context, patientID string, payload validator.Payload) (models.VitalsReading, []models.Alert, error) {
	reading, err := s.validator.Validate(patientID, payload)
	if err != nil {
		return models.VitalsReading{}, nil, err
	}

	alerts := evaluator.Evaluate(reading)

	if err := s.vitals.PutReading(ctx, reading); err != nil {
		return models.VitalsReading{}, nil, err
	}
	if err := s.alerts.AppendAlerts(ctx, patientID, alerts); err != nil {
		return models.VitalsReading{}, nil, err
	}

	if len(alerts) > 0 {
		go s.dispatchAsync(patientID, alerts)
	}

	s.logger.Info("Vitals reading ingested",
		zap.String("patient_id", patientID),
		zap.Int("alert_count", len(alerts)),
	)
	return reading, alerts, nil
}

// dispatchAsync 脱离请求上下文下发通知，带独立超时
func (s *IngestionService) dispatchAsync(patientID string, alerts []models.Alert) {
	ctx, cancel := context.WithTimeout(context.Background(), s.dispatchTimeout)
	defer cancel()

	if err := s.dispatcher.Dispatch(ctx, patientID, alerts); err != nil {
		s.logger.Error("Notification dispatch failed",
			zap.String("patient_id", patientID),
			zap.Int("alert_count", len(alerts)),
			zap.Error(err),
		)
	}
}
