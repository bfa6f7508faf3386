package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

// Channel 外部下发通道（短信/邮件/推送由外部系统实现）
// 本服务只负责把告警和联系人交出去
type Channel interface {
	Deliver(ctx context.Context, patientID string, contacts []models.EmergencyContact, alerts []models.Alert) error
}

// deliveryMessage 下发负载（各通道共用的 JSON 结构）
type deliveryMessage struct {
	PatientID string                    `json:"patientId"`
	Contacts  []models.EmergencyContact `json:"contacts"`
	Alerts    []models.Alert            `json:"alerts"`
}

// LogChannel 仅记录日志的通道（默认，用于没有接外部通道的部署）
type LogChannel struct {
	logger *zap.Logger
}

func NewLogChannel(logger *zap.Logger) *LogChannel {
	return &LogChannel{logger: logger}
}

func (c *LogChannel) Deliver(ctx context.Context, patientID string, contacts []models.EmergencyContact, alerts []models.Alert) error {
	c.logger.Info("Alert notification (log channel)",
		zap.String("patient_id", patientID),
		zap.Int("contact_count", len(contacts)),
		zap.Int("alert_count", len(alerts)),
	)
	return nil
}
