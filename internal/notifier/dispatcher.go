package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

// ContactsSource 联系人查询接口（由 repository.PatientRepository 实现）
type ContactsSource interface {
	GetContacts(ctx context.Context, patientID string) ([]models.EmergencyContact, error)
}

// Dispatcher 通知调度器
// 在读数和告警已持久化之后被调用；任何失败只记日志，
// 绝不回滚已入库的数据，也不影响接口响应
type Dispatcher struct {
	contacts ContactsSource
	channel  Channel
	logger   *zap.Logger
}

func NewDispatcher(contacts ContactsSource, channel Channel, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{contacts: contacts, channel: channel, logger: logger}
}

// Dispatch 查联系人并移交给下发通道
// 没有登记联系人或没有开启通知的联系人时正常结束——通知触达不了
// 不等于告警失败
func (d *Dispatcher) Dispatch(ctx context.Context, patientID string, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	contacts, err := d.contacts.GetContacts(ctx, patientID)
	if err != nil {
		return fmt.Errorf("lookup contacts: %v: %w", err, apperrors.ErrDispatchFailed)
	}

	enabled := make([]models.EmergencyContact, 0, len(contacts))
	for _, c := range contacts {
		if c.NotificationEnabled {
			enabled = append(enabled, c)
		}
	}
	if len(enabled) == 0 {
		d.logger.Info("No notifiable contacts for patient, skipping delivery",
			zap.String("patient_id", patientID),
			zap.Int("alert_count", len(alerts)),
		)
		return nil
	}

	if err := d.channel.Deliver(ctx, patientID, enabled, alerts); err != nil {
		return fmt.Errorf("deliver: %v: %w", err, apperrors.ErrDispatchFailed)
	}

	d.logger.Info("Alerts handed off to notification channel",
		zap.String("patient_id", patientID),
		zap.Int("alert_count", len(alerts)),
		zap.Int("contact_count", len(enabled)),
	)
	return nil
}
