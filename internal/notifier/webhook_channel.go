package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

// WebhookChannel 通过 HTTP webhook 下发告警
type WebhookChannel struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookChannel 创建 webhook 下发通道
func NewWebhookChannel(url string, timeout time.Duration) *WebhookChannel {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &WebhookChannel{
		httpClient: client,
		url:        url,
	}
}

func (c *WebhookChannel) Deliver(ctx context.Context, patientID string, contacts []models.EmergencyContact, alerts []models.Alert) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(deliveryMessage{
			PatientID: patientID,
			Contacts:  contacts,
			Alerts:    alerts,
		}).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}
	return nil
}
