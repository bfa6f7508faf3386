package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/config"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/models"
)

// MQTTChannel 通过 MQTT broker 下发告警
// 外部通知服务订阅 {topicPrefix}{patientId} 完成实际投递
type MQTTChannel struct {
	client      mqtt.Client
	topicPrefix string
	qos         byte
}

// NewMQTTChannel 创建MQTT下发通道并连接 broker
func NewMQTTChannel(cfg *config.Config) (*MQTTChannel, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Notify.MQTT.Broker)
	opts.SetClientID(cfg.Notify.MQTT.ClientID)

	if cfg.Notify.MQTT.Username != "" {
		opts.SetUsername(cfg.Notify.MQTT.Username)
	}
	if cfg.Notify.MQTT.Password != "" {
		opts.SetPassword(cfg.Notify.MQTT.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &MQTTChannel{
		client:      client,
		topicPrefix: cfg.Notify.MQTT.TopicPrefix,
		qos:         cfg.Notify.MQTT.QoS,
	}, nil
}

func (c *MQTTChannel) Deliver(ctx context.Context, patientID string, contacts []models.EmergencyContact, alerts []models.Alert) error {
	payload, err := json.Marshal(deliveryMessage{
		PatientID: patientID,
		Contacts:  contacts,
		Alerts:    alerts,
	})
	if err != nil {
		return fmt.Errorf("marshal delivery message: %w", err)
	}

	topic := c.topicPrefix + patientID
	token := c.client.Publish(topic, c.qos, false, payload)
	token.Wait()

	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, token.Error())
	}
	return nil
}

// Close 断开MQTT连接
func (c *MQTTChannel) Close() {
	c.client.Disconnect(250)
}
