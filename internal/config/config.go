package config

import (
	"os"
	"strconv"
	"time"
)

// RedisConfig Redis配置
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Config 生命体征监测服务配置
type Config struct {
	Redis RedisConfig

	HTTP struct {
		Addr string
	}

	Storage struct {
		// 单次持久化操作超时，超时视为 StorageUnavailable
		Timeout time.Duration
		// 每个患者告警列表保留条数上限（追加后裁剪到最近 N 条）
		AlertRetention int64
	}

	Notify struct {
		// 下发通道：log（仅记录日志）、mqtt、webhook
		Mode string

		MQTT struct {
			Broker      string
			ClientID    string
			Username    string
			Password    string
			TopicPrefix string
			QoS         byte
		}

		Webhook struct {
			URL     string
			Timeout time.Duration
		}

		// 异步下发的整体超时
		DispatchTimeout time.Duration
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Storage.Timeout = time.Duration(getEnvInt("STORAGE_TIMEOUT_MS", 2000)) * time.Millisecond
	cfg.Storage.AlertRetention = int64(getEnvInt("ALERT_RETENTION", 500))

	cfg.Notify.Mode = getEnv("NOTIFY_MODE", "log")
	cfg.Notify.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.Notify.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "vitals-monitor")
	cfg.Notify.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.Notify.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.Notify.MQTT.TopicPrefix = getEnv("MQTT_TOPIC_PREFIX", "vitals/alerts/")
	cfg.Notify.MQTT.QoS = byte(getEnvInt("MQTT_QOS", 1))
	cfg.Notify.Webhook.URL = getEnv("WEBHOOK_URL", "")
	cfg.Notify.Webhook.Timeout = time.Duration(getEnvInt("WEBHOOK_TIMEOUT_MS", 5000)) * time.Millisecond
	cfg.Notify.DispatchTimeout = time.Duration(getEnvInt("NOTIFY_DISPATCH_TIMEOUT_MS", 10000)) * time.Millisecond

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
