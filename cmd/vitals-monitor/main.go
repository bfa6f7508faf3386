package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/config"
	httpapi "github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/http"
	logpkg "github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/logger"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/notifier"
	redispkg "github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/redis"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/repository"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/service"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/store"
	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/validator"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	log, err := logpkg.NewLogger(cfg.Log.Level, cfg.Log.Format, "vitals-monitor")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting vitals-monitor service")

	// 持久化网关
	redisClient := redispkg.NewRedisClient(&cfg.Redis)
	defer redispkg.Close(redisClient)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redispkg.Ping(pingCtx, redisClient); err != nil {
		pingCancel()
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	pingCancel()

	kv := store.NewRedisKV(redisClient, cfg.Storage.AlertRetention)

	// 仓库层
	vitalsRepo := repository.NewVitalsRepository(kv, cfg.Storage.Timeout, log)
	alertsRepo := repository.NewAlertsRepository(kv, cfg.Storage.Timeout, log)
	patientRepo := repository.NewPatientRepository(kv, cfg.Storage.Timeout, log)

	// 通知通道
	channel, cleanup, err := buildChannel(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize notification channel", zap.Error(err))
	}
	defer cleanup()
	dispatcher := notifier.NewDispatcher(patientRepo, channel, log)

	// 服务层
	ingestSvc := service.NewIngestionService(
		validator.NewValidator(nil),
		vitalsRepo,
		alertsRepo,
		dispatcher,
		cfg.Notify.DispatchTimeout,
		log,
	)
	dashboardSvc := service.NewDashboardService(patientRepo, vitalsRepo, alertsRepo, nil, log)

	// 路由
	router := httpapi.NewRouter(log)
	router.RegisterVitalsRoutes(httpapi.NewVitalsHandler(ingestSvc, vitalsRepo, alertsRepo, log))
	router.RegisterFamilyRoutes(httpapi.NewDashboardHandler(dashboardSvc, log))
	router.RegisterHealthz()

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	// 启动服务（在 goroutine 中）
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 监听系统信号
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("Server error", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping server", zap.Error(err))
	}

	log.Info("Service stopped")
}

// buildChannel 根据配置选择下发通道
func buildChannel(cfg *config.Config, log *zap.Logger) (notifier.Channel, func(), error) {
	switch cfg.Notify.Mode {
	case "mqtt":
		ch, err := notifier.NewMQTTChannel(cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Using MQTT notification channel", zap.String("broker", cfg.Notify.MQTT.Broker))
		return ch, ch.Close, nil
	case "webhook":
		log.Info("Using webhook notification channel", zap.String("url", cfg.Notify.Webhook.URL))
		return notifier.NewWebhookChannel(cfg.Notify.Webhook.URL, cfg.Notify.Webhook.Timeout), func() {}, nil
	default:
		return notifier.NewLogChannel(log), func() {}, nil
	}
}
