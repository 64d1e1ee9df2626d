// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"loan-intake-workers/internal/audit"
	commonaws "loan-intake-workers/internal/common/aws"
	"loan-intake-workers/internal/common/config"
	"loan-intake-workers/internal/common/database"
	"loan-intake-workers/internal/common/logger"
	"loan-intake-workers/internal/common/metrics"
	"loan-intake-workers/internal/common/observability"
	"loan-intake-workers/internal/session"

	ec "loan-intake-workers/internal/workers/intake/extract-collateral"
	eed "loan-intake-workers/internal/workers/intake/extract-existing-debt"
	efp "loan-intake-workers/internal/workers/intake/extract-financial-profile"
	eli "loan-intake-workers/internal/workers/intake/extract-loan-info"
	epi "loan-intake-workers/internal/workers/intake/extract-personal-info"
	na "loan-intake-workers/internal/workers/intake/notify-advisor"
	pa "loan-intake-workers/internal/workers/intake/persist-application"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Shared intake infrastructure ---
	sessions := session.NewStore(redis.Client, cfg.SessionTTL())

	var auditor audit.Auditor
	if cfg.Audit.Enabled {
		auditor = audit.NewIndexer(esClient.Client, cfg.Audit.Index)
		zapLog.Info("Audit trail enabled", zap.String("index", cfg.Audit.Index))
	}

	// --- Register Extraction Workers (5) ---
	if config.IsWorkerEnabled(cfg, eli.TaskType) {
		handler := eli.NewHandler(eli.LoadConfig(), sessions, auditor, log)
		startWorker(zeebeClient, eli.TaskType, config.GetWorkerConfig(cfg, eli.TaskType), handler.Handle, obs, zapLog)
	}

	if config.IsWorkerEnabled(cfg, epi.TaskType) {
		handler := epi.NewHandler(epi.LoadConfig(), sessions, auditor, log)
		startWorker(zeebeClient, epi.TaskType, config.GetWorkerConfig(cfg, epi.TaskType), handler.Handle, obs, zapLog)
	}

	if config.IsWorkerEnabled(cfg, efp.TaskType) {
		handler := efp.NewHandler(efp.LoadConfig(), sessions, auditor, log)
		startWorker(zeebeClient, efp.TaskType, config.GetWorkerConfig(cfg, efp.TaskType), handler.Handle, obs, zapLog)
	}

	if config.IsWorkerEnabled(cfg, eed.TaskType) {
		handler := eed.NewHandler(eed.LoadConfig(), sessions, auditor, log)
		startWorker(zeebeClient, eed.TaskType, config.GetWorkerConfig(cfg, eed.TaskType), handler.Handle, obs, zapLog)
	}

	if config.IsWorkerEnabled(cfg, ec.TaskType) {
		handler := ec.NewHandler(ec.LoadConfig(), sessions, auditor, log)
		startWorker(zeebeClient, ec.TaskType, config.GetWorkerConfig(cfg, ec.TaskType), handler.Handle, obs, zapLog)
	}

	// --- Register Submission Workers (2) ---
	if config.IsWorkerEnabled(cfg, pa.TaskType) {
		handler := pa.NewHandler(pa.LoadConfig(), pg.DB, log)
		startWorker(zeebeClient, pa.TaskType, config.GetWorkerConfig(cfg, pa.TaskType), handler.Handle, obs, zapLog)
	}

	if config.IsWorkerEnabled(cfg, na.TaskType) {
		var sesClient na.SESService
		var snsClient na.SNSService
		if cfg.Notifications.Email.Enabled {
			client, err := commonaws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
			if err != nil {
				zapLog.Fatal("failed to create SES client", zap.Error(err))
			}
			sesClient = client
		}
		if cfg.Notifications.SMS.Enabled {
			client, err := commonaws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
			if err != nil {
				zapLog.Fatal("failed to create SNS client", zap.Error(err))
			}
			snsClient = client
		}

		naCfg := na.LoadConfig()
		naCfg.EmailEnabled = cfg.Notifications.Email.Enabled
		naCfg.SMSEnabled = cfg.Notifications.SMS.Enabled
		naCfg.FromEmail = cfg.Notifications.Email.FromEmail
		naCfg.AdvisorEmail = cfg.Notifications.AdvisorEmail
		naCfg.AdvisorPhone = cfg.Notifications.AdvisorPhone

		handler := na.NewHandler(naCfg, sesClient, snsClient, log)
		startWorker(zeebeClient, na.TaskType, config.GetWorkerConfig(cfg, na.TaskType), handler.Handle, obs, zapLog)
	}

	zapLog.Info("All intake workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), obs *observability.Observability, log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	instrumented := func(jobClient worker.JobClient, job entities.Job) {
		start := time.Now()
		metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
		defer metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()

		handlerFunc(jobClient, job)

		elapsed := time.Since(start)
		metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
		obs.RecordJobDuration(context.Background(), elapsed, taskType)
		obs.RecordJobProcessed(context.Background(), taskType)
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(instrumented).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
