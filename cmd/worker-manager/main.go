// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"loan-assistant/internal/app"
	"loan-assistant/internal/common/aws"
	"loan-assistant/internal/common/camunda"
	"loan-assistant/internal/common/config"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/common/observability"
	"loan-assistant/internal/models"
	"loan-assistant/pkg/registry"

	pt "loan-assistant/internal/workers/conversation/process-turn"
	ns "loan-assistant/internal/workers/communication/notify-sanction"
	ce "loan-assistant/internal/workers/loan/calculate-emi"
	el "loan-assistant/internal/workers/loan/check-eligibility"
	cc "loan-assistant/internal/workers/loan/run-credit-check"
)

// MessageLoanSanctioned is published after every sanction so a waiting
// process instance can continue with disbursement.
const MessageLoanSanctioned = "loan-sanctioned"

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)
	zapLog.Info("Starting worker manager...", zap.String("environment", cfg.App.Environment))

	obs, err := observability.New("worker-manager")
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Conversation engine and stores ---
	loan, err := app.New(ctx, cfg, app.Options{ConnectTries: 15, RetryDelay: 2 * time.Second}, log)
	if err != nil {
		zapLog.Fatal("application bootstrap failed", zap.Error(err))
	}
	defer loan.Close()
	zapLog.Info("Conversation engine ready",
		zap.String("customers", cfg.Customers.Source),
		zap.String("sessions", cfg.Session.Store),
	)

	reg, err := registry.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		zapLog.Fatal("activity registry load failed", zap.Error(err))
	}

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = app.RetryWithBackoff(ctx, func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, log, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	loan.Engine.OnSanction(func(ctx context.Context, s models.Sanction) {
		obs.RecordSanction(ctx, s.Amount)
		publishSanction(ctx, zeebe, s, log)
	})

	// --- Notification clients ---
	var (
		sms   ns.SMSSender
		email ns.EmailSender
	)
	if cfg.Notifications.SMS.Enabled {
		client, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.SMS.SenderID)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		sms = client
	}
	if cfg.Notifications.Email.Enabled {
		client, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.Email.FromEmail)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		email = client
	}

	// --- Register Workers ---
	workers := camunda.NewWorkers(zeebe.GetClient(), zapLog)

	if wcfg := config.GetWorkerConfig(cfg, el.TaskType); wcfg.Enabled {
		c := el.LoadConfig()
		c.Timeout = config.GetDuration(wcfg.Timeout)
		c.Validator = reg
		workers.Open(el.TaskType, wcfg, el.NewHandler(c, loan.Directory, obs, log).Handle)
	}

	if wcfg := config.GetWorkerConfig(cfg, ce.TaskType); wcfg.Enabled {
		c := ce.LoadConfig()
		c.Timeout = config.GetDuration(wcfg.Timeout)
		c.DefaultRate = cfg.Engine.InterestRate
		c.Validator = reg
		workers.Open(ce.TaskType, wcfg, ce.NewHandler(c, obs, log).Handle)
	}

	if wcfg := config.GetWorkerConfig(cfg, cc.TaskType); wcfg.Enabled {
		c := cc.LoadConfig()
		c.Timeout = config.GetDuration(wcfg.Timeout)
		c.Validator = reg
		workers.Open(cc.TaskType, wcfg, cc.NewHandler(c, obs, log).Handle)
	}

	if wcfg := config.GetWorkerConfig(cfg, pt.TaskType); wcfg.Enabled {
		c := pt.LoadConfig()
		c.Timeout = config.GetDuration(wcfg.Timeout)
		c.Validator = reg
		workers.Open(pt.TaskType, wcfg, pt.NewHandler(c, loan.Engine, obs, log).Handle)
	}

	if wcfg := config.GetWorkerConfig(cfg, ns.TaskType); wcfg.Enabled {
		c := ns.ConfigFrom(cfg.Notifications)
		c.Timeout = config.GetDuration(wcfg.Timeout)
		c.Validator = reg
		service := ns.NewService(ns.ServiceDependencies{SMS: sms, Email: email, Logger: log}, c)
		workers.Open(ns.TaskType, wcfg, ns.NewHandler(ns.HandlerOptions{
			Config:   c,
			Service:  service,
			Recorder: obs,
			Logger:   log,
		}).Handle)
	}
	zapLog.Info("Workers registered", zap.Strings("taskTypes", workers.TaskTypes()))

	// --- Health & Metrics Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy")
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checkCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := ready(checkCtx, loan, zeebe); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: cfg.Server.Address, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping HTTP server", zap.Error(err))
	}
	workers.Close()
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down metrics", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func publishSanction(ctx context.Context, zeebe *camunda.Client, s models.Sanction, log logger.Logger) {
	vars := map[string]interface{}{
		"reference":    s.Reference,
		"customerId":   s.CustomerID,
		"customerName": s.CustomerName,
		"mobile":       s.Mobile,
		"amount":       s.Amount,
		"tenure":       s.Tenure,
		"emi":          s.EMI,
		"totalPayment": s.TotalPayment,
		"interestRate": s.InterestRate,
	}
	if s.Email != "" {
		vars["email"] = s.Email
	}

	if err := zeebe.PublishMessage(ctx, MessageLoanSanctioned, s.SessionID, s.Reference, vars); err != nil {
		log.Error("Failed to publish sanction message", map[string]interface{}{
			"reference": s.Reference,
			"error":     err.Error(),
		})
	}
}

func ready(ctx context.Context, loan *app.App, zeebe *camunda.Client) error {
	if err := zeebe.HealthCheck(ctx); err != nil {
		return err
	}
	if loan.Postgres != nil {
		if err := loan.Postgres.Ping(ctx); err != nil {
			return err
		}
	}
	if loan.Redis != nil {
		if err := loan.Redis.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	})
}
