package camunda

import (
	"sync"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"

	"loan-assistant/internal/common/config"
)

// Workers tracks the job workers opened by the worker manager so they can be
// closed together on shutdown.
type Workers struct {
	client zbc.Client
	logger *zap.Logger

	mu      sync.Mutex
	workers map[string]worker.JobWorker
}

func NewWorkers(client zbc.Client, logger *zap.Logger) *Workers {
	return &Workers{
		client:  client,
		logger:  logger,
		workers: make(map[string]worker.JobWorker),
	}
}

// Open starts polling for taskType. Opening the same task type twice is a
// no-op.
func (w *Workers) Open(taskType string, wcfg config.WorkerConfig, handler worker.JobHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.workers[taskType]; exists {
		return
	}

	jw := w.client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Name("loan-assistant-" + taskType).
		Open()

	w.workers[taskType] = jw
	w.logger.Info("Worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeoutMs", wcfg.Timeout),
	)
}

// TaskTypes lists the open workers.
func (w *Workers) TaskTypes() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, 0, len(w.workers))
	for taskType := range w.workers {
		out = append(out, taskType)
	}
	return out
}

// Close stops every worker and waits for in-flight jobs.
func (w *Workers) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for taskType, jw := range w.workers {
		jw.Close()
		jw.AwaitClose()
		w.logger.Info("Worker stopped", zap.String("taskType", taskType))
	}
	w.workers = make(map[string]worker.JobWorker)
}
