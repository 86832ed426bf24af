package notifysanction

import (
	"context"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/workers/job"
)

const (
	TaskType = "notify-sanction"
)

type ServiceInterface interface {
	Execute(ctx context.Context, input *Input) (*Output, error)
}

type Handler struct {
	config       *Config
	service      ServiceInterface
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	recorder     job.Recorder
}

type HandlerOptions struct {
	Config   *Config
	Service  ServiceInterface
	Recorder job.Recorder
	Logger   logger.Logger
}

func NewHandler(opts HandlerOptions) *Handler {
	log := opts.Logger.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       opts.Config,
		service:      opts.Service,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
		recorder:     opts.Recorder,
	}
}

func (h *Handler) Handle(client worker.JobClient, j entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      j.Key,
		"workflowKey": j.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	tracker := job.Track(TaskType, h.recorder)

	var input Input
	err := job.Decode(j, TaskType, h.config.Validator, &input)
	var output *Output
	if err == nil {
		output, err = h.service.Execute(ctx, &input)
	}
	if err == nil {
		err = job.Complete(ctx, client, j, output)
	}

	tracker.Done(ctx, err)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, j, err)
	}
}
