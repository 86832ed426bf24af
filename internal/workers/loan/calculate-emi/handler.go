package calculateemi

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/loan/emi"
	"loan-assistant/internal/workers/job"
)

const (
	TaskType = "calculate-emi"
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	recorder     job.Recorder
	now          func() time.Time
}

func NewHandler(config *Config, recorder job.Recorder, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
		recorder:     recorder,
		now:          time.Now,
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
		output, err = h.execute(ctx, &input)
	}
	if err == nil {
		err = job.Complete(ctx, client, j, output)
	}

	tracker.Done(ctx, err)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, j, err)
	}
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input.Tenure > emi.MaxTenureMonths {
		return nil, errors.NewInvalidLoanInputError(fmt.Sprintf("tenure: at most %d months", emi.MaxTenureMonths))
	}

	rate := input.AnnualRate
	if rate == 0 {
		rate = h.config.DefaultRate
	}

	quote, err := emi.NewQuote(input.Principal, rate, input.Tenure)
	if err != nil {
		return nil, classify(err)
	}
	output := &Output{Quote: quote}

	if input.IncludeSchedule {
		start := h.now()
		if input.StartDate != "" {
			start, err = time.Parse("2006-01-02", input.StartDate)
			if err != nil {
				return nil, errors.NewInvalidLoanInputError(fmt.Sprintf("startDate: %v", err))
			}
		}
		output.Schedule, err = emi.Schedule(input.Principal, rate, input.Tenure, start)
		if err != nil {
			return nil, classify(err)
		}
	}

	h.logger.Info("emi calculated", map[string]interface{}{
		"principal": quote.Principal,
		"tenure":    quote.TenureMonths,
		"rate":      quote.AnnualRate,
		"emi":       quote.EMI,
	})
	return output, nil
}

func classify(err error) error {
	if stderrors.Is(err, emi.ErrInvalidInput) {
		return errors.NewInvalidLoanInputError(err.Error())
	}
	return errors.NewEMICalculationFailedError(err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
