package runcreditcheck

import (
	"context"
	"math"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/common/metrics"
	"loan-assistant/internal/loan/eligibility"
	"loan-assistant/internal/loan/emi"
	"loan-assistant/internal/workers/job"
)

const (
	TaskType = "run-credit-check"
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	recorder     job.Recorder
}

func NewHandler(config *Config, recorder job.Recorder, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		logger:       log,
		errorHandler: errors.NewErrorHandler(log),
		recorder:     recorder,
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.EMI <= 0 {
		return nil, errors.NewInvalidLoanInputError("emi must be positive")
	}
	if input.ExistingEMI < 0 {
		return nil, errors.NewInvalidLoanInputError("existingEmi must not be negative")
	}

	ratio := emi.Ratio(input.ExistingEMI, input.EMI, input.MonthlySalary)
	decision := eligibility.Decide(input.CreditScore, ratio)

	outcome := "approved"
	if !decision.Approved {
		outcome = "declined"
	}
	metrics.CreditCheckOutcomes.WithLabelValues(outcome, string(decision.Reason)).Inc()

	h.logger.Info("credit check decided", map[string]interface{}{
		"outcome":     outcome,
		"reason":      decision.Reason,
		"emiRatio":    ratio,
		"creditScore": input.CreditScore,
	})

	if !decision.Approved && input.ThrowOnDecline {
		return nil, errors.NewEligibilityDeclinedError(string(decision.Reason))
	}

	// +Inf does not survive JSON encoding.
	rounded := math.MaxFloat64
	if !math.IsInf(ratio, 1) {
		rounded = math.Round(ratio*100) / 100
	}

	return &Output{
		Approved: decision.Approved,
		Reason:   string(decision.Reason),
		Ratio:    rounded,
		Message:  decision.Message,
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
