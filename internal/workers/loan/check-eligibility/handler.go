package checkeligibility

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/common/metrics"
	"loan-assistant/internal/common/validation"
	"loan-assistant/internal/customer"
	"loan-assistant/internal/loan/eligibility"
	"loan-assistant/internal/workers/job"
)

const (
	TaskType = "check-loan-eligibility"
)

type Handler struct {
	config       *Config
	directory    customer.Directory
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	recorder     job.Recorder
}

func NewHandler(config *Config, directory customer.Directory, recorder job.Recorder, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		directory:    directory,
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
	mobile := strings.TrimSpace(input.Mobile)
	if !validation.ValidateMobile(mobile) {
		return nil, errors.NewInvalidLoanInputError("mobile must be 10 digits")
	}
	if input.Amount <= 0 {
		return nil, errors.NewInvalidLoanInputError("amount must be positive")
	}

	profile, err := h.directory.FindByMobile(ctx, mobile)
	if err != nil {
		if stderrors.Is(err, customer.ErrNotFound) {
			return nil, errors.NewCustomerNotFoundError(mobile)
		}
		return nil, errors.NewQueryExecutionFailedError("find_customer_by_mobile", err)
	}

	result := eligibility.Evaluate(*profile, input.Amount)
	metrics.EligibilityOutcomes.WithLabelValues(string(result.Status), string(result.Reason)).Inc()

	h.logger.Info("eligibility evaluated", map[string]interface{}{
		"customerId": profile.CustomerID,
		"amount":     input.Amount,
		"status":     result.Status,
		"reason":     result.Reason,
	})

	return &Output{
		Status:           string(result.Status),
		Reason:           string(result.Reason),
		Message:          result.Message,
		Params:           result.Params,
		CustomerID:       profile.CustomerID,
		CustomerName:     profile.Name,
		CreditScore:      profile.CreditScore,
		MonthlySalary:    profile.MonthlySalary,
		TotalExistingEMI: profile.TotalExistingEMI,
		PreApprovedLimit: profile.PreApprovedLimit,
		NeedsSalarySlip:  result.Conditional(),
	}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
