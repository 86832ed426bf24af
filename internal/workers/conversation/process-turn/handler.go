package processturn

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/conversation"
	"loan-assistant/internal/session"
	"loan-assistant/internal/workers/job"
)

const (
	TaskType = "process-conversation-turn"
)

// Engine is the part of *conversation.Engine the worker drives.
type Engine interface {
	Start(ctx context.Context, lang string) (*conversation.Reply, error)
	Handle(ctx context.Context, sessionID, text string) (*conversation.Reply, error)
}

type Handler struct {
	config       *Config
	engine       Engine
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	recorder     job.Recorder
}

func NewHandler(config *Config, engine Engine, recorder job.Recorder, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       engine,
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
	sessionID := strings.TrimSpace(input.SessionID)

	var (
		reply *conversation.Reply
		err   error
	)
	if sessionID == "" {
		reply, err = h.engine.Start(ctx, input.Language)
	} else {
		if strings.TrimSpace(input.Text) == "" {
			return nil, errors.NewInvalidLoanInputError("text is required for an existing session")
		}
		reply, err = h.engine.Handle(ctx, sessionID, input.Text)
	}
	if err != nil {
		return nil, classify(sessionID, err)
	}

	state := conversation.State(reply.Session.State)
	h.logger.Debug("turn processed", map[string]interface{}{
		"sessionId": reply.Session.ID,
		"state":     state,
		"messages":  len(reply.Messages),
	})

	return &Output{
		SessionID: reply.Session.ID,
		State:     string(state),
		Stage:     state.Stage(),
		Terminal:  state.IsTerminal(),
		Reference: reply.Session.Reference,
		Messages:  reply.Messages,
	}, nil
}

func classify(sessionID string, err error) error {
	switch {
	case stderrors.Is(err, session.ErrNotFound):
		return errors.NewSessionNotFoundError(sessionID)
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewTimeoutError("process_turn", err)
	case stderrors.Is(err, session.ErrBusy):
		return errors.NewSessionBusyError(sessionID)
	default:
		return errors.NewInternalError(err)
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
