// Package job holds the steps every loan worker performs around its
// business logic: input validation and decoding, completion and metrics.
package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/metrics"
)

// Validator checks job variables against a task type's input schema.
// *registry.ActivityRegistry satisfies it.
type Validator interface {
	ValidateInput(taskType string, variables interface{}) error
}

// Recorder receives OpenTelemetry job measurements.
// *observability.Observability satisfies it.
type Recorder interface {
	RecordJobProcessed(ctx context.Context, taskType, status string)
	RecordJobDuration(ctx context.Context, taskType string, duration time.Duration, status string)
}

// Decode validates the job variables when a validator is set and unmarshals
// them into input. Failures are INVALID_LOAN_INPUT errors.
func Decode(j entities.Job, taskType string, v Validator, input interface{}) error {
	raw := []byte(j.Variables)
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if v != nil {
		if err := v.ValidateInput(taskType, raw); err != nil {
			return errors.NewInvalidLoanInputError(err.Error())
		}
	}
	if err := json.Unmarshal(raw, input); err != nil {
		return errors.NewInvalidLoanInputError("parse input: " + err.Error())
	}
	return nil
}

// Complete sends the output as job variables.
func Complete(ctx context.Context, client worker.JobClient, j entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(j.Key).
		VariablesFromObject(output)
	if err != nil {
		return err
	}
	_, err = cmd.Send(ctx)
	return err
}

// Tracker measures one job. Done must be called exactly once.
type Tracker struct {
	taskType string
	recorder Recorder
	start    time.Time
}

func Track(taskType string, recorder Recorder) *Tracker {
	metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
	return &Tracker{taskType: taskType, recorder: recorder, start: time.Now()}
}

// Done records success when err is nil, otherwise a failure under the
// error's code.
func (t *Tracker) Done(ctx context.Context, err error) {
	elapsed := time.Since(t.start)
	metrics.WorkerJobsActive.WithLabelValues(t.taskType).Dec()
	metrics.WorkerJobDuration.WithLabelValues(t.taskType).Observe(elapsed.Seconds())

	status := "success"
	if err != nil {
		status = "failed"
		metrics.WorkerJobsFailed.WithLabelValues(t.taskType, string(errors.AsStandardError(err).Code)).Inc()
	} else {
		metrics.WorkerJobsCompleted.WithLabelValues(t.taskType).Inc()
	}

	if t.recorder != nil {
		t.recorder.RecordJobProcessed(ctx, t.taskType, status)
		t.recorder.RecordJobDuration(ctx, t.taskType, elapsed, status)
	}
}
