package job

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/metrics"
)

type stubValidator struct{ err error }

func (s stubValidator) ValidateInput(string, interface{}) error { return s.err }

type recorded struct {
	taskType, status string
}

type stubRecorder struct {
	processed []recorded
	durations int
}

func (s *stubRecorder) RecordJobProcessed(_ context.Context, taskType, status string) {
	s.processed = append(s.processed, recorded{taskType, status})
}

func (s *stubRecorder) RecordJobDuration(context.Context, string, time.Duration, string) {
	s.durations++
}

func newJob(variables string) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 1, Variables: variables}}
}

type emiInput struct {
	Principal int64 `json:"principal"`
	Tenure    int   `json:"tenure"`
}

func TestDecode(t *testing.T) {
	var input emiInput
	require.NoError(t, Decode(newJob(`{"principal":300000,"tenure":36}`), "calculate-emi", nil, &input))
	assert.Equal(t, emiInput{Principal: 300000, Tenure: 36}, input)
}

func TestDecode_EmptyVariables(t *testing.T) {
	var input emiInput
	require.NoError(t, Decode(newJob(""), "calculate-emi", nil, &input))
	assert.Zero(t, input)
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name      string
		variables string
		validator Validator
	}{
		{name: "schema violation", variables: `{}`, validator: stubValidator{err: stderrors.New("tenure: required")}},
		{name: "malformed json", variables: `{"principal":`},
		{name: "wrong type", variables: `{"principal":"lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input emiInput
			err := Decode(newJob(tt.variables), "calculate-emi", tt.validator, &input)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidLoanInput, errors.AsStandardError(err).Code)
		})
	}
}

func TestTracker(t *testing.T) {
	const taskType = "tracker-test"
	rec := &stubRecorder{}

	Track(taskType, rec).Done(context.Background(), nil)
	Track(taskType, rec).Done(context.Background(), errors.NewCustomerNotFoundError("1"))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerJobsCompleted.WithLabelValues(taskType)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerJobsFailed.WithLabelValues(taskType, "CUSTOMER_NOT_FOUND")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.WorkerJobsActive.WithLabelValues(taskType)))
	assert.Equal(t, []recorded{{taskType, "success"}, {taskType, "failed"}}, rec.processed)
	assert.Equal(t, 2, rec.durations)
}
