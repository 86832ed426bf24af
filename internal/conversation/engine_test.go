package conversation

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/customer"
	"loan-assistant/internal/document"
	"loan-assistant/internal/models"
	"loan-assistant/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type recordingSink struct {
	mu         sync.Mutex
	deliveries []Delivery
}

func (r *recordingSink) Deliver(_ context.Context, d Delivery) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, d)
}

func (r *recordingSink) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]State, 0, len(r.deliveries))
	for _, d := range r.deliveries {
		out = append(out, d.State)
	}
	return out
}

type recordingScheduler struct {
	mu    sync.Mutex
	waits []time.Duration
	fail  error
}

func (r *recordingScheduler) Wait(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waits = append(r.waits, d)
	if r.fail != nil {
		return r.fail
	}
	return ctx.Err()
}

type countingExtractor struct {
	next  document.Extractor
	calls int
}

func (c *countingExtractor) Extract(ctx context.Context, u document.Upload, name string) (*document.Result, error) {
	c.calls++
	return c.next.Extract(ctx, u, name)
}

type failingDirectory struct{}

func (failingDirectory) FindByMobile(context.Context, string) (*models.CustomerProfile, error) {
	return nil, errors.New("connection refused")
}

type engineFixture struct {
	engine    *Engine
	sink      *recordingSink
	scheduler *recordingScheduler
	extractor *countingExtractor
	store     session.Store
}

func setupEngine(t *testing.T, mutate ...func(*Config, *Deps)) *engineFixture {
	t.Helper()

	fx := &engineFixture{
		sink:      &recordingSink{},
		scheduler: &recordingScheduler{},
		extractor: &countingExtractor{next: document.NewMockExtractor(document.WithLatency(0, 0), document.WithSeed(7))},
		store:     session.NewMemoryStore(session.DefaultTTL),
	}

	cfg := DefaultConfig()
	deps := Deps{
		Directory: customer.NewDemoDirectory(),
		Extractor: fx.extractor,
		Store:     fx.store,
		Scheduler: fx.scheduler,
		Sink:      fx.sink,
		Now:       func() time.Time { return testNow },
	}
	for _, fn := range mutate {
		fn(cfg, &deps)
	}
	fx.store = deps.Store

	engine, err := NewEngine(cfg, deps, logger.NewTestLogger(t))
	require.NoError(t, err)
	fx.engine = engine
	return fx
}

func (fx *engineFixture) say(t *testing.T, id string, inputs ...string) *Reply {
	t.Helper()
	var reply *Reply
	for _, input := range inputs {
		var err error
		reply, err = fx.engine.Handle(context.Background(), id, input)
		require.NoError(t, err, "input %q", input)
	}
	return reply
}

func pdfUpload(size int) document.Upload {
	return document.NewUpload("salary-slip.pdf", bytes.Repeat([]byte("x"), size))
}

// ==========================
// Engine tests
// ==========================

func TestNewEngine_RequiresCollaborators(t *testing.T) {
	_, err := NewEngine(nil, Deps{Extractor: document.NewMockExtractor()}, nil)
	assert.Error(t, err)

	_, err = NewEngine(nil, Deps{Directory: customer.NewDemoDirectory()}, nil)
	assert.Error(t, err)

	engine, err := NewEngine(nil, Deps{Directory: customer.NewDemoDirectory(), Extractor: document.NewMockExtractor()}, nil)
	require.NoError(t, err)
	assert.NotNil(t, engine.Machine())
}

func TestEngine_Start(t *testing.T) {
	fx := setupEngine(t)

	reply, err := fx.engine.Start(context.Background(), "hi")
	require.NoError(t, err)

	assert.NotEmpty(t, reply.Session.ID)
	assert.Equal(t, "hi", reply.Session.Language)
	assert.Equal(t, string(StateGreeting), reply.Session.State)
	assert.Equal(t, 10.5, reply.Session.InterestRate)
	require.Len(t, reply.Messages, 1)
	assert.Contains(t, reply.Messages[0].Text, "नमस्ते")
	assert.Equal(t, testNow, reply.Messages[0].Timestamp)

	stored, err := fx.engine.Session(context.Background(), reply.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, reply.Session.ID, stored.ID)
	assert.Equal(t, []State{StateGreeting}, fx.sink.states())
}

func TestEngine_StartUnknownLanguageUsesDefault(t *testing.T) {
	fx := setupEngine(t)

	reply, err := fx.engine.Start(context.Background(), "fr")
	require.NoError(t, err)
	assert.Equal(t, "en", reply.Session.Language)
}

func TestEngine_InstantApprovalToSanction(t *testing.T) {
	fx := setupEngine(t)

	var sanctions []models.Sanction
	fx.engine.OnSanction(func(_ context.Context, s models.Sanction) {
		sanctions = append(sanctions, s)
	})

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)
	id := start.Session.ID

	reply := fx.say(t, id, "Amit", "my number is 9876543212 thanks")
	assert.Equal(t, string(StateAskAmount), reply.Session.State)
	require.Len(t, reply.Messages, 2)

	reply = fx.say(t, id, "300000", "36 months")
	assert.Equal(t, string(StateConfirm), reply.Session.State)
	assert.Equal(t, int64(9751), reply.Session.EMI)
	assert.InDelta(t, 10.26, reply.Session.EMIRatio, 0.01)
	assert.LessOrEqual(t, reply.Session.EMIRatio, 50.0)

	reply = fx.say(t, id, "Yes, Proceed")
	assert.Equal(t, string(StateSanctionReady), reply.Session.State)

	reply = fx.say(t, id, "Generate Sanction Letter")
	assert.Equal(t, string(StateSanctioned), reply.Session.State)
	assert.Equal(t, int64(9751*36), reply.Session.TotalPayment())
	assert.Regexp(t, `^TATA-\d{8}$`, reply.Session.Reference)

	require.Len(t, sanctions, 1)
	assert.Equal(t, reply.Session.Reference, sanctions[0].Reference)
	assert.Equal(t, int64(351036), sanctions[0].TotalPayment)

	assert.Equal(t, []State{
		StateGreeting,
		StateAskPhone,
		StateShowProfile, StateAskAmount,
		StateAskTenure,
		StateConfirm,
		StateCreditCheck, StateSanctionReady,
		StateSanctionReady, StateSanctioned,
	}, fx.sink.states())

	delays := DefaultDelays()
	assert.Equal(t, []time.Duration{
		delays.Thinking,
		delays.Thinking, delays.FollowUp,
		delays.Thinking,
		delays.Thinking,
		delays.Thinking, delays.CreditCheck,
		delays.Thinking, delays.Sanction,
	}, fx.scheduler.waits)

	stored, err := fx.engine.Session(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(StateSanctioned), stored.State)
}

func TestEngine_ConditionalApprovalWithUpload(t *testing.T) {
	fx := setupEngine(t)

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)
	id := start.Session.ID

	reply := fx.say(t, id, "Rahul", "9876543210", "500000", "36")
	assert.Equal(t, string(StateUploadSalary), reply.Session.State)
	assert.True(t, reply.Session.Conditional)

	reply, err = fx.engine.Upload(context.Background(), id, pdfUpload(2048))
	require.NoError(t, err)

	assert.Equal(t, string(StateSanctionReady), reply.Session.State)
	assert.True(t, reply.Session.SalaryVerified)
	require.Len(t, reply.Messages, 3)
	assert.Contains(t, reply.Messages[0].Text, "Document verified successfully")
	assert.Equal(t, 1, fx.extractor.calls)
}

func TestEngine_UploadViolationSkipsExtractor(t *testing.T) {
	fx := setupEngine(t)

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)
	id := start.Session.ID
	fx.say(t, id, "Rahul", "9876543210", "500000", "36")

	tests := []struct {
		name         string
		upload       document.Upload
		expectedText string
	}{
		{name: "oversize", upload: pdfUpload(int(document.MaxUploadSize) + 1), expectedText: "File must be under 5MB"},
		{name: "wrong type", upload: document.NewUpload("slip.docx", []byte("PK\x03\x04")), expectedText: "Unsupported file type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := fx.engine.Upload(context.Background(), id, tt.upload)
			require.NoError(t, err)

			assert.Equal(t, string(StateUploadSalary), reply.Session.State)
			require.Len(t, reply.Messages, 1)
			assert.Contains(t, reply.Messages[0].Text, tt.expectedText)
			assert.True(t, reply.Messages[0].Error)
		})
	}
	assert.Zero(t, fx.extractor.calls)
}

func TestEngine_UploadOutsideUploadState(t *testing.T) {
	fx := setupEngine(t)

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)

	reply, err := fx.engine.Upload(context.Background(), start.Session.ID, pdfUpload(100))
	require.NoError(t, err)

	assert.Equal(t, string(StateGreeting), reply.Session.State)
	assert.Equal(t, "Please choose from the suggestions below.", reply.Messages[0].Text)
	assert.Zero(t, fx.extractor.calls)
}

func TestEngine_PhoneRetry(t *testing.T) {
	fx := setupEngine(t)

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)
	id := start.Session.ID

	reply := fx.say(t, id, "Amit", "987654321")
	assert.Equal(t, string(StateAskPhone), reply.Session.State)

	reply = fx.say(t, id, "9999999999")
	assert.Equal(t, string(StateAskPhone), reply.Session.State)
	assert.Contains(t, reply.Messages[0].Text, "not found")

	reply = fx.say(t, id, "9876543212")
	assert.Equal(t, string(StateAskAmount), reply.Session.State)
}

func TestEngine_DirectoryFailure(t *testing.T) {
	fx := setupEngine(t, func(_ *Config, d *Deps) { d.Directory = failingDirectory{} })

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)

	reply := fx.say(t, start.Session.ID, "Amit", "9876543212")
	assert.Equal(t, string(StateAskPhone), reply.Session.State)
	assert.True(t, reply.Messages[0].Error)
}

func TestEngine_UnknownSession(t *testing.T) {
	fx := setupEngine(t)

	_, err := fx.engine.Handle(context.Background(), "missing", "hello")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestEngine_End(t *testing.T) {
	fx := setupEngine(t)

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)
	require.NoError(t, fx.engine.End(context.Background(), start.Session.ID))

	_, err = fx.engine.Session(context.Background(), start.Session.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestEngine_CancelledThinkingLeavesSessionUnchanged(t *testing.T) {
	fx := setupEngine(t)

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)

	fx.scheduler.fail = context.Canceled
	_, err = fx.engine.Handle(context.Background(), start.Session.ID, "Amit")
	assert.ErrorIs(t, err, context.Canceled)

	stored, err := fx.engine.Session(context.Background(), start.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, string(StateGreeting), stored.State)
}

func TestEngine_CancelledDeliveryStillDelivers(t *testing.T) {
	fx := setupEngine(t)

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)
	id := start.Session.ID
	fx.say(t, id, "Amit")

	// Thinking succeeds, the follow-up wait is interrupted.
	fx.engine.scheduler = SchedulerFunc(func(ctx context.Context, d time.Duration) error {
		if d == DefaultDelays().FollowUp {
			return context.Canceled
		}
		return nil
	})

	reply, err := fx.engine.Handle(context.Background(), id, "9876543212")
	require.NoError(t, err)
	assert.Equal(t, string(StateAskAmount), reply.Session.State)
	assert.Len(t, reply.Messages, 2)
}

func TestEngine_RedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	fx := setupEngine(t, func(_ *Config, d *Deps) {
		d.Store = session.NewRedisStore(client, session.RedisConfig{TTL: time.Minute})
	})

	start, err := fx.engine.Start(context.Background(), "en")
	require.NoError(t, err)
	id := start.Session.ID

	reply := fx.say(t, id, "Amit", "9876543212", "300000", "24")
	assert.Equal(t, string(StateConfirm), reply.Session.State)
	assert.Equal(t, int64(13913), reply.Session.EMI)

	stored, err := fx.store.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored.Customer)
	assert.Equal(t, "CUST003", stored.Customer.CustomerID)
	assert.Equal(t, 24, stored.Tenure)
	assert.True(t, mr.Exists("loan:session:"+id))
	assert.False(t, mr.Exists("loan:session:lock:"+id))
}

func TestEngine_ConcurrentSessionsAreIndependent(t *testing.T) {
	fx := setupEngine(t)

	ids := make([]string, 3)
	for i := range ids {
		start, err := fx.engine.Start(context.Background(), "en")
		require.NoError(t, err)
		ids[i] = start.Session.ID
	}

	mobiles := []string{"9876543210", "9876543212", "9876543214"}
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(id, mobile string) {
			defer wg.Done()
			_, _ = fx.engine.Handle(context.Background(), id, "Customer")
			_, _ = fx.engine.Handle(context.Background(), id, mobile)
		}(id, mobiles[i])
	}
	wg.Wait()

	for i, id := range ids {
		s, err := fx.engine.Session(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, s.Customer)
		assert.Equal(t, mobiles[i], s.Customer.Mobile)
	}
}
