package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/common/metrics"
	"loan-assistant/internal/customer"
	"loan-assistant/internal/document"
	"loan-assistant/internal/i18n"
	"loan-assistant/internal/models"
	"loan-assistant/internal/session"
)

// Delivery is one bot message handed to the UI driver.
type Delivery struct {
	SessionID string
	State     State
	Message   models.Message
}

// Sink receives messages as they become due. Deliver is called from the
// goroutine running the turn, in emission order.
type Sink interface {
	Deliver(ctx context.Context, d Delivery)
}

type SinkFunc func(ctx context.Context, d Delivery)

func (f SinkFunc) Deliver(ctx context.Context, d Delivery) { f(ctx, d) }

type discardSink struct{}

func (discardSink) Deliver(context.Context, Delivery) {}

// Config holds engine settings.
type Config struct {
	Options  Options         `mapstructure:",squash"`
	Limits   document.Limits `mapstructure:"documents"`
	Language i18n.Language   `mapstructure:"language"`
}

func DefaultConfig() *Config {
	return &Config{
		Options:  DefaultOptions(),
		Limits:   document.DefaultLimits(),
		Language: i18n.DefaultLanguage,
	}
}

// Deps are the engine's collaborators. Directory and Extractor are
// required; the rest fall back to in-process defaults.
type Deps struct {
	Directory customer.Directory
	Extractor document.Extractor
	Store     session.Store
	Localizer i18n.Localizer
	Scheduler Scheduler
	Sink      Sink
	Now       func() time.Time
}

// Reply is the outcome of one turn: the saved session and every message
// delivered during it.
type Reply struct {
	Session  models.Session   `json:"session"`
	Messages []models.Message `json:"messages"`
}

// Engine runs conversation turns against stored sessions.
type Engine struct {
	config     *Config
	machine    *Machine
	directory  customer.Directory
	extractor  document.Extractor
	store      session.Store
	scheduler  Scheduler
	sink       Sink
	now        func() time.Time
	logger     logger.Logger
	onSanction []func(context.Context, models.Sanction)
}

func NewEngine(config *Config, deps Deps, log logger.Logger) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if deps.Directory == nil {
		return nil, errors.New("conversation: customer directory is required")
	}
	if deps.Extractor == nil {
		return nil, errors.New("conversation: document extractor is required")
	}
	if deps.Store == nil {
		deps.Store = session.NewMemoryStore(session.DefaultTTL)
	}
	if deps.Scheduler == nil {
		deps.Scheduler = Clock{}
	}
	if deps.Sink == nil {
		deps.Sink = discardSink{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Engine{
		config:    config,
		machine:   NewMachine(config.Options, deps.Localizer),
		directory: deps.Directory,
		extractor: deps.Extractor,
		store:     deps.Store,
		scheduler: deps.Scheduler,
		sink:      deps.Sink,
		now:       deps.Now,
		logger:    log.WithFields(map[string]interface{}{"component": "conversation-engine"}),
	}, nil
}

// OnSanction registers fn to run after a sanctioned session is saved.
func (e *Engine) OnSanction(fn func(context.Context, models.Sanction)) {
	e.onSanction = append(e.onSanction, fn)
}

func (e *Engine) Machine() *Machine {
	return e.machine
}

// Start creates a session and delivers the welcome message. An unsupported
// language falls back to the configured default.
func (e *Engine) Start(ctx context.Context, lang string) (*Reply, error) {
	language, ok := i18n.ParseLanguage(lang)
	if !ok {
		language = e.config.Language
	}

	now := e.now()
	s := e.machine.NewSession(uuid.New().String(), language, now)
	if err := e.store.Save(ctx, &s); err != nil {
		return nil, fmt.Errorf("save new session: %w", err)
	}

	msg := e.machine.Welcome(language)
	msg.Timestamp = now
	e.sink.Deliver(ctx, Delivery{SessionID: s.ID, State: StateGreeting, Message: msg})

	e.logger.Info("Conversation started", map[string]interface{}{
		"sessionId": s.ID,
		"language":  language,
	})
	return &Reply{Session: s, Messages: []models.Message{msg}}, nil
}

// Handle runs one text turn.
func (e *Engine) Handle(ctx context.Context, sessionID, text string) (*Reply, error) {
	return e.turn(ctx, sessionID, EventText, func(ctx context.Context, s *models.Session) (Event, error) {
		ev := TextEvent(text, time.Time{})
		if State(s.State) == StateAskPhone {
			if mobile, ok := ParsePhone(text); ok {
				profile, err := e.directory.FindByMobile(ctx, mobile)
				if err != nil && !errors.Is(err, customer.ErrNotFound) {
					e.logger.Warn("Customer lookup failed", map[string]interface{}{
						"sessionId": s.ID,
						"error":     err.Error(),
					})
				}
				ev.Lookup = &Lookup{Mobile: mobile, Customer: profile, Err: err}
			}
		}
		return ev, e.scheduler.Wait(ctx, e.config.Options.Delays.Thinking)
	})
}

// Upload runs one document turn. Constraint violations are reported to the
// user without calling the extractor.
func (e *Engine) Upload(ctx context.Context, sessionID string, upload document.Upload) (*Reply, error) {
	return e.turn(ctx, sessionID, EventDocument, func(ctx context.Context, s *models.Session) (Event, error) {
		ev := Event{Kind: EventDocument, Document: &DocumentOutcome{Upload: upload}}
		if State(s.State) != StateUploadSalary {
			return ev, nil
		}

		if err := document.Validate(upload, e.config.Limits); err != nil {
			ev.Document.Violation = err
			metrics.DocumentUploads.WithLabelValues("rejected").Inc()
			return ev, nil
		}

		expected := s.UserName
		if s.Customer != nil {
			expected = s.Customer.Name
		}
		result, err := e.extractor.Extract(ctx, upload, expected)
		if err != nil && ctx.Err() != nil {
			return ev, err
		}
		ev.Document.Result, ev.Document.Err = result, err

		outcome := "extracted"
		if err != nil || result == nil || !result.Success {
			outcome = "failed"
		}
		metrics.DocumentUploads.WithLabelValues(outcome).Inc()
		return ev, nil
	})
}

// Session returns a snapshot of the stored session.
func (e *Engine) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	return e.store.Get(ctx, sessionID)
}

// End discards the session.
func (e *Engine) End(ctx context.Context, sessionID string) error {
	if err := e.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	e.logger.Info("Conversation ended", map[string]interface{}{"sessionId": sessionID})
	return nil
}

type prepareFunc func(ctx context.Context, s *models.Session) (Event, error)

func (e *Engine) turn(ctx context.Context, sessionID string, kind EventKind, prepare prepareFunc) (*Reply, error) {
	started := time.Now()
	defer func() {
		metrics.ConversationTurnDuration.WithLabelValues(string(kind)).Observe(time.Since(started).Seconds())
	}()

	unlock, err := e.store.Lock(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("lock session %s: %w", sessionID, err)
	}
	defer unlock()

	current, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ev, err := prepare(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("prepare %s turn: %w", kind, err)
	}
	ev.At = e.now()

	turn := e.machine.Transition(*current, ev)
	next := turn.Session

	// Saved before delivery, which ctx may cut short.
	if err := e.store.Save(context.WithoutCancel(ctx), &next); err != nil {
		return nil, fmt.Errorf("save session %s: %w", sessionID, err)
	}

	e.record(&turn, kind)
	messages := e.deliver(ctx, sessionID, turn.Emissions)

	if turn.Sanction != nil {
		for _, fn := range e.onSanction {
			fn(context.WithoutCancel(ctx), *turn.Sanction)
		}
	}

	return &Reply{Session: next, Messages: messages}, nil
}

// deliver waits out each emission's delay then hands it to the sink. Once
// ctx is done the remaining emissions are delivered without waiting.
func (e *Engine) deliver(ctx context.Context, sessionID string, emissions []Emission) []models.Message {
	messages := make([]models.Message, 0, len(emissions))
	waiting := true
	for _, em := range emissions {
		if waiting && em.After > 0 {
			if err := e.scheduler.Wait(ctx, em.After); err != nil {
				waiting = false
			}
		}
		msg := em.Message
		msg.Timestamp = e.now()
		e.sink.Deliver(context.WithoutCancel(ctx), Delivery{SessionID: sessionID, State: em.State, Message: msg})
		messages = append(messages, msg)
	}
	return messages
}

func (e *Engine) record(turn *Turn, kind EventKind) {
	to := turn.State()
	metrics.ConversationTurns.WithLabelValues(string(turn.From), string(kind)).Inc()
	if to != turn.From {
		metrics.ConversationTransitions.WithLabelValues(string(turn.From), string(to)).Inc()
	}
	if r := turn.Eligibility; r != nil {
		metrics.EligibilityOutcomes.WithLabelValues(string(r.Status), string(r.Reason)).Inc()
	}
	if d := turn.Credit; d != nil {
		outcome := "approved"
		if !d.Approved {
			outcome = "declined"
		}
		metrics.CreditCheckOutcomes.WithLabelValues(outcome, string(d.Reason)).Inc()
	}
	if turn.Sanction != nil {
		metrics.SanctionsIssued.Inc()
	}

	e.logger.Info("Conversation turn processed", map[string]interface{}{
		"sessionId": turn.Session.ID,
		"event":     kind,
		"from":      turn.From,
		"to":        to,
		"emissions": len(turn.Emissions),
	})
}
