package conversation

import (
	"time"

	"loan-assistant/internal/document"
	"loan-assistant/internal/i18n"
	"loan-assistant/internal/loan/eligibility"
	"loan-assistant/internal/loan/emi"
	"loan-assistant/internal/models"
)

type EventKind string

const (
	EventText     EventKind = "text"
	EventDocument EventKind = "document"
)

// Lookup is the directory result for the phone number found in a text event.
type Lookup struct {
	Mobile   string
	Customer *models.CustomerProfile
	Err      error
}

// DocumentOutcome is what happened to an uploaded file before the machine
// sees it: a constraint violation, an extraction failure or a result.
type DocumentOutcome struct {
	Upload    document.Upload
	Violation error
	Result    *document.Result
	Err       error
}

// Event is one user action. Lookup and Document carry the results of I/O the
// engine performed on the machine's behalf, so Transition stays pure.
type Event struct {
	Kind     EventKind
	Text     string
	Lookup   *Lookup
	Document *DocumentOutcome
	At       time.Time
}

func TextEvent(text string, at time.Time) Event {
	return Event{Kind: EventText, Text: text, At: at}
}

// Emission is a message to deliver After the previous one. State is the
// conversation state in force once it is delivered.
type Emission struct {
	After   time.Duration
	State   State
	Message models.Message
}

// Turn is the result of one transition.
type Turn struct {
	From        State
	Session     models.Session
	Emissions   []Emission
	Eligibility *eligibility.Result
	Credit      *eligibility.Decision
	Sanction    *models.Sanction
}

func (t *Turn) State() State {
	return State(t.Session.State)
}

func (t *Turn) emit(after time.Duration, state State, msg models.Message) {
	t.Emissions = append(t.Emissions, Emission{After: after, State: state, Message: msg})
}

// Options tune behaviour left open by the product: bounds on tenure, a
// re-prompt for unconfirmed input and salary reconciliation are all off by
// default.
type Options struct {
	InterestRate        float64  `mapstructure:"interest_rate"`
	ReferencePrefix     string   `mapstructure:"reference_prefix"`
	EnforceTenureBounds bool     `mapstructure:"enforce_tenure_bounds"`
	RepromptOnConfirm   bool     `mapstructure:"reprompt_on_confirm"`
	ReconcileSalary     bool     `mapstructure:"reconcile_salary"`
	SalaryTolerance     float64  `mapstructure:"salary_tolerance"`
	PhoneSuggestions    []string `mapstructure:"phone_suggestions"`
	AmountSuggestions   []int64  `mapstructure:"amount_suggestions"`
	Delays              Delays   `mapstructure:"delays"`
}

func DefaultOptions() Options {
	return Options{
		InterestRate:      emi.DefaultAnnualRate,
		ReferencePrefix:   "TATA",
		SalaryTolerance:   0.10,
		PhoneSuggestions:  []string{"9876543210", "9876543212", "9876543214"},
		AmountSuggestions: []int64{200000, 300000},
		Delays:            DefaultDelays(),
	}
}

type handlerFunc func(m *Machine, t *Turn, ev Event)

// transitions maps every (state, event kind) pair that has a handler. Any
// pair not listed here, including all input in terminal states, gets the
// fallback reply.
var transitions = map[State]map[EventKind]handlerFunc{
	StateGreeting:      {EventText: (*Machine).onGreeting},
	StateAskPhone:      {EventText: (*Machine).onPhone},
	StateShowProfile:   {},
	StateAskAmount:     {EventText: (*Machine).onAmount},
	StateAskTenure:     {EventText: (*Machine).onTenure},
	StateAskTenureCond: {EventText: (*Machine).onTenure},
	StateUploadSalary:  {EventText: (*Machine).onUploadText, EventDocument: (*Machine).onDocument},
	StateConfirm:       {EventText: (*Machine).onConfirm},
	StateCreditCheck:   {},
	StateSanctionReady: {EventText: (*Machine).onSanction},
	StateRejected:      {},
	StateSanctioned:    {},
}

// Machine is the dialogue state machine. It holds no per-conversation state.
type Machine struct {
	opts      Options
	localizer i18n.Localizer
}

func NewMachine(opts Options, localizer i18n.Localizer) *Machine {
	if localizer == nil {
		localizer = i18n.NewCatalog()
	}
	return &Machine{opts: opts, localizer: localizer}
}

func (m *Machine) Options() Options {
	return m.opts
}

// NewSession returns a session in the greeting state.
func (m *Machine) NewSession(id string, lang i18n.Language, now time.Time) models.Session {
	return models.Session{
		ID:           id,
		Language:     string(lang),
		State:        string(StateGreeting),
		InterestRate: m.opts.InterestRate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Welcome is the first message of every conversation.
func (m *Machine) Welcome(lang i18n.Language) models.Message {
	return m.bot(lang, models.AgentMaster, i18n.KeyWelcome, nil)
}

// Transition applies ev to s and returns the next session with the messages
// to deliver. It performs no I/O and never fails: invalid input leaves the
// state unchanged and produces a prompt.
func (m *Machine) Transition(s models.Session, ev Event) Turn {
	from := State(s.State)
	turn := Turn{From: from, Session: s}

	handler, ok := transitions[from][ev.Kind]
	if !ok {
		m.fallback(&turn)
	} else {
		handler(m, &turn, ev)
	}

	if !ev.At.IsZero() {
		turn.Session.Touch(ev.At)
	}
	return turn
}

func (m *Machine) fallback(t *Turn) {
	t.emit(0, t.From, m.bot(m.lang(t), models.AgentMaster, i18n.KeyFallback, nil))
}

func (m *Machine) lang(t *Turn) i18n.Language {
	lang, _ := i18n.ParseLanguage(t.Session.Language)
	return lang
}

func (m *Machine) text(lang i18n.Language, key i18n.Key, params i18n.Params) string {
	return m.localizer.Translate(key, lang, params)
}

func (m *Machine) bot(lang i18n.Language, agent models.Agent, key i18n.Key, params i18n.Params) models.Message {
	return models.Message{
		Speaker: models.SpeakerBot,
		Agent:   agent,
		Text:    m.text(lang, key, params),
	}
}

func (m *Machine) tenureSuggestions(lang i18n.Language) []string {
	out := make([]string, 0, len(emi.SuggestedTenures))
	for _, months := range emi.SuggestedTenures {
		out = append(out, m.text(lang, i18n.KeyMonths, i18n.Params{"months": months}))
	}
	return out
}
