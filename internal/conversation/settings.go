package conversation

import (
	"time"

	"loan-assistant/internal/common/config"
	"loan-assistant/internal/document"
	"loan-assistant/internal/i18n"
)

// ConfigFrom builds the engine configuration from the application config.
// Zero values keep the engine defaults.
func ConfigFrom(engine config.EngineConfig, docs config.DocumentsConfig) *Config {
	cfg := DefaultConfig()

	if lang, ok := i18n.ParseLanguage(engine.Language); ok {
		cfg.Language = lang
	}

	o := &cfg.Options
	if engine.InterestRate > 0 {
		o.InterestRate = engine.InterestRate
	}
	if engine.ReferencePrefix != "" {
		o.ReferencePrefix = engine.ReferencePrefix
	}
	o.EnforceTenureBounds = engine.EnforceTenureBounds
	o.RepromptOnConfirm = engine.RepromptOnConfirm
	o.ReconcileSalary = engine.ReconcileSalary
	if engine.SalaryTolerance > 0 {
		o.SalaryTolerance = engine.SalaryTolerance
	}
	if len(engine.PhoneSuggestions) > 0 {
		o.PhoneSuggestions = append([]string(nil), engine.PhoneSuggestions...)
	}
	if len(engine.AmountSuggestions) > 0 {
		o.AmountSuggestions = append([]int64(nil), engine.AmountSuggestions...)
	}

	d := engine.Delays
	setDelay(&o.Delays.Thinking, d.Thinking)
	setDelay(&o.Delays.FollowUp, d.FollowUp)
	setDelay(&o.Delays.CreditCheck, d.CreditCheck)
	setDelay(&o.Delays.Sanction, d.Sanction)
	setDelay(&o.Delays.DocumentVerify, d.DocumentVerify)
	setDelay(&o.Delays.DocumentToCredit, d.DocumentToCredit)

	if docs.MaxSizeBytes > 0 {
		cfg.Limits.MaxSize = docs.MaxSizeBytes
	}
	if len(docs.AllowedTypes) > 0 {
		cfg.Limits.AllowedTypes = append([]string(nil), docs.AllowedTypes...)
	}

	return cfg
}

func setDelay(dst *time.Duration, ms int) {
	if ms > 0 {
		*dst = config.GetDuration(ms)
	}
}

// SchedulerFrom returns NoDelay unless latency simulation is switched on.
func SchedulerFrom(engine config.EngineConfig) Scheduler {
	if !engine.SimulateLatency {
		return NoDelay{}
	}
	return Clock{Factor: engine.DelayFactor}
}

// ExtractorFrom builds the mock extractor with the configured limits. The
// extractor latency applies only when simulation is on.
func ExtractorFrom(engine config.EngineConfig, docs config.DocumentsConfig) *document.MockExtractor {
	var min, max time.Duration
	if engine.SimulateLatency {
		min = config.GetDuration(docs.ExtractorLatency.Min)
		max = config.GetDuration(docs.ExtractorLatency.Max)
	}
	return document.NewMockExtractor(
		document.WithLimits(ConfigFrom(engine, docs).Limits),
		document.WithLatency(min, max),
	)
}
