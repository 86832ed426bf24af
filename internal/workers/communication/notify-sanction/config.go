package notifysanction

import (
	"time"

	"loan-assistant/internal/common/config"
	"loan-assistant/internal/workers/job"
)

type Config struct {
	Timeout      time.Duration
	SMSEnabled   bool
	EmailEnabled bool
	Validator    job.Validator
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    15 * time.Second,
		SMSEnabled: true,
	}
}

// ConfigFrom enables the channels switched on in the notifications section.
func ConfigFrom(n config.NotificationConfig) *Config {
	cfg := LoadConfig()
	cfg.SMSEnabled = n.SMS.Enabled
	cfg.EmailEnabled = n.Email.Enabled
	return cfg
}
