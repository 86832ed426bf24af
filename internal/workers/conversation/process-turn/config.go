package processturn

import (
	"time"

	"loan-assistant/internal/workers/job"
)

// Config bounds one turn. A turn waits out the configured message delays,
// so Timeout must exceed their sum when latency simulation is enabled.
type Config struct {
	Timeout   time.Duration
	Validator job.Validator
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
