package checkeligibility

import (
	"time"

	"loan-assistant/internal/workers/job"
)

type Config struct {
	Timeout   time.Duration
	Validator job.Validator
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
