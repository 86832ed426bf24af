package calculateemi

import (
	"time"

	"loan-assistant/internal/loan/emi"
	"loan-assistant/internal/workers/job"
)

type Config struct {
	Timeout     time.Duration
	DefaultRate float64
	Validator   job.Validator
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     5 * time.Second,
		DefaultRate: emi.DefaultAnnualRate,
	}
}
