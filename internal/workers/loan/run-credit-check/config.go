package runcreditcheck

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
		Timeout: 5 * time.Second,
	}
}
