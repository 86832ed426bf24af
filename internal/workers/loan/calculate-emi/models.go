package calculateemi

import "loan-assistant/internal/loan/emi"

type Input struct {
	Principal       int64   `json:"principal"`
	Tenure          int     `json:"tenure"`
	AnnualRate      float64 `json:"annualRate,omitempty"`
	IncludeSchedule bool    `json:"includeSchedule,omitempty"`
	StartDate       string  `json:"startDate,omitempty"` // YYYY-MM-DD, defaults to today
}

type Output struct {
	emi.Quote
	Schedule []emi.Installment `json:"schedule,omitempty"`
}
