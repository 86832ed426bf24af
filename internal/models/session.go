package models

import "time"

// Session is the state of one loan conversation. It is owned by the
// conversation engine and is never shared between conversations.
type Session struct {
	ID             string           `json:"id"`
	Language       string           `json:"language"`
	State          string           `json:"state"`
	UserName       string           `json:"userName,omitempty"`
	Customer       *CustomerProfile `json:"customer,omitempty"`
	LoanAmount     int64            `json:"loanAmount,omitempty"`
	Tenure         int              `json:"tenure,omitempty"`
	InterestRate   float64          `json:"interestRate"`
	EMI            int64            `json:"emi,omitempty"`
	EMIRatio       float64          `json:"emiRatio,omitempty"`
	Conditional    bool             `json:"conditional,omitempty"`
	SalaryVerified bool             `json:"salaryVerified,omitempty"`
	Reference      string           `json:"reference,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// HasCustomer reports whether phone verification has succeeded.
func (s *Session) HasCustomer() bool {
	return s.Customer != nil
}

// TotalPayment is EMI × tenure, or zero before a tenure is chosen.
func (s *Session) TotalPayment() int64 {
	return s.EMI * int64(s.Tenure)
}

// Touch updates the last activity timestamp
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
}
