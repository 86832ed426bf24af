// Package eligibility decides whether a customer may borrow a requested amount
// and whether the final affordability check passes.
package eligibility

import (
	"fmt"

	"loan-assistant/internal/loan/emi"
	"loan-assistant/internal/models"
)

const (
	MinAge                = 21
	MaxAge                = 60
	MinSalary             = 15000
	MinCreditScore        = 700
	MaxEMIRatio           = 50.0
	ConditionalMultiplier = 2
)

type Status string

const (
	StatusApproved    Status = "approved"
	StatusConditional Status = "conditional"
	StatusDeclined    Status = "declined"
)

type Reason string

const (
	ReasonAge        Reason = "age"
	ReasonSalary     Reason = "salary"
	ReasonCredit     Reason = "credit"
	ReasonInstant    Reason = "instant"
	ReasonSalarySlip Reason = "salary_slip"
	ReasonExcess     Reason = "excess"
	ReasonEMIRatio   Reason = "emi_ratio"
)

// Result is the outcome of Evaluate. Params holds the values a localized
// message needs, keyed by placeholder name.
type Result struct {
	Status  Status                 `json:"status"`
	Reason  Reason                 `json:"reason"`
	Message string                 `json:"message"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

func (r Result) Approved() bool    { return r.Status == StatusApproved }
func (r Result) Conditional() bool { return r.Status == StatusConditional }
func (r Result) Declined() bool    { return r.Status == StatusDeclined }

// Evaluate applies the rules in order and returns the first that matches.
func Evaluate(customer models.CustomerProfile, amount int64) Result {
	switch {
	case customer.Age < MinAge || customer.Age > MaxAge:
		return Result{
			Status:  StatusDeclined,
			Reason:  ReasonAge,
			Message: fmt.Sprintf("Age restriction: %d years (Required: %d-%d)", customer.Age, MinAge, MaxAge),
			Params:  map[string]interface{}{"age": customer.Age},
		}
	case customer.MonthlySalary < MinSalary:
		return Result{
			Status:  StatusDeclined,
			Reason:  ReasonSalary,
			Message: "Monthly salary below ₹15,000",
			Params:  map[string]interface{}{"salary": customer.MonthlySalary},
		}
	case customer.CreditScore < MinCreditScore:
		return Result{
			Status:  StatusDeclined,
			Reason:  ReasonCredit,
			Message: fmt.Sprintf("Credit score %d is below %d", customer.CreditScore, MinCreditScore),
			Params:  map[string]interface{}{"score": customer.CreditScore},
		}
	case amount <= customer.PreApprovedLimit:
		return Result{
			Status:  StatusApproved,
			Reason:  ReasonInstant,
			Message: "Instant approval available!",
		}
	case amount <= ConditionalMultiplier*customer.PreApprovedLimit:
		return Result{
			Status:  StatusConditional,
			Reason:  ReasonSalarySlip,
			Message: "Needs salary slip verification",
		}
	default:
		return Result{
			Status:  StatusDeclined,
			Reason:  ReasonExcess,
			Message: fmt.Sprintf("Amount exceeds %dx pre-approved limit", ConditionalMultiplier),
			Params:  map[string]interface{}{"limit": customer.PreApprovedLimit},
		}
	}
}

// Decision is the outcome of the final credit check.
type Decision struct {
	Approved bool    `json:"approved"`
	Reason   Reason  `json:"reason,omitempty"`
	Ratio    float64 `json:"ratio"`
	Message  string  `json:"message"`
}

// CreditCheck approves when the score is at least MinCreditScore and the
// EMI-to-income ratio, new installment included, is at most MaxEMIRatio.
// When both fail the ratio is reported.
func CreditCheck(customer models.CustomerProfile, newEMI int64) Decision {
	ratio := emi.Ratio(customer.TotalExistingEMI, newEMI, customer.MonthlySalary)
	return Decide(customer.CreditScore, ratio)
}

// Decide is CreditCheck for an already computed ratio.
func Decide(creditScore int, ratio float64) Decision {
	switch {
	case ratio > MaxEMIRatio:
		return Decision{
			Reason:  ReasonEMIRatio,
			Ratio:   ratio,
			Message: "EMI/Income ratio exceeds 50%",
		}
	case creditScore < MinCreditScore:
		return Decision{
			Reason:  ReasonCredit,
			Ratio:   ratio,
			Message: "Credit score below minimum requirement",
		}
	default:
		return Decision{
			Approved: true,
			Ratio:    ratio,
			Message:  "Credit check passed",
		}
	}
}
