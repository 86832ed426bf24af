// Package emi computes equated monthly installments and their breakdowns.
package emi

import (
	"errors"
	"fmt"
	"math"
)

// DefaultAnnualRate is the fixed rate quoted for every loan in this version.
const DefaultAnnualRate = 10.5

// Tenure bounds shown by the EMI calculator widget. They are only enforced by
// the conversation when tenure bounds are switched on.
const (
	MinTenure = 6
	MaxTenure = 60
)

// MaxTenureMonths is the longest tenure any quote or schedule accepts.
const MaxTenureMonths = 600

var (
	// PreviewTenures are shown as EMI previews after an instant approval.
	PreviewTenures = []int{12, 24, 36}
	// SuggestedTenures are offered as quick replies when asking for tenure.
	SuggestedTenures = []int{24, 36, 48}
)

var (
	ErrInvalidInput     = errors.New("invalid emi input")
	ErrInvalidPrincipal = fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	ErrInvalidRate      = fmt.Errorf("%w: annual rate must be positive", ErrInvalidInput)
	ErrInvalidTenure    = fmt.Errorf("%w: tenure must be between 1 and %d months", ErrInvalidInput, MaxTenureMonths)
	ErrNonFinite        = errors.New("emi computation produced a non-finite or out-of-range value")
	// ErrDegenerate means rounding leaves an installment below one currency
	// unit, or installments that no longer repay the principal.
	ErrDegenerate = errors.New("emi too small to repay the principal")
)

// Calculate returns the installment rounded to the nearest currency unit:
//
//	r   = annualRatePercent / (12 × 100)
//	EMI = P × r × (1+r)^n / ((1+r)^n − 1)
func Calculate(principal int64, annualRatePercent float64, tenureMonths int) (int64, error) {
	if err := validate(principal, annualRatePercent, tenureMonths); err != nil {
		return 0, err
	}

	r := annualRatePercent / (12 * 100)
	factor := math.Pow(1+r, float64(tenureMonths))
	value := float64(principal) * r * factor / (factor - 1)

	// float64(math.MaxInt64) is 2^63, itself out of range, hence >=.
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Round(value)*float64(tenureMonths) >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: principal=%d rate=%v tenure=%d", ErrNonFinite, principal, annualRatePercent, tenureMonths)
	}

	installment := int64(math.Round(value))
	if installment < 1 || installment*int64(tenureMonths) < principal {
		return 0, fmt.Errorf("%w: principal=%d rate=%v tenure=%d", ErrDegenerate, principal, annualRatePercent, tenureMonths)
	}
	return installment, nil
}

func validate(principal int64, annualRatePercent float64, tenureMonths int) error {
	if principal <= 0 {
		return ErrInvalidPrincipal
	}
	if math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0) || annualRatePercent <= 0 {
		return ErrInvalidRate
	}
	if tenureMonths <= 0 || tenureMonths > MaxTenureMonths {
		return ErrInvalidTenure
	}
	return nil
}

// Quote is the full repayment picture for one principal, rate and tenure.
type Quote struct {
	Principal     int64   `json:"principal"`
	AnnualRate    float64 `json:"annualRate"`
	TenureMonths  int     `json:"tenureMonths"`
	EMI           int64   `json:"emi"`
	TotalPayment  int64   `json:"totalPayment"`
	TotalInterest int64   `json:"totalInterest"`
	PrincipalPct  float64 `json:"principalPct"`
	InterestPct   float64 `json:"interestPct"`
}

// NewQuote prices a loan. Calculate guarantees principal <= total payment <=
// MaxInt64, so both percentages are finite and non-negative.
func NewQuote(principal int64, annualRatePercent float64, tenureMonths int) (Quote, error) {
	installment, err := Calculate(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return Quote{}, err
	}

	total := installment * int64(tenureMonths)
	interest := total - principal

	return Quote{
		Principal:     principal,
		AnnualRate:    annualRatePercent,
		TenureMonths:  tenureMonths,
		EMI:           installment,
		TotalPayment:  total,
		TotalInterest: interest,
		PrincipalPct:  float64(principal) / float64(total) * 100,
		InterestPct:   float64(interest) / float64(total) * 100,
	}, nil
}

// Ratio is the share of monthly salary that goes to installments once the new
// EMI is added, in percent. A non-positive salary can never pass an
// affordability cap, so it yields +Inf.
func Ratio(existingEMI, newEMI, monthlySalary int64) float64 {
	if monthlySalary <= 0 {
		return math.Inf(1)
	}
	return float64(existingEMI+newEMI) / float64(monthlySalary) * 100
}

// InTenureBounds reports whether months lies within MinTenure..MaxTenure.
func InTenureBounds(months int) bool {
	return months >= MinTenure && months <= MaxTenure
}
