package emi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one month of a repayment schedule.
type Installment struct {
	Month     int             `json:"month"`
	DueDate   time.Time       `json:"dueDate"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// Schedule splits each installment into principal and interest. Interest is
// charged on the outstanding balance at the monthly rate; the final month
// absorbs rounding so the balance closes at exactly zero. The schedule ends
// early if the balance is cleared before the last month. The first payment is
// due one month after start.
func Schedule(principal int64, annualRatePercent float64, tenureMonths int, start time.Time) ([]Installment, error) {
	installment, err := Calculate(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return nil, err
	}

	payment := decimal.NewFromInt(installment)
	monthlyRate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(1200))
	remaining := decimal.NewFromInt(principal)

	schedule := make([]Installment, 0, tenureMonths)
	for month := 1; month <= tenureMonths; month++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)

		if month == tenureMonths || principalPart.GreaterThan(remaining) {
			principalPart = remaining
		}

		remaining = remaining.Sub(principalPart)
		schedule = append(schedule, Installment{
			Month:     month,
			DueDate:   start.AddDate(0, month, 0),
			Payment:   principalPart.Add(interest),
			Principal: principalPart,
			Interest:  interest,
			Balance:   remaining,
		})
		if remaining.IsZero() {
			break
		}
	}

	return schedule, nil
}
