// internal/models/customer.go
package models

import "strings"

// ExistingLoan is one active installment the customer already pays.
type ExistingLoan struct {
	LoanType string `json:"loanType" db:"loan_type"`
	Bank     string `json:"bank" db:"bank"`
	EMI      int64  `json:"emi" db:"emi"`
}

// CustomerProfile is read-only to the conversation engine once fetched.
type CustomerProfile struct {
	CustomerID       string         `json:"customerId" db:"customer_id"`
	Name             string         `json:"name" db:"name"`
	Age              int            `json:"age" db:"age"`
	City             string         `json:"city,omitempty" db:"city"`
	Mobile           string         `json:"mobile" db:"mobile"`
	Email            string         `json:"email,omitempty" db:"email"`
	PAN              string         `json:"pan,omitempty" db:"pan"`
	MonthlySalary    int64          `json:"monthlySalary" db:"monthly_salary"`
	JobTitle         string         `json:"jobTitle,omitempty" db:"job_title"`
	Company          string         `json:"company,omitempty" db:"company"`
	ExperienceYears  int            `json:"experienceYears,omitempty" db:"experience_years"`
	EmploymentType   string         `json:"employmentType,omitempty" db:"employment_type"`
	CreditScore      int            `json:"creditScore" db:"credit_score"`
	PreApprovedLimit int64          `json:"preApprovedLimit" db:"pre_approved_limit"`
	TotalExistingEMI int64          `json:"totalExistingEmi" db:"total_existing_emi"`
	ExistingLoans    []ExistingLoan `json:"existingLoans,omitempty"`
}

// FirstName returns the first word of the customer's name.
func (c *CustomerProfile) FirstName() string {
	fields := strings.Fields(c.Name)
	if len(fields) == 0 {
		return c.Name
	}
	return fields[0]
}
