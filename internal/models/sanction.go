// internal/models/sanction.go
package models

import "time"

// Sanction is the final approval record produced when a loan is sanctioned.
type Sanction struct {
	Reference    string    `json:"reference"`
	SessionID    string    `json:"sessionId"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Mobile       string    `json:"mobile"`
	Email        string    `json:"email,omitempty"`
	Amount       int64     `json:"amount"`
	Tenure       int       `json:"tenure"`
	InterestRate float64   `json:"interestRate"`
	EMI          int64     `json:"emi"`
	TotalPayment int64     `json:"totalPayment"`
	IssuedAt     time.Time `json:"issuedAt"`
}
