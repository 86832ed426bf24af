package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"loan-assistant/internal/models"
)

const (
	queryCustomerByMobile = `
		SELECT customer_id, name, age, city, mobile, email, pan, monthly_salary,
		       job_title, company, experience_years, employment_type,
		       credit_score, pre_approved_limit, total_existing_emi
		FROM customers
		WHERE mobile = $1`

	queryExistingLoans = `
		SELECT loan_type, bank, emi
		FROM existing_loans
		WHERE customer_id = $1
		ORDER BY emi DESC`
)

// PostgresDirectory reads profiles from the customers and existing_loans
// tables.
type PostgresDirectory struct {
	db *sql.DB
}

func NewPostgresDirectory(db *sql.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) FindByMobile(ctx context.Context, mobile string) (*models.CustomerProfile, error) {
	var (
		p                                          models.CustomerProfile
		city, email, pan, jobTitle, company, empTy sql.NullString
		experience                                 sql.NullInt64
	)

	err := d.db.QueryRowContext(ctx, queryCustomerByMobile, mobile).Scan(
		&p.CustomerID, &p.Name, &p.Age, &city, &p.Mobile, &email, &pan, &p.MonthlySalary,
		&jobTitle, &company, &experience, &empTy,
		&p.CreditScore, &p.PreApprovedLimit, &p.TotalExistingEMI,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query customer: %w", err)
	}

	p.City = city.String
	p.Email = email.String
	p.PAN = pan.String
	p.JobTitle = jobTitle.String
	p.Company = company.String
	p.ExperienceYears = int(experience.Int64)
	p.EmploymentType = empTy.String

	loans, err := d.existingLoans(ctx, p.CustomerID)
	if err != nil {
		return nil, err
	}
	p.ExistingLoans = loans

	return &p, nil
}

func (d *PostgresDirectory) existingLoans(ctx context.Context, customerID string) ([]models.ExistingLoan, error) {
	rows, err := d.db.QueryContext(ctx, queryExistingLoans, customerID)
	if err != nil {
		return nil, fmt.Errorf("query existing loans: %w", err)
	}
	defer rows.Close()

	var loans []models.ExistingLoan
	for rows.Next() {
		var loan models.ExistingLoan
		if err := rows.Scan(&loan.LoanType, &loan.Bank, &loan.EMI); err != nil {
			return nil, fmt.Errorf("scan existing loan: %w", err)
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}
