package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"loan-assistant/internal/common/config"
	"loan-assistant/internal/models"

	_ "github.com/lib/pq"
)

// schema creates the tables read by the customer directory and written by
// the sanction ledger. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id        TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		age                INTEGER NOT NULL,
		city               TEXT,
		mobile             TEXT NOT NULL UNIQUE,
		email              TEXT,
		pan                TEXT,
		monthly_salary     BIGINT NOT NULL,
		job_title          TEXT,
		company            TEXT,
		experience_years   INTEGER,
		employment_type    TEXT,
		credit_score       INTEGER NOT NULL,
		pre_approved_limit BIGINT NOT NULL,
		total_existing_emi BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS existing_loans (
		id          SERIAL PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES customers(customer_id) ON DELETE CASCADE,
		loan_type   TEXT NOT NULL,
		bank        TEXT NOT NULL,
		emi         BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sanctions (
		reference     TEXT PRIMARY KEY,
		session_id    TEXT NOT NULL,
		customer_id   TEXT NOT NULL,
		customer_name TEXT NOT NULL,
		mobile        TEXT NOT NULL,
		amount        BIGINT NOT NULL,
		tenure        INTEGER NOT NULL,
		interest_rate NUMERIC(5,2) NOT NULL,
		emi           BIGINT NOT NULL,
		total_payment BIGINT NOT NULL,
		issued_at     TIMESTAMPTZ NOT NULL
	)`,
}

const (
	upsertCustomer = `
		INSERT INTO customers (customer_id, name, age, city, mobile, email, pan, monthly_salary,
		                       job_title, company, experience_years, employment_type,
		                       credit_score, pre_approved_limit, total_existing_emi)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (customer_id) DO UPDATE SET
		    monthly_salary = EXCLUDED.monthly_salary,
		    credit_score = EXCLUDED.credit_score,
		    pre_approved_limit = EXCLUDED.pre_approved_limit,
		    total_existing_emi = EXCLUDED.total_existing_emi`

	deleteExistingLoans = `DELETE FROM existing_loans WHERE customer_id = $1`

	insertExistingLoan = `
		INSERT INTO existing_loans (customer_id, loan_type, bank, emi)
		VALUES ($1, $2, $3, $4)`
)

// PostgresClient wraps the SQL database connection.
type PostgresClient struct {
	DB *sql.DB
}

func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Migrate creates the loan tables if they do not exist.
func (c *PostgresClient) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

// SeedCustomers upserts profiles and replaces their existing loans, one
// transaction per profile.
func (c *PostgresClient) SeedCustomers(ctx context.Context, profiles []models.CustomerProfile) error {
	for _, p := range profiles {
		if err := c.seedCustomer(ctx, p); err != nil {
			return fmt.Errorf("seed customer %s: %w", p.CustomerID, err)
		}
	}
	return nil
}

func (c *PostgresClient) seedCustomer(ctx context.Context, p models.CustomerProfile) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, upsertCustomer,
		p.CustomerID, p.Name, p.Age, p.City, p.Mobile, p.Email, p.PAN, p.MonthlySalary,
		p.JobTitle, p.Company, p.ExperienceYears, p.EmploymentType,
		p.CreditScore, p.PreApprovedLimit, p.TotalExistingEMI,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteExistingLoans, p.CustomerID); err != nil {
		return err
	}
	for _, loan := range p.ExistingLoans {
		if _, err := tx.ExecContext(ctx, insertExistingLoan, p.CustomerID, loan.LoanType, loan.Bank, loan.EMI); err != nil {
			return err
		}
	}
	return tx.Commit()
}
