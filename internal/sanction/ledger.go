// Package sanction records issued sanctions.
package sanction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"loan-assistant/internal/models"
)

var ErrDuplicate = errors.New("sanction already recorded")

type Ledger interface {
	Record(ctx context.Context, s models.Sanction) error
}

const insertSanction = `
	INSERT INTO sanctions (reference, session_id, customer_id, customer_name, mobile,
	                       amount, tenure, interest_rate, emi, total_payment, issued_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (reference) DO NOTHING`

// PostgresLedger writes to the sanctions table.
type PostgresLedger struct {
	db *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) Record(ctx context.Context, s models.Sanction) error {
	res, err := l.db.ExecContext(ctx, insertSanction,
		s.Reference, s.SessionID, s.CustomerID, s.CustomerName, s.Mobile,
		s.Amount, s.Tenure, s.InterestRate, s.EMI, s.TotalPayment, s.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sanction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrDuplicate, s.Reference)
	}
	return nil
}

// MemoryLedger keeps sanctions in process, in issue order.
type MemoryLedger struct {
	mu      sync.Mutex
	entries []models.Sanction
	refs    map[string]bool
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{refs: make(map[string]bool)}
}

func (l *MemoryLedger) Record(_ context.Context, s models.Sanction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refs[s.Reference] {
		return fmt.Errorf("%w: %s", ErrDuplicate, s.Reference)
	}
	l.refs[s.Reference] = true
	l.entries = append(l.entries, s)
	return nil
}

func (l *MemoryLedger) Entries() []models.Sanction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Sanction(nil), l.entries...)
}
