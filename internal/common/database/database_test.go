package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-assistant/internal/common/config"
	"loan-assistant/internal/models"
)

func newMockClient(t *testing.T) (*PostgresClient, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresClient{DB: db}, mock
}

// ==========================
// Postgres Tests
// ==========================

func TestMigrate(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS existing_loans").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS sanctions").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, client.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_StopsOnError(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS existing_loans").WillReturnError(errors.New("permission denied"))

	err := client.Migrate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedCustomers(t *testing.T) {
	client, mock := newMockClient(t)

	profile := models.CustomerProfile{
		CustomerID: "CUST001", Name: "Rahul Sharma", Age: 32, Mobile: "9876543210",
		MonthlySalary: 75000, CreditScore: 750, PreApprovedLimit: 400000, TotalExistingEMI: 15000,
		ExistingLoans: []models.ExistingLoan{{LoanType: "Car Loan", Bank: "HDFC Bank", EMI: 15000}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO customers")).
		WithArgs("CUST001", "Rahul Sharma", 32, "", "9876543210", "", "", int64(75000),
			"", "", 0, "", 750, int64(400000), int64(15000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM existing_loans")).
		WithArgs("CUST001").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO existing_loans")).
		WithArgs("CUST001", "Car Loan", "HDFC Bank", int64(15000)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, client.SeedCustomers(context.Background(), []models.CustomerProfile{profile}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedCustomers_RollsBackOnFailure(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO customers")).WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	err := client.SeedCustomers(context.Background(), []models.CustomerProfile{{CustomerID: "CUST009"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CUST009")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Redis Tests
// ==========================

func TestRedisPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client := NewRedis(config.RedisConfig{Address: mr.Addr()})
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))

	mr.Close()
	assert.Error(t, client.Ping(context.Background()))
}
