//go:build unit

package repository

import (
	"context"

	sqlc "authentithief/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) GetScanRecord(ctx context.Context, db sqlc.DBTX, identityKey string) (sqlc.ScanRecords, error) {
	args := m.Called(ctx, db, identityKey)
	return args.Get(0).(sqlc.ScanRecords), args.Error(1)
}

func (m *MockQueries) UpsertScanRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertScanRecordParams) (sqlc.UpsertScanRecordRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.UpsertScanRecordRow), args.Error(1)
}

func (m *MockQueries) EnsureLedgerAccount(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureLedgerAccountParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) DebitLedgerAccount(ctx context.Context, db sqlc.DBTX, arg sqlc.DebitLedgerAccountParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) GetLedgerBalance(ctx context.Context, db sqlc.DBTX, owner string) (int64, error) {
	args := m.Called(ctx, db, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) LockLedgerAppends(ctx context.Context, db sqlc.DBTX) error {
	args := m.Called(ctx, db)
	return args.Error(0)
}

func (m *MockQueries) InsertLedgerProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerProductParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) ListLedgerProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLedgerProductsParams) ([]sqlc.LedgerProducts, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.LedgerProducts), args.Error(1)
}

func (m *MockQueries) CountLedgerProducts(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation for MockQueries
func (m *MockQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// fakeUoW hands the mock itself to the callback as the DBTX. withinErr
// simulates a transaction that could not be opened.
type fakeUoW struct {
	db        sqlc.DBTX
	withinErr error
	within    int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx sqlc.DBTX) error) error {
	u.within++
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u.db)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, u.db)
}
