package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	sqlc "authentithief/internal/infra/sqlc/generated"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	baseBackoff = 100 * time.Millisecond
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// PoolProvider hands out the connection pool, possibly opening it on first use.
type PoolProvider interface {
	Get(ctx context.Context) (*pgxpool.Pool, error)
}

type PostgresUoW struct {
	pools PoolProvider
}

func NewPostgresUoW(pools PoolProvider) shared.UnitOfWork {
	return &PostgresUoW{pools: pools}
}

// Within runs fn in a ReadCommitted transaction, retrying serialization
// failures and deadlocks.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx sqlc.DBTX) error) error {
	pool, err := u.pools.Get(ctx)
	if err != nil {
		return err
	}
	return runInTx(ctx, pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// WithDB runs fn against the pool with implicit per-statement transactions.
func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pool, err := u.pools.Get(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func runInTx(ctx context.Context, pool *pgxpool.Pool, options pgx.TxOptions, fn func(ctx context.Context, tx sqlc.DBTX) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, ErrTransactionBegin)
		}

		err = fn(ctx, pgxTx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, ErrTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, baseBackoff)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return ErrMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
