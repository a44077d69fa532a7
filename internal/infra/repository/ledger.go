package repository

import (
	"context"
	"errors"
	"strconv"

	"authentithief/internal/domain/product"
	"authentithief/internal/infra"
	"authentithief/internal/infra/repository/converter"
	sqlc "authentithief/internal/infra/sqlc/generated"
	"authentithief/internal/pkg/clock"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/pkg/keccak"
	"authentithief/internal/usecase/shared"

	"github.com/google/uuid"
)

type LedgerQueries interface {
	EnsureLedgerAccount(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureLedgerAccountParams) error
	DebitLedgerAccount(ctx context.Context, db sqlc.DBTX, arg sqlc.DebitLedgerAccountParams) (int64, error)
	GetLedgerBalance(ctx context.Context, db sqlc.DBTX, owner string) (int64, error)
	LockLedgerAppends(ctx context.Context, db sqlc.DBTX) error
	InsertLedgerProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerProductParams) (int64, error)
	ListLedgerProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLedgerProductsParams) ([]sqlc.LedgerProducts, error)
	CountLedgerProducts(ctx context.Context, db sqlc.DBTX) (int64, error)
}

// LedgerRepository is the Postgres-backed registry. Registration debits the
// fee and appends the product in one transaction; products are never updated
// or deleted.
type LedgerRepository struct {
	queries        LedgerQueries
	uow            shared.UnitOfWork
	clock          clock.Clock
	defaultBalance int64
}

var _ shared.Ledger = (*LedgerRepository)(nil)

func NewLedgerRepository(queries LedgerQueries, uow shared.UnitOfWork, clk clock.Clock, defaultBalance int64) *LedgerRepository {
	return &LedgerRepository{
		queries:        queries,
		uow:            uow,
		clock:          clk,
		defaultBalance: defaultBalance,
	}
}

func (r *LedgerRepository) Register(ctx context.Context, req shared.RegisterRequest) (product.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return product.Receipt{}, errs.Mark(errs.Wrap(err, "registration aborted"), errs.ErrLedgerRejected)
	}
	rec, owner, err := req.Normalize()
	if err != nil {
		return product.Receipt{}, err
	}

	ts := r.clock.Now().Unix()
	receipt := product.Receipt{
		Owner:                 owner,
		RegistrationTimestamp: ts,
		TransactionRef:        keccak.Hex("register", owner, uuid.NewString(), strconv.FormatInt(ts, 10), rec.Name),
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx sqlc.DBTX) error {
		if err := r.queries.EnsureLedgerAccount(ctx, tx, sqlc.EnsureLedgerAccountParams{
			Owner:   owner,
			Balance: r.defaultBalance,
		}); err != nil {
			return infra.WrapRepoErr("failed to open ledger account", err)
		}

		debited, err := r.queries.DebitLedgerAccount(ctx, tx, sqlc.DebitLedgerAccountParams{Fee: req.Fee, Owner: owner})
		if err != nil {
			return infra.WrapRepoErr("failed to debit registration fee", err)
		}
		if debited == 0 {
			balance, err := r.queries.GetLedgerBalance(ctx, tx, owner)
			if err != nil {
				return infra.WrapRepoErr("failed to read ledger balance", err)
			}
			return errs.Wrapf(errs.ErrInsufficientFunds, "balance %d, fee %d", balance, req.Fee)
		}

		// Appends commit in seq order so an OFFSET walk never skips a row.
		if err := r.queries.LockLedgerAppends(ctx, tx); err != nil {
			return infra.WrapRepoErr("failed to lock ledger for append", err)
		}
		params := converter.LedgerRecordToInsertParams(product.LedgerRecord{Record: rec, Receipt: receipt}, req.Fee)
		if _, err := r.queries.InsertLedgerProduct(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to append product", err)
		}
		return nil
	})
	if err != nil {
		return product.Receipt{}, registrationError(ctx, err)
	}
	return receipt, nil
}

func (r *LedgerRepository) Paginate(ctx context.Context, start, count int) ([]product.LedgerRecord, error) {
	if start < 0 || count <= 0 {
		return nil, errs.Mark(errs.Newf("invalid page start=%d count=%d", start, count), errs.ErrValidation)
	}

	var records []product.LedgerRecord
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		rows, err := r.queries.ListLedgerProducts(ctx, db, sqlc.ListLedgerProductsParams{
			Offset: int64(start),
			Limit:  int64(count),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to list ledger products", err)
		}
		records = converter.LedgerRecordsFromRows(rows)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrLedgerNetwork)
	}
	return records, nil
}

func (r *LedgerRepository) TotalCount(ctx context.Context) (int, error) {
	var total int64
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		n, err := r.queries.CountLedgerProducts(ctx, db)
		if err != nil {
			return infra.WrapRepoErr("failed to count ledger products", err)
		}
		total = n
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrLedgerNetwork)
	}
	return int(total), nil
}

// registrationError sorts a failed registration into the ledger error kinds.
// Only connectivity problems are network errors; a transaction that reached
// the database and failed there was rejected.
func registrationError(ctx context.Context, err error) error {
	switch {
	case errs.Is(err, errs.ErrInsufficientFunds):
		return err
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		return errs.Mark(err, errs.ErrLedgerRejected)
	case errors.Is(err, context.DeadlineExceeded), infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrLedgerNetwork)
	case !infra.IsKind(err, infra.KindDBFailure) && !infra.IsKind(err, infra.KindDuplicateKey) &&
		!infra.IsKind(err, infra.KindForeignKeyViolated):
		// pool or transaction setup failures never reached a statement
		return errs.Mark(err, errs.ErrLedgerNetwork)
	default:
		return errs.Mark(err, errs.ErrLedgerRejected)
	}
}
