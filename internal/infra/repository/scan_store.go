package repository

import (
	"context"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	"authentithief/internal/infra"
	"authentithief/internal/infra/repository/converter"
	sqlc "authentithief/internal/infra/sqlc/generated"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/pkg/pgconv"
	"authentithief/internal/usecase/shared"
)

type ScanQueries interface {
	GetScanRecord(ctx context.Context, db sqlc.DBTX, identityKey string) (sqlc.ScanRecords, error)
	UpsertScanRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertScanRecordParams) (sqlc.UpsertScanRecordRow, error)
}

// ScanRepository keeps scan records in Postgres. The upsert is a single
// INSERT .. ON CONFLICT statement, so the row lock serializes scans per key.
type ScanRepository struct {
	queries ScanQueries
	uow     shared.UnitOfWork
}

var _ shared.ScanStore = (*ScanRepository)(nil)

func NewScanRepository(queries ScanQueries, uow shared.UnitOfWork) *ScanRepository {
	return &ScanRepository{
		queries: queries,
		uow:     uow,
	}
}

func (r *ScanRepository) GetScan(ctx context.Context, key product.IdentityKey) (*scan.Record, error) {
	var rec scan.Record
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		row, err := r.queries.GetScanRecord(ctx, db, key.String())
		if err != nil {
			if pgconv.IsNoRows(err) {
				return errs.Mark(infra.WrapRepoErr("scan record not found", err, infra.KindNotFound), errs.ErrScanNotFound)
			}
			return errs.Mark(infra.WrapRepoErr("failed to get scan record", err), errs.ErrDatabaseOperationFailed)
		}
		rec = converter.ScanRecordFromRow(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ScanRepository) UpsertScan(ctx context.Context, obs scan.Observation) (scan.UpsertResult, error) {
	var res scan.UpsertResult
	err := r.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		row, err := r.queries.UpsertScanRecord(ctx, db, converter.ObservationToUpsertParams(obs))
		if err != nil {
			return errs.Mark(infra.WrapRepoErr("failed to upsert scan record", err), errs.ErrDatabaseOperationFailed)
		}
		res = converter.UpsertResultFromRow(row)
		return nil
	})
	return res, err
}
