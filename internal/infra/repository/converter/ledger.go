package converter

import (
	"authentithief/internal/domain/product"
	sqlc "authentithief/internal/infra/sqlc/generated"
	"authentithief/internal/pkg/pgconv"
)

func LedgerRecordToInsertParams(rec product.LedgerRecord, fee int64) sqlc.InsertLedgerProductParams {
	return sqlc.InsertLedgerProductParams{
		Name:                  rec.Name,
		Brand:                 rec.Brand,
		Description:           rec.Description,
		ExpirationTimestamp:   pgconv.Int64PtrToPgtype(rec.ExpirationTimestamp),
		Owner:                 rec.Owner,
		RegistrationTimestamp: rec.RegistrationTimestamp,
		TransactionRef:        rec.TransactionRef,
		Fee:                   fee,
	}
}

func LedgerRecordsFromRows(rows []sqlc.LedgerProducts) []product.LedgerRecord {
	out := make([]product.LedgerRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, product.LedgerRecord{
			Record: product.Record{
				Name:                row.Name,
				Brand:               row.Brand,
				Description:         row.Description,
				ExpirationTimestamp: pgconv.Int64PtrFromPgtype(row.ExpirationTimestamp),
			},
			Receipt: product.Receipt{
				Owner:                 row.Owner,
				RegistrationTimestamp: row.RegistrationTimestamp,
				TransactionRef:        row.TransactionRef,
			},
		})
	}
	return out
}
