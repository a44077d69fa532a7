package converter

import (
	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	sqlc "authentithief/internal/infra/sqlc/generated"
	"authentithief/internal/pkg/pgconv"
)

func ObservationToUpsertParams(o scan.Observation) sqlc.UpsertScanRecordParams {
	return sqlc.UpsertScanRecordParams{
		IdentityKey:                 o.Key.String(),
		ProductName:                 o.ProductName,
		Owner:                       o.Owner,
		RegistrationTimestamp:       o.RegistrationTimestamp,
		ScannedAt:                   o.Now,
		OriginalExpirationTimestamp: pgconv.Int64PtrToPgtype(o.OriginalExpirationTimestamp),
	}
}

func ScanRecordFromRow(row sqlc.ScanRecords) scan.Record {
	return scan.Record{
		Key:                         product.IdentityKey(row.IdentityKey),
		ProductName:                 row.ProductName,
		Owner:                       row.Owner,
		RegistrationTimestamp:       row.RegistrationTimestamp,
		FirstScanTimestamp:          row.FirstScanTimestamp,
		LastScanTimestamp:           row.LastScanTimestamp,
		TotalScans:                  row.TotalScans,
		OriginalExpirationTimestamp: pgconv.Int64PtrFromPgtype(row.OriginalExpirationTimestamp),
	}
}

func UpsertResultFromRow(row sqlc.UpsertScanRecordRow) scan.UpsertResult {
	return scan.UpsertResult{
		Record: ScanRecordFromRow(sqlc.ScanRecords{
			IdentityKey:                 row.IdentityKey,
			ProductName:                 row.ProductName,
			Owner:                       row.Owner,
			RegistrationTimestamp:       row.RegistrationTimestamp,
			FirstScanTimestamp:          row.FirstScanTimestamp,
			LastScanTimestamp:           row.LastScanTimestamp,
			TotalScans:                  row.TotalScans,
			OriginalExpirationTimestamp: row.OriginalExpirationTimestamp,
		}),
		Created: row.Inserted,
	}
}
