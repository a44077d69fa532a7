package shared

import (
	"context"
	"image"
	"strings"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	"authentithief/internal/pkg/errs"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

type RegisterRequest struct {
	Record product.Record
	Owner  string
	Fee    int64
}

// Normalize trims the record, lower-cases the owner and rejects requests no
// ledger may accept.
func (r RegisterRequest) Normalize() (product.Record, string, error) {
	owner := strings.ToLower(strings.TrimSpace(r.Owner))
	if owner == "" {
		return product.Record{}, "", product.ErrEmptyOwner
	}
	if r.Fee < 0 {
		return product.Record{}, "", errs.Mark(errs.Newf("negative fee %d", r.Fee), errs.ErrValidation)
	}
	rec := product.NewRecord(r.Record.Name, r.Record.Brand, r.Record.Description, r.Record.ExpirationTimestamp)
	if err := rec.Validate(false); err != nil {
		return product.Record{}, "", err
	}
	return rec, owner, nil
}

// Ledger is the append-only product registry.
//
// Register fails with errs.ErrLedgerRejected, errs.ErrLedgerNetwork or
// errs.ErrInsufficientFunds and is never retried by callers. Paginate returns
// fewer than count records at the tail and an empty slice for an out-of-range
// start.
type Ledger interface {
	Register(ctx context.Context, req RegisterRequest) (product.Receipt, error)
	Paginate(ctx context.Context, start, count int) ([]product.LedgerRecord, error)
	TotalCount(ctx context.Context) (int, error)
}

// ScanStore persists scan state per identity key. UpsertScan must be atomic
// per key: concurrent calls never lose an increment.
type ScanStore interface {
	GetScan(ctx context.Context, key product.IdentityKey) (*scan.Record, error)
	UpsertScan(ctx context.Context, obs scan.Observation) (scan.UpsertResult, error)
}

// QRCodec renders payload bytes to a PNG and reads them back from an image.
// Decode returns errs.ErrNoCode when the image holds no readable symbol.
type QRCodec interface {
	Encode(content []byte, size int) ([]byte, error)
	Decode(img image.Image) ([]byte, error)
}
