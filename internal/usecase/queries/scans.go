package queries

import (
	"context"
	"strings"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	"authentithief/internal/pkg/clock"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"
)

//go:generate mockgen -source=scans.go -destination=../../../tests/mock/queries/scans_mock.go -package=queriesmock

var ErrEmptyKey = errs.Mark(errs.New("identity key is required"), errs.ErrValidation)

// ScanView is a scan record with its dynamic expiration resolved against now.
type ScanView struct {
	IdentityKey                 string     `json:"identity_key"`
	ProductName                 string     `json:"product_name"`
	Owner                       string     `json:"owner"`
	RegistrationTimestamp       int64      `json:"registration_timestamp"`
	FirstScanTimestamp          int64      `json:"first_scan_timestamp"`
	LastScanTimestamp           int64      `json:"last_scan_timestamp"`
	TotalScans                  int64      `json:"total_scans"`
	OriginalExpirationTimestamp *int64     `json:"original_expiration_timestamp,omitempty"`
	ExpiresAt                   *int64     `json:"expires_at,omitempty"`
	DaysRemaining               *int64     `json:"days_remaining,omitempty"`
	Band                        *scan.Band `json:"status_band,omitempty"`
}

type ScanQueries interface {
	GetScan(ctx context.Context, key string) (*ScanView, error)
}

type scanQueriesImpl struct {
	store shared.ScanStore
	clock clock.Clock
}

func NewScanQueries(store shared.ScanStore, clk clock.Clock) ScanQueries {
	return &scanQueriesImpl{store: store, clock: clk}
}

func (q *scanQueriesImpl) GetScan(ctx context.Context, key string) (*ScanView, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}
	rec, err := q.store.GetScan(ctx, product.IdentityKey(key))
	if err != nil {
		return nil, err
	}

	view := &ScanView{
		IdentityKey:                 rec.Key.String(),
		ProductName:                 rec.ProductName,
		Owner:                       rec.Owner,
		RegistrationTimestamp:       rec.RegistrationTimestamp,
		FirstScanTimestamp:          rec.FirstScanTimestamp,
		LastScanTimestamp:           rec.LastScanTimestamp,
		TotalScans:                  rec.TotalScans,
		OriginalExpirationTimestamp: rec.OriginalExpirationTimestamp,
	}
	if expiresAt, ok := rec.ActualExpiration(); ok {
		days := scan.DaysRemaining(expiresAt, q.clock.Now().Unix())
		band := scan.BandFor(days)
		view.ExpiresAt = &expiresAt
		view.DaysRemaining = &days
		view.Band = &band
	}
	return view, nil
}
