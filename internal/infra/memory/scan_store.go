package memory

import (
	"context"
	"sync"

	"authentithief/internal/domain/product"
	"authentithief/internal/domain/scan"
	"authentithief/internal/pkg/errs"
	"authentithief/internal/usecase/shared"
)

type ScanStore struct {
	mu      sync.Mutex
	records map[product.IdentityKey]scan.Record
}

var _ shared.ScanStore = (*ScanStore)(nil)

func NewScanStore() *ScanStore {
	return &ScanStore{records: make(map[product.IdentityKey]scan.Record)}
}

func (s *ScanStore) GetScan(ctx context.Context, key product.IdentityKey) (*scan.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, errs.Wrapf(errs.ErrScanNotFound, "key %s", key)
	}
	return &rec, nil
}

// UpsertScan holds the store lock across the read-modify-write.
func (s *ScanStore) UpsertScan(ctx context.Context, obs scan.Observation) (scan.UpsertResult, error) {
	if err := ctx.Err(); err != nil {
		return scan.UpsertResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.records[obs.Key]; ok {
		next := cur.Apply(obs)
		s.records[obs.Key] = next
		return scan.UpsertResult{Record: next}, nil
	}
	rec := obs.Insert()
	s.records[obs.Key] = rec
	return scan.UpsertResult{Record: rec, Created: true}, nil
}
