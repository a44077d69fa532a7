package scan

import (
	"authentithief/internal/domain/product"
)

// Record is the per-identity scan state kept by the scan ledger. It is created
// by the first successful verification and never deleted.
type Record struct {
	Key                         product.IdentityKey
	ProductName                 string
	Owner                       string
	RegistrationTimestamp       int64
	FirstScanTimestamp          int64
	LastScanTimestamp           int64
	TotalScans                  int64
	OriginalExpirationTimestamp *int64
}

// Observation is the mutation applied by one successful verification. Stores
// insert it as a new record when the key is absent and otherwise only bump
// LastScanTimestamp and TotalScans.
type Observation struct {
	Key                         product.IdentityKey
	ProductName                 string
	Owner                       string
	RegistrationTimestamp       int64
	OriginalExpirationTimestamp *int64
	Now                         int64
}

func NewObservation(key product.IdentityKey, rec product.LedgerRecord, now int64) Observation {
	return Observation{
		Key:                         key,
		ProductName:                 rec.Name,
		Owner:                       rec.Owner,
		RegistrationTimestamp:       rec.RegistrationTimestamp,
		OriginalExpirationTimestamp: rec.ExpirationTimestamp,
		Now:                         now,
	}
}

// Insert is the record created for the first observation of a key.
func (o Observation) Insert() Record {
	return Record{
		Key:                         o.Key,
		ProductName:                 o.ProductName,
		Owner:                       o.Owner,
		RegistrationTimestamp:       o.RegistrationTimestamp,
		FirstScanTimestamp:          o.Now,
		LastScanTimestamp:           o.Now,
		TotalScans:                  1,
		OriginalExpirationTimestamp: o.OriginalExpirationTimestamp,
	}
}

// Apply returns r after one more observation.
func (r Record) Apply(o Observation) Record {
	r.LastScanTimestamp = o.Now
	r.TotalScans++
	return r
}

// UpsertResult is what an atomic upsert reports back.
type UpsertResult struct {
	Record  Record
	Created bool
}
