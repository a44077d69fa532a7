package product

import (
	"strings"
	"unicode/utf8"
)

// Record is the identity and descriptive data fixed at registration.
// ExpirationTimestamp is unix seconds; nil means the product never expires.
type Record struct {
	Name                string
	Brand               string
	Description         string
	ExpirationTimestamp *int64
}

func NewRecord(name, brand, description string, expirationTimestamp *int64) Record {
	return Record{
		Name:                strings.TrimSpace(name),
		Brand:               strings.TrimSpace(brand),
		Description:         strings.TrimSpace(description),
		ExpirationTimestamp: expirationTimestamp,
	}
}

// Validate checks the fields that must hold before a record reaches the ledger.
func (r Record) Validate(requireBrand bool) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	brand := strings.TrimSpace(r.Brand)
	if requireBrand && brand == "" {
		return ErrEmptyBrand
	}
	if utf8.RuneCountInString(brand) > MaxBrandLength {
		return ErrBrandTooLong
	}
	if utf8.RuneCountInString(r.Description) > MaxDescriptionLength {
		return ErrDescTooLong
	}
	if r.ExpirationTimestamp != nil && *r.ExpirationTimestamp <= 0 {
		return ErrExpiration
	}
	return nil
}

func (r Record) Expires() bool { return r.ExpirationTimestamp != nil }

// Receipt is what the ledger hands back for a successful registration.
type Receipt struct {
	Owner                 string
	RegistrationTimestamp int64
	TransactionRef        string
}

func (r Receipt) Validate() error {
	if strings.TrimSpace(r.Owner) == "" {
		return ErrEmptyOwner
	}
	if r.RegistrationTimestamp <= 0 {
		return ErrRegisteredAt
	}
	return nil
}

// LedgerRecord is one entry of the append-only registry.
type LedgerRecord struct {
	Record
	Receipt
}

// Lifetime is the configured shelf life in seconds, measured from registration.
func (l LedgerRecord) Lifetime() (int64, bool) {
	if l.ExpirationTimestamp == nil {
		return 0, false
	}
	return *l.ExpirationTimestamp - l.RegistrationTimestamp, true
}
