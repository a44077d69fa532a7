package qrpayload

import (
	"strings"

	"authentithief/internal/domain/product"
	"authentithief/internal/pkg/errs"
)

// Widest values a ledger can hand back, used to size-check a record before
// it is registered.
const (
	placeholderOwner          = "0x0000000000000000000000000000000000000000"
	placeholderRegistration   = int64(9999999999)
	placeholderTransactionRef = "0x0000000000000000000000000000000000000000000000000000000000000000"
)

type EncoderOptions struct {
	// RequireBrand makes brand part of the lookup key and therefore mandatory.
	RequireBrand bool
}

// Encoder builds the canonical QR payload from a product and its receipt.
type Encoder struct {
	opts EncoderOptions
}

func NewEncoder(opts EncoderOptions) *Encoder {
	return &Encoder{opts: opts}
}

// Validate rejects records that could never be encoded. Callers run it before
// the ledger write so an unencodable record is never registered.
func (e *Encoder) Validate(rec product.Record) error {
	_, err := e.Encode(rec, product.Receipt{
		Owner:                 placeholderOwner,
		RegistrationTimestamp: placeholderRegistration,
		TransactionRef:        placeholderTransactionRef,
	})
	return err
}

func (e *Encoder) Encode(rec product.Record, receipt product.Receipt) (Payload, error) {
	rec = product.NewRecord(rec.Name, rec.Brand, rec.Description, rec.ExpirationTimestamp)
	if err := rec.Validate(e.opts.RequireBrand); err != nil {
		return Payload{}, err
	}
	if err := receipt.Validate(); err != nil {
		return Payload{}, err
	}

	p := Payload{
		SchemaVersion:         SchemaVersion,
		Name:                  rec.Name,
		Brand:                 rec.Brand,
		Description:           rec.Description,
		RegisteredDate:        FormatRegisteredDate(receipt.RegistrationTimestamp),
		ExpirationTimestamp:   rec.ExpirationTimestamp,
		Owner:                 strings.TrimSpace(receipt.Owner),
		RegistrationTimestamp: receipt.RegistrationTimestamp,
		TransactionRef:        receipt.TransactionRef,
	}
	if _, err := p.Marshal(); err != nil {
		return Payload{}, errs.Mark(err, errs.ErrValidation)
	}
	return p, nil
}
