package qrpayload

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"authentithief/internal/domain/product"
	"authentithief/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const (
	// SchemaVersion is the only payload layout this build can interpret.
	SchemaVersion = 1

	// RegisteredDateLayout is the canonical textual form of registeredDate.
	// It is display data only; logic always reads the numeric timestamps.
	RegisteredDateLayout = time.RFC3339

	// MaxEncodedBytes is the byte-mode capacity of a version 40 QR symbol at
	// the lowest error correction level.
	MaxEncodedBytes = 2953
)

var (
	ErrUnsupportedVersion = errs.Mark(errs.New("unsupported payload schema version"), errs.ErrMalformedPayload)
	ErrEmptyPayload       = errs.Mark(errs.New("payload is empty"), errs.ErrMalformedPayload)
	ErrTrailingData       = errs.Mark(errs.New("payload has trailing data"), errs.ErrMalformedPayload)
	ErrPayloadTooLarge    = errs.Mark(errs.New("payload exceeds qr capacity"), errs.ErrValidation)
)

// Payload is the exact JSON document carried by a product QR code.
type Payload struct {
	SchemaVersion         int    `json:"schemaVersion" validate:"required"`
	Name                  string `json:"name" validate:"required,max=128"`
	Brand                 string `json:"brand,omitempty" validate:"max=128"`
	Description           string `json:"description,omitempty" validate:"max=1000"`
	RegisteredDate        string `json:"registeredDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ExpirationTimestamp   *int64 `json:"expirationTimestamp,omitempty" validate:"omitempty,gt=0"`
	Owner                 string `json:"owner,omitempty" validate:"max=128"`
	RegistrationTimestamp int64  `json:"registrationTimestamp,omitempty" validate:"gte=0"`
	TransactionRef        string `json:"transactionRef,omitempty" validate:"max=256"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Marshal serializes the payload and enforces the QR capacity limit.
func (p Payload) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errs.Wrap(err, "marshal payload")
	}
	if len(data) > MaxEncodedBytes {
		return nil, errs.Wrapf(ErrPayloadTooLarge, "%d bytes", len(data))
	}
	return data, nil
}

// Parse validates raw QR bytes against the payload schema. Unknown fields,
// unknown versions and missing required fields are all malformed.
func Parse(data []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Payload{}, ErrEmptyPayload
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return Payload{}, errs.Mark(errs.Wrap(err, "decode payload"), errs.ErrMalformedPayload)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Payload{}, ErrTrailingData
	}

	if p.SchemaVersion != SchemaVersion {
		return Payload{}, errs.Wrapf(ErrUnsupportedVersion, "version %d", p.SchemaVersion)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)

	if err := validate.Struct(p); err != nil {
		return Payload{}, errs.Mark(errs.Wrap(err, "validate payload"), errs.ErrMalformedPayload)
	}
	return p, nil
}

// LedgerView returns the fields the ledger lookup cross-checks.
func (p Payload) LedgerView() product.LedgerRecord {
	return product.LedgerRecord{
		Record: product.Record{
			Name:                p.Name,
			Brand:               p.Brand,
			Description:         p.Description,
			ExpirationTimestamp: p.ExpirationTimestamp,
		},
		Receipt: product.Receipt{
			Owner:                 p.Owner,
			RegistrationTimestamp: p.RegistrationTimestamp,
			TransactionRef:        p.TransactionRef,
		},
	}
}

func FormatRegisteredDate(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(RegisteredDateLayout)
}
