//go:build unit || e2e

package builder

import (
	"authentithief/internal/domain/product"
	"authentithief/internal/domain/qrpayload"
	reqdto "authentithief/internal/handler/dto/request"
)

const (
	DefaultOwner        = "0xa918ad6f552d4d91d44feed9be4d03a439fa04b1"
	DefaultRegisteredAt = int64(1_700_000_000)
	DefaultLifetime     = int64(30 * 86400)
)

type ProductBuilder struct {
	Name                  string
	Brand                 string
	Description           string
	ExpirationTimestamp   *int64
	Owner                 string
	RegistrationTimestamp int64
	TransactionRef        string
}

func NewProductBuilder() *ProductBuilder {
	exp := DefaultRegisteredAt + DefaultLifetime
	return &ProductBuilder{
		Name:                  "Amoxicillin 500mg",
		Brand:                 "Acme Pharma",
		Description:           "Blister pack of 20 capsules",
		ExpirationTimestamp:   &exp,
		Owner:                 DefaultOwner,
		RegistrationTimestamp: DefaultRegisteredAt,
		TransactionRef:        "0xdeadbeef",
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithBrand(brand string) *ProductBuilder {
	b.Brand = brand
	return b
}

func (b *ProductBuilder) WithDescription(desc string) *ProductBuilder {
	b.Description = desc
	return b
}

func (b *ProductBuilder) WithOwner(owner string) *ProductBuilder {
	b.Owner = owner
	return b
}

func (b *ProductBuilder) WithRegisteredAt(ts int64) *ProductBuilder {
	b.RegistrationTimestamp = ts
	return b
}

// WithLifetime sets the expiration relative to the registration timestamp.
func (b *ProductBuilder) WithLifetime(seconds int64) *ProductBuilder {
	exp := b.RegistrationTimestamp + seconds
	b.ExpirationTimestamp = &exp
	return b
}

func (b *ProductBuilder) WithExpiration(ts *int64) *ProductBuilder {
	b.ExpirationTimestamp = ts
	return b
}

func (b *ProductBuilder) NonExpiring() *ProductBuilder {
	b.ExpirationTimestamp = nil
	return b
}

func (b *ProductBuilder) BuildRecord() product.Record {
	return product.Record{
		Name:                b.Name,
		Brand:               b.Brand,
		Description:         b.Description,
		ExpirationTimestamp: b.ExpirationTimestamp,
	}
}

func (b *ProductBuilder) BuildReceipt() product.Receipt {
	return product.Receipt{
		Owner:                 b.Owner,
		RegistrationTimestamp: b.RegistrationTimestamp,
		TransactionRef:        b.TransactionRef,
	}
}

func (b *ProductBuilder) BuildLedgerRecord() product.LedgerRecord {
	return product.LedgerRecord{Record: b.BuildRecord(), Receipt: b.BuildReceipt()}
}

func (b *ProductBuilder) BuildPayload() qrpayload.Payload {
	return qrpayload.Payload{
		SchemaVersion:         qrpayload.SchemaVersion,
		Name:                  b.Name,
		Brand:                 b.Brand,
		Description:           b.Description,
		RegisteredDate:        qrpayload.FormatRegisteredDate(b.RegistrationTimestamp),
		ExpirationTimestamp:   b.ExpirationTimestamp,
		Owner:                 b.Owner,
		RegistrationTimestamp: b.RegistrationTimestamp,
		TransactionRef:        b.TransactionRef,
	}
}

func (b *ProductBuilder) BuildDTO() reqdto.RegisterProductRequest {
	return reqdto.RegisterProductRequest{
		Name:                b.Name,
		Brand:               b.Brand,
		Description:         b.Description,
		ExpirationTimestamp: b.ExpirationTimestamp,
	}
}
