package commands

import (
	"authentithief/internal/domain/product"
	"authentithief/internal/domain/qrpayload"
)

// RegistrationSettings are the deployment-wide registration parameters.
type RegistrationSettings struct {
	Fee          int64
	DefaultOwner string
	QRImageSize  int
	// RequireExpiration rejects non-expiring products up front when verifiers
	// would treat their codes as malformed.
	RequireExpiration bool
}

type RegisterProductRequest struct {
	Name                string
	Brand               string
	Description         string
	ExpirationTimestamp *int64
	// Owner falls back to RegistrationSettings.DefaultOwner when empty.
	Owner string
}

type RegisterProductResult struct {
	Receipt     product.Receipt
	Payload     qrpayload.Payload
	PayloadJSON []byte
	QRCodePNG   []byte
}
