package errs

import "errors"

// Sentinel errors shared across the domain, usecase and handler layers.
// Lower layers attach them with Mark; match them with errs.Is.
var (
	// Registration errors
	ErrValidation = errors.New("validation error")

	// Ledger errors
	ErrLedgerRejected    = errors.New("ledger transaction rejected")
	ErrLedgerNetwork     = errors.New("ledger network error")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// Scanner errors
	ErrCameraUnavailable = errors.New("camera unavailable")
	ErrStreamLost        = errors.New("capture stream lost")
	ErrMalformedPayload  = errors.New("malformed payload")
	ErrNoCode            = errors.New("no qr code found")

	// Scan ledger errors
	ErrScanNotFound = errors.New("scan record not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
