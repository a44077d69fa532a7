package httperr

import (
	"net/http"

	"authentithief/internal/pkg/errs"
)

// Status maps a usecase error to its response status and public message.
func Status(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrMalformedPayload):
		return http.StatusBadRequest, "Malformed payload"
	case errs.Is(err, errs.ErrNoCode):
		return http.StatusBadRequest, "No QR code found"
	case errs.Is(err, errs.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "Insufficient funds"
	case errs.Is(err, errs.ErrLedgerRejected):
		return http.StatusConflict, "Ledger transaction rejected"
	case errs.Is(err, errs.ErrScanNotFound):
		return http.StatusNotFound, "Scan record not found"
	case errs.Is(err, errs.ErrLedgerNetwork), errs.Is(err, errs.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable, "Ledger unavailable"
	case errs.Is(err, errs.ErrDatabaseOperationFailed):
		return http.StatusServiceUnavailable, "Storage unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

