package queries

import (
	"authentithief/internal/pkg/errs"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

var ErrInvalidStart = errs.Mark(errs.New("start must not be negative"), errs.ErrValidation)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// Page is a start/count window over the ledger sequence. Next is nil on the
// last page.
type Page struct {
	Start int  `json:"start"`
	Count int  `json:"count"`
	Total int  `json:"total"`
	Next  *int `json:"next,omitempty"`
}

func newPage(start, returned, total int) Page {
	p := Page{Start: start, Count: returned, Total: total}
	if next := start + returned; returned > 0 && next < total {
		p.Next = &next
	}
	return p
}
